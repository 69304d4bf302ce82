package script

import (
	"strconv"
	"strings"
	"time"
)

// CoordinateMode selects how move coordinates are interpreted
type CoordinateMode int

const (
	Relative CoordinateMode = iota
	Absolute
)

func (m CoordinateMode) String() string {
	if m == Absolute {
		return "absolute"
	}
	return "relative"
}

// Command is one instruction decoded from a single line.
type Command interface {
	command()
}

// SetCoordinateMode is the optional "coords=abs|rel" directive on line 1
type SetCoordinateMode struct {
	Mode CoordinateMode
}

// SetResolution is the optional "res=<width>x<height>" directive on line 2
type SetResolution struct {
	Width  int
	Height int
}

// Move is "<x> <y> [ldown] [rdown]"
type Move struct {
	X         int
	Y         int
	LeftDown  bool
	RightDown bool
}

// Wait is "wait <milliseconds>"
type Wait struct {
	Milliseconds int
}

func (SetCoordinateMode) command() {}
func (SetResolution) command()     {}
func (Move) command()              {}
func (Wait) command()              {}

// Duration returns the wait as a time.Duration
func (w Wait) Duration() time.Duration {
	return time.Duration(w.Milliseconds) * time.Millisecond
}

const (
	coordsLine = 1
	resLine    = 2
)

// normalizeLine lower-cases and trims a raw line.
func normalizeLine(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// splitNonEmpty splits s on sep and drops empty parts.
func splitNonEmpty(s, sep string) []string {
	var parts []string
	for _, p := range strings.Split(s, sep) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func parseInt32(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int(v), err
}

// parseDirective recognizes the header directives. The coords directive is
// only recognized on line 1 and the res directive only on line 2. ok is false
// when the line is a data line.
func parseDirective(lineNr int, line string) (cmd Command, ok bool, err error) {
	switch {
	case lineNr == coordsLine && strings.HasPrefix(line, "coords"):
		mode := Relative
		if parts := splitNonEmpty(line, "="); len(parts) == 2 && parts[1] == "abs" {
			mode = Absolute
		}
		return SetCoordinateMode{Mode: mode}, true, nil

	case lineNr == resLine && strings.HasPrefix(line, "res"):
		var res SetResolution
		parts := splitNonEmpty(line, "=")
		if len(parts) != 2 {
			return res, true, nil
		}
		dims := splitNonEmpty(parts[1], "x")
		if len(dims) != 2 {
			return res, true, nil
		}
		w := strings.TrimSpace(dims[0])
		h := strings.TrimSpace(dims[1])
		if res.Width, err = parseInt32(w); err != nil {
			return nil, true, lineError(ErrInvalidArgument, lineNr, line, "specified width %q is not a valid integer", w)
		}
		if res.Height, err = parseInt32(h); err != nil {
			return nil, true, lineError(ErrInvalidArgument, lineNr, line, "specified height %q is not a valid integer", h)
		}
		return res, true, nil
	}
	return nil, false, nil
}

// parseData decodes a move or wait line.
func parseData(lineNr int, line string) (Command, error) {
	tokens := splitNonEmpty(line, " ")
	if len(tokens) < 2 || len(tokens) > 4 {
		return nil, lineError(ErrInvalidData, lineNr, line, "seems to be invalid: %q", line)
	}

	if len(tokens) == 2 && tokens[0] == "wait" {
		ms, err := parseInt32(tokens[1])
		if err != nil || ms < 0 {
			return nil, lineError(ErrInvalidArgument, lineNr, line, "invalid wait time specified: %q", tokens[1])
		}
		return Wait{Milliseconds: ms}, nil
	}

	var mv Move
	var err error
	if mv.X, err = parseInt32(tokens[0]); err != nil {
		return nil, lineError(ErrInvalidArgument, lineNr, line, "specified x coordinate %q is invalid", tokens[0])
	}
	if mv.Y, err = parseInt32(tokens[1]); err != nil {
		return nil, lineError(ErrInvalidArgument, lineNr, line, "specified y coordinate %q is invalid", tokens[1])
	}
	for _, flag := range tokens[2:] {
		switch flag {
		case "ldown":
			mv.LeftDown = true
		case "rdown":
			mv.RightDown = true
		}
	}
	return mv, nil
}
