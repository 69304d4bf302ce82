// Package script interprets mouse command files and replays them through a
// pointer injector.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"mouseclicker/internal/input"
)

const utf8BOM = "\ufeff"

// maxLineSize bounds a single command line.
const maxLineSize = 1024 * 1024

// Options configures an Executor
type Options struct {
	// Debug enables line-by-line diagnostics.
	Debug bool

	// Logger receives diagnostics. Defaults to stdout without prefixes.
	Logger *log.Logger

	// Sleep suspends execution for wait commands. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// state is the interpreter state of a single run
type state struct {
	mode          CoordinateMode
	screenWidth   int
	screenHeight  int
	lastLeftDown  bool
	lastRightDown bool
}

// Executor runs command files line by line against a PointerInjector
type Executor struct {
	injector input.PointerInjector
	debug    bool
	logger   *log.Logger
	sleep    func(time.Duration)

	state state
}

// NewExecutor creates an executor that injects through injector
func NewExecutor(injector input.PointerInjector, opts Options) *Executor {
	e := &Executor{
		injector: injector,
		debug:    opts.Debug,
		logger:   opts.Logger,
		sleep:    opts.Sleep,
	}
	if e.logger == nil {
		e.logger = log.New(os.Stdout, "", 0)
	}
	if e.sleep == nil {
		e.sleep = time.Sleep
	}
	return e
}

// ExecuteCommands replays the command file at filePath through the platform
// pointer injector.
func ExecuteCommands(filePath string, debugEnabled bool) error {
	return NewExecutor(input.NewInjector(), Options{Debug: debugEnabled}).Execute(filePath)
}

// Execute validates filePath and runs the command file it names.
func (e *Executor) Execute(filePath string) error {
	if strings.TrimSpace(filePath) == "" {
		return &ExecutionError{Kind: ErrInvalidArgument, Msg: "input command file path is empty"}
	}

	f, err := os.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExecutionError{Kind: ErrFileNotFound, Msg: fmt.Sprintf("specified input command file not found: %s", filePath)}
	}
	if err != nil {
		return fmt.Errorf("failed to open input command file: %w", err)
	}
	defer f.Close()

	e.debugf("Processing input file %q...", filePath)
	return e.Run(f)
}

// Run executes commands read from r until EOF or the first error. Lines that
// executed before an error keep their effect.
func (e *Executor) Run(r io.Reader) error {
	e.state = state{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNr := 0
	for scanner.Scan() {
		lineNr++
		raw := scanner.Text()
		if lineNr == 1 {
			raw = strings.TrimPrefix(raw, utf8BOM)
		}

		line := normalizeLine(raw)
		if line == "" {
			continue
		}
		if err := e.executeLine(lineNr, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input commands after line %d: %w", lineNr, err)
	}
	return nil
}

func (e *Executor) executeLine(lineNr int, line string) error {
	cmd, ok, err := parseDirective(lineNr, line)
	if err != nil {
		return err
	}
	if ok {
		e.apply(cmd)
		return nil
	}

	if e.state.mode == Absolute && e.state.screenWidth == 0 && e.state.screenHeight == 0 {
		return lineError(ErrInvalidOperation, lineNr, line,
			"movement is absolute, but resolution is 0x0 (did you specify \"res=<width>x<height>\" correctly?)")
	}

	cmd, err = parseData(lineNr, line)
	if err != nil {
		return err
	}

	switch c := cmd.(type) {
	case Wait:
		e.debugf("Waiting %d milliseconds...", c.Milliseconds)
		e.sleep(c.Duration())
	case Move:
		e.debugf("Sending mouse input: x=%d, y=%d, ldown=%t, rdown=%t", c.X, c.Y, c.LeftDown, c.RightDown)
		if err := e.move(c); err != nil {
			wrapped := lineError(ErrInjection, lineNr, line, "failed to inject mouse input")
			if errors.Is(err, input.ErrZeroResolution) {
				wrapped.Kind = ErrInvalidOperation
			}
			wrapped.Err = err
			return wrapped
		}
	}
	return nil
}

func (e *Executor) apply(cmd Command) {
	switch c := cmd.(type) {
	case SetCoordinateMode:
		e.state.mode = c.Mode
		e.debugf("Using %s coordinates.", c.Mode)
	case SetResolution:
		e.state.screenWidth = c.Width
		e.state.screenHeight = c.Height
		e.debugf("Using resolution (maxX, maxY): %dx%d.", c.Width, c.Height)
	}
}

// move dispatches to the injector. The button state is recorded before
// injecting so that a failed injection still counts as the last request.
func (e *Executor) move(m Move) error {
	req := input.Move{
		X:              m.X,
		Y:              m.Y,
		ScreenWidth:    e.state.screenWidth,
		ScreenHeight:   e.state.screenHeight,
		Absolute:       e.state.mode == Absolute,
		LeftDown:       m.LeftDown,
		RightDown:      m.RightDown,
		PriorLeftDown:  e.state.lastLeftDown,
		PriorRightDown: e.state.lastRightDown,
	}
	e.state.lastLeftDown = m.LeftDown
	e.state.lastRightDown = m.RightDown

	return e.injector.Inject(req)
}

func (e *Executor) debugf(format string, args ...any) {
	if e.debug {
		e.logger.Printf(format, args...)
	}
}
