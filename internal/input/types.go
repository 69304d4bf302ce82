// Package input provides synthetic pointer event injection.
package input

import (
	"errors"
	"fmt"
)

// MouseFlag mirrors the Win32 MOUSEEVENTF_* bits carried by a mouse input.
type MouseFlag uint32

const (
	FlagMove      MouseFlag = 0x0001
	FlagLeftDown  MouseFlag = 0x0002
	FlagLeftUp    MouseFlag = 0x0004
	FlagRightDown MouseFlag = 0x0008
	FlagRightUp   MouseFlag = 0x0010
	FlagAbsolute  MouseFlag = 0x8000
)

// NormalizedMax is the upper bound of the OS absolute coordinate space.
const NormalizedMax = 65535

// ErrZeroResolution is returned when an absolute move is requested against a
// screen dimension of zero.
var ErrZeroResolution = errors.New("absolute movement requires a non-zero screen resolution")

// MouseEvent is one OS-level mouse input
type MouseEvent struct {
	Dx    int32
	Dy    int32
	Flags MouseFlag
}

// Has reports whether all bits of f are set on the event.
func (e MouseEvent) Has(f MouseFlag) bool {
	return e.Flags&f == f
}

// Move describes a single pointer move request together with the desired and
// previous button states.
type Move struct {
	X            int
	Y            int
	ScreenWidth  int
	ScreenHeight int
	Absolute     bool

	LeftDown  bool
	RightDown bool

	// PriorLeftDown and PriorRightDown are the button states requested by the
	// previous move. A button that was down and is no longer requested is
	// released.
	PriorLeftDown  bool
	PriorRightDown bool
}

// PointerInjector injects one move request into the host
type PointerInjector interface {
	Inject(m Move) error
}

// InjectionError is returned when the OS accepted none of the submitted events.
type InjectionError struct {
	// Code is the OS error code, 0 when the platform does not report one.
	Code   uint32
	Reason string
}

func (e *InjectionError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("pointer injection failed: %s (code %d)", e.Reason, e.Code)
	}
	return fmt.Sprintf("pointer injection failed: %s", e.Reason)
}

// BuildEvents translates a move request into the batch submitted to the OS.
//
// Absolute coordinates are scaled as (65535 / screen) * pos using 32-bit
// integer division. The result is coarser than a true linear mapping but
// matches the coordinates earlier scripts were recorded against.
func BuildEvents(m Move) ([]MouseEvent, error) {
	move := MouseEvent{Flags: FlagMove}
	if m.Absolute {
		if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
			return nil, ErrZeroResolution
		}
		move.Flags |= FlagAbsolute
		move.Dx = NormalizedMax / int32(m.ScreenWidth) * int32(m.X)
		move.Dy = NormalizedMax / int32(m.ScreenHeight) * int32(m.Y)
	} else {
		move.Dx = int32(m.X)
		move.Dy = int32(m.Y)
	}

	events := []MouseEvent{move}
	if !(m.LeftDown || m.PriorLeftDown || m.RightDown || m.PriorRightDown) {
		return events, nil
	}

	var button MouseEvent
	if m.LeftDown {
		button.Flags |= FlagLeftDown
	} else if m.PriorLeftDown {
		button.Flags |= FlagLeftUp
	}
	if m.RightDown {
		button.Flags |= FlagRightDown
	} else if m.PriorRightDown {
		button.Flags |= FlagRightUp
	}
	return append(events, button), nil
}

// sendFunc submits a batch to the OS and returns how many events it accepted.
type sendFunc func(events []MouseEvent) (int, error)

// Injector injects pointer events through the platform input facility
type Injector struct {
	send sendFunc
}

// NewInjector creates an injector bound to the platform input facility
func NewInjector() *Injector {
	return &Injector{send: sendInput}
}

// Inject submits the move event and, when a button changes or stays held, the
// button event as one batch.
func (i *Injector) Inject(m Move) error {
	events, err := BuildEvents(m)
	if err != nil {
		return err
	}

	n, err := i.send(events)
	if n != 0 {
		return nil
	}

	var injErr *InjectionError
	if errors.As(err, &injErr) {
		return injErr
	}
	if err != nil {
		return &InjectionError{Reason: err.Error()}
	}
	return &InjectionError{Reason: "no events accepted"}
}
