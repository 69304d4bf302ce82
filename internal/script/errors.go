package script

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a blank file path or a token that is not a valid integer
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileNotFound is returned when the command file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidData is returned for a data line with the wrong number of tokens
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidOperation is returned when absolute movement is used without a resolution
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInjection is returned when the OS refused the pointer events
	ErrInjection = errors.New("injection failed")
)

// ExecutionError describes why a run stopped.
type ExecutionError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Line is the 1-based physical line number, 0 if the error is not tied to a line.
	Line int

	// Text is the normalized line text.
	Text string

	Msg string
	Err error
}

func (e *ExecutionError) Error() string {
	msg := e.Msg
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, msg)
}

func (e *ExecutionError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func lineError(kind error, lineNr int, text, format string, args ...any) *ExecutionError {
	return &ExecutionError{
		Kind: kind,
		Line: lineNr,
		Text: text,
		Msg:  fmt.Sprintf(format, args...),
	}
}
