// ABOUTME: Error taxonomy for terminal transitions: IO, platform and composition failures
// ABOUTME: *Error unwraps to both its class sentinel and the underlying cause

package screen

import (
	"errors"
	"fmt"
)

var (
	// ErrIO classifies failures writing control sequences to the output stream.
	ErrIO = errors.New("terminal write failed")

	// ErrPlatform classifies failures obtaining or changing console state.
	ErrPlatform = errors.New("console request rejected")

	// ErrComposition classifies failures of a secondary step after the
	// primary step had already succeeded and was rolled back.
	ErrComposition = errors.New("composed transition failed")

	// ErrRawModeUnsupported is the cause reported when a backend has no
	// mechanism for raw mode.
	ErrRawModeUnsupported = errors.New("raw mode has no control-sequence form and no native input handle is available")

	// ErrAlreadySelected is returned by SetPreference once a backend has been chosen.
	ErrAlreadySelected = errors.New("backend already selected")
)

// Error describes a failed terminal transition.
type Error struct {
	Op    string // e.g. "enable raw mode"
	Class error  // ErrIO, ErrPlatform or ErrComposition
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Class, e.Err)
}

// Unwrap exposes both the class sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{e.Class, e.Err}
}

func ioError(op string, err error) error {
	return &Error{Op: op, Class: ErrIO, Err: err}
}

func platformError(op string, err error) error {
	return &Error{Op: op, Class: ErrPlatform, Err: err}
}

func compositionError(op string, err error) error {
	return &Error{Op: op, Class: ErrComposition, Err: err}
}
