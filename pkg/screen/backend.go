// ABOUTME: Backend is the closed set of terminal-state mechanisms: ANSI sequences or native console
// ABOUTME: Shared raw-mode mask logic lives here so both variants restore bits the same way

package screen

import (
	"github.com/mauromedda/termscreen/pkg/console"
)

// Kind identifies a Backend variant.
type Kind int

const (
	KindANSI Kind = iota
	KindNative
)

// String returns the human-readable name of the backend kind.
func (k Kind) String() string {
	switch k {
	case KindANSI:
		return "ansi"
	case KindNative:
		return "native"
	default:
		return "unknown"
	}
}

// Backend performs the raw transitions. The set of implementations is closed:
// *ANSIBackend and *NativeBackend.
//
// Backend methods are not serialized; use the package-level controller
// functions and guards, which hold the transition lock.
type Backend interface {
	Kind() Kind
	EnterAlternateScreen() error
	LeaveAlternateScreen() error
	EnableRawMode() error
	DisableRawMode() error

	sealed()
}

// InputOpener obtains the console input handle. It is called on every
// raw-mode transition, so a console re-attached mid-process is picked up.
type InputOpener func() (console.Handle, error)

// inputDiscipline toggles raw mode by masking the input-mode bitmask.
type inputDiscipline struct {
	open InputOpener
	mask uint32
}

// enable clears the mask bits: mode &^ mask.
func (d *inputDiscipline) enable() error {
	const op = "enable raw mode"
	if d == nil || d.open == nil {
		return platformError(op, ErrRawModeUnsupported)
	}
	h, err := d.open()
	if err != nil {
		return platformError(op, err)
	}
	mode, err := h.Mode()
	if err != nil {
		return platformError(op, err)
	}
	if err := h.SetMode(mode &^ d.mask); err != nil {
		return platformError(op, err)
	}
	return nil
}

// disable sets the mask bits again: mode | mask. Bits outside the mask keep
// whatever value they have now.
func (d *inputDiscipline) disable() error {
	const op = "disable raw mode"
	if d == nil || d.open == nil {
		return platformError(op, ErrRawModeUnsupported)
	}
	h, err := d.open()
	if err != nil {
		return platformError(op, err)
	}
	mode, err := h.Mode()
	if err != nil {
		return platformError(op, err)
	}
	if err := h.SetMode(mode | d.mask); err != nil {
		return platformError(op, err)
	}
	return nil
}
