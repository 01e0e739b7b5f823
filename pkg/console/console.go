// ABOUTME: OS console collaborator: input-mode bitmask access and secondary screen buffers
// ABOUTME: Platform files supply Open/OpenFile/OpenScreenBuffers; Virtual is an in-memory stand-in

package console

import "errors"

// Handle reads and writes the input-mode bitmask of a console.
//
// On unix the bitmask is the termios local-mode word; on Windows it is the
// console input mode. Bit positions are platform-defined; callers should only
// combine them with RawMask.
type Handle interface {
	Mode() (uint32, error)
	SetMode(mode uint32) error
}

// ScreenBuffers switches which console buffer is displayed.
// Only one alternate buffer exists at a time.
type ScreenBuffers interface {
	ActivateAlternate() error
	ActivatePrimary() error
}

var (
	// ErrUnsupported is returned when the platform has no native mechanism
	// for the requested operation.
	ErrUnsupported = errors.New("console: operation not supported on this platform")

	// ErrNotConsole is returned when no terminal is attached to the process.
	ErrNotConsole = errors.New("console: not attached to a terminal")
)

// RawMask returns the input-mode bits that are cleared for raw mode:
// line buffering, echo, line editing and signal generation.
func RawMask() uint32 {
	return rawMask
}
