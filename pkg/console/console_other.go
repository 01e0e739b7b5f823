// ABOUTME: Fallback for platforms with neither termios nor a Windows console
// ABOUTME: Every native operation reports ErrUnsupported

//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package console

import "os"

const rawMask uint32 = 0

// Open reports ErrUnsupported.
func Open() (Handle, error) {
	return nil, ErrUnsupported
}

// OpenFile reports ErrUnsupported.
func OpenFile(_ *os.File) (Handle, error) {
	return nil, ErrUnsupported
}

// OpenScreenBuffers reports ErrUnsupported.
func OpenScreenBuffers() (ScreenBuffers, error) {
	return nil, ErrUnsupported
}

// OpenActiveOutput reports ErrUnsupported.
func OpenActiveOutput() (*os.File, error) {
	return nil, ErrUnsupported
}

// EnableVirtualTerminal reports ErrUnsupported.
func EnableVirtualTerminal() error {
	return ErrUnsupported
}
