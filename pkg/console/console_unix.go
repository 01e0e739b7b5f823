// ABOUTME: termios-backed Handle: the local-mode flag word is the raw-mode bitmask
// ABOUTME: Falls back to /dev/tty when stdin is redirected; no native screen buffers on unix

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package console

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const rawMask uint32 = unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN

type termiosHandle struct {
	fd int
}

var (
	ttyOnce sync.Once
	tty     *os.File
	ttyErr  error
)

// Open returns the Handle of the controlling terminal. Stdin is preferred;
// when it is not a terminal /dev/tty is opened once and kept for the life of
// the process.
func Open() (Handle, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &termiosHandle{fd: int(os.Stdin.Fd())}, nil
	}
	ttyOnce.Do(func() {
		tty, ttyErr = os.OpenFile("/dev/tty", os.O_RDWR, 0)
	})
	if ttyErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConsole, ttyErr)
	}
	return OpenFile(tty)
}

// OpenFile returns the Handle for f, which must be a terminal.
func OpenFile(f *os.File) (Handle, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotConsole, f.Name())
	}
	return &termiosHandle{fd: fd}, nil
}

func (h *termiosHandle) Mode() (uint32, error) {
	t, err := unix.IoctlGetTermios(h.fd, ioctlGetTermios)
	if err != nil {
		return 0, fmt.Errorf("reading termios: %w", err)
	}
	return uint32(t.Lflag), nil
}

// SetMode replaces the local-mode word and leaves every other termios field
// as currently set.
func (h *termiosHandle) SetMode(mode uint32) error {
	t, err := unix.IoctlGetTermios(h.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("reading termios: %w", err)
	}
	setLow32(&t.Lflag, mode)
	if err := unix.IoctlSetTermios(h.fd, ioctlSetTermios, t); err != nil {
		return fmt.Errorf("writing termios: %w", err)
	}
	return nil
}

// setLow32 stores v in the low 32 bits of a flag word whose width differs
// between platforms (uint32 on linux, uint64 on darwin).
func setLow32[T ~uint32 | ~uint64](dst *T, v uint32) {
	*dst = *dst&^T(0xffffffff) | T(v)
}

// OpenScreenBuffers always fails on unix: the alternate screen is reached
// through control sequences only.
func OpenScreenBuffers() (ScreenBuffers, error) {
	return nil, ErrUnsupported
}

// OpenActiveOutput fails on unix: there is a single screen buffer and the
// alternate screen is reached through control sequences on stdout.
func OpenActiveOutput() (*os.File, error) {
	return nil, ErrUnsupported
}

// EnableVirtualTerminal is a no-op on unix; terminals interpret control
// sequences natively.
func EnableVirtualTerminal() error {
	return nil
}
