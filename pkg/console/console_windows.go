// ABOUTME: Windows console Handle over Get/SetConsoleMode and secondary screen buffers
// ABOUTME: Screen buffer calls go through kernel32 procs not wrapped by x/sys/windows

//go:build windows

package console

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

// ENABLE_WRAP_AT_EOL_OUTPUT shares its value with ENABLE_LINE_INPUT, so on
// the input handle the line-input bit covers both.
const rawMask uint32 = windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT

const consoleTextmodeBuffer = 1

var (
	kernel32                         = windows.NewLazySystemDLL("kernel32.dll")
	procCreateConsoleScreenBuffer    = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuffer = kernel32.NewProc("SetConsoleActiveScreenBuffer")
)

type consoleHandle struct {
	h windows.Handle
}

// Open returns the Handle of the console input buffer.
func Open() (Handle, error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("getting stdin handle: %w", err)
	}
	return fromHandle(h, "stdin")
}

// OpenFile returns the Handle for f, which must be a console.
func OpenFile(f *os.File) (Handle, error) {
	return fromHandle(windows.Handle(f.Fd()), f.Name())
}

func fromHandle(h windows.Handle, name string) (Handle, error) {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotConsole, name, err)
	}
	return &consoleHandle{h: h}, nil
}

func (c *consoleHandle) Mode() (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(c.h, &mode); err != nil {
		return 0, fmt.Errorf("GetConsoleMode: %w", err)
	}
	return mode, nil
}

func (c *consoleHandle) SetMode(mode uint32) error {
	if err := windows.SetConsoleMode(c.h, mode); err != nil {
		return fmt.Errorf("SetConsoleMode: %w", err)
	}
	return nil
}

type screenBuffers struct {
	mu        sync.Mutex
	primary   windows.Handle
	alternate windows.Handle
}

// OpenScreenBuffers captures the current output buffer as the primary one.
func OpenScreenBuffers() (ScreenBuffers, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("getting stdout handle: %w", err)
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, fmt.Errorf("%w: stdout: %v", ErrNotConsole, err)
	}
	return &screenBuffers{primary: h}, nil
}

// ActivateAlternate allocates the secondary buffer on first use, makes it
// the active one and points STD_OUTPUT_HANDLE at it. A second call while it
// is active only re-activates it.
//
// Files opened before the switch, os.Stdout included, keep writing to the
// primary buffer; use OpenActiveOutput for output meant for the alternate one.
func (s *screenBuffers) ActivateAlternate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alternate == 0 {
		r, _, callErr := procCreateConsoleScreenBuffer.Call(
			uintptr(windows.GENERIC_READ|windows.GENERIC_WRITE),
			uintptr(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE),
			0,
			consoleTextmodeBuffer,
			0,
		)
		if h := windows.Handle(r); h == windows.InvalidHandle || h == 0 {
			return fmt.Errorf("CreateConsoleScreenBuffer: %w", callErr)
		}
		s.alternate = windows.Handle(r)
	}
	if err := setActive(s.alternate); err != nil {
		return err
	}
	if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, s.alternate); err != nil {
		return fmt.Errorf("redirecting stdout handle: %w", err)
	}
	return nil
}

// ActivatePrimary shows the primary buffer again, restores STD_OUTPUT_HANDLE
// and frees the secondary buffer.
func (s *screenBuffers) ActivatePrimary() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := setActive(s.primary); err != nil {
		return err
	}
	if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, s.primary); err != nil {
		return fmt.Errorf("restoring stdout handle: %w", err)
	}
	if s.alternate != 0 {
		_ = windows.CloseHandle(s.alternate)
		s.alternate = 0
	}
	return nil
}

func setActive(h windows.Handle) error {
	r, _, callErr := procSetConsoleActiveScreenBuffer.Call(uintptr(h))
	if r == 0 {
		return fmt.Errorf("SetConsoleActiveScreenBuffer: %w", callErr)
	}
	return nil
}

// OpenActiveOutput opens CONOUT$, which always refers to the screen buffer
// currently displayed. The caller closes the file.
func OpenActiveOutput() (*os.File, error) {
	f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening CONOUT$: %w", err)
	}
	return f, nil
}

// EnableVirtualTerminal asks the output console to interpret control
// sequences. It fails when the console predates VT support.
func EnableVirtualTerminal() error {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return fmt.Errorf("getting stdout handle: %w", err)
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return fmt.Errorf("GetConsoleMode: %w", err)
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return fmt.Errorf("enabling virtual terminal processing: %w", err)
	}
	return nil
}
