// ABOUTME: ANSIBackend switches screens by writing CSI ?1049h / ?1049l to an output stream
// ABOUTME: Raw mode goes through the platform input handle when one exists, else it is unsupported

package screen

import (
	"io"

	"github.com/charmbracelet/x/ansi"
)

// ANSIBackend emits control sequences to a caller-supplied writer. It never
// reads from the writer.
type ANSIBackend struct {
	out   io.Writer
	enter string
	leave string
	input *inputDiscipline
}

// NewANSIBackend returns a backend writing to out. Control sequences have no
// raw-mode form, so raw mode uses the handle from open with mask; a nil open
// makes every raw-mode call fail with ErrRawModeUnsupported.
func NewANSIBackend(out io.Writer, open InputOpener, mask uint32) *ANSIBackend {
	b := &ANSIBackend{
		out:   out,
		enter: ansi.SetAltScreenSaveCursorMode,
		leave: ansi.ResetAltScreenSaveCursorMode,
	}
	if open != nil {
		b.input = &inputDiscipline{open: open, mask: mask}
	}
	return b
}

func (b *ANSIBackend) Kind() Kind { return KindANSI }

func (b *ANSIBackend) EnterAlternateScreen() error {
	return b.write("enter alternate screen", b.enter)
}

func (b *ANSIBackend) LeaveAlternateScreen() error {
	return b.write("leave alternate screen", b.leave)
}

func (b *ANSIBackend) EnableRawMode() error {
	return b.input.enable()
}

func (b *ANSIBackend) DisableRawMode() error {
	return b.input.disable()
}

// SupportsRawMode reports whether the backend has an input handle for raw mode.
func (b *ANSIBackend) SupportsRawMode() bool {
	return b.input != nil
}

func (b *ANSIBackend) sealed() {}

// write sends seq and flushes buffered writers so the switch is visible
// before the call returns.
func (b *ANSIBackend) write(op, seq string) error {
	if _, err := io.WriteString(b.out, seq); err != nil {
		return ioError(op, err)
	}
	if f, ok := b.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return ioError(op, err)
		}
	}
	return nil
}
