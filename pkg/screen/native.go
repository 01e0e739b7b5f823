// ABOUTME: NativeBackend drives the OS console: input-mode bitmask and secondary screen buffer
// ABOUTME: Used on Windows consoles that do not interpret control sequences

package screen

import (
	"github.com/mauromedda/termscreen/pkg/console"
)

// NativeBackend calls into the console subsystem.
type NativeBackend struct {
	input   *inputDiscipline
	buffers console.ScreenBuffers
	err     error
}

// NewNativeBackend returns a backend using open for the input handle, mask for
// raw mode and buffers for the alternate screen.
func NewNativeBackend(open InputOpener, buffers console.ScreenBuffers, mask uint32) *NativeBackend {
	return &NativeBackend{
		input:   &inputDiscipline{open: open, mask: mask},
		buffers: buffers,
	}
}

// newNativeBackendErr records why screen buffers are unavailable; screen
// transitions then fail with that cause while raw mode still works.
func newNativeBackendErr(open InputOpener, buffersErr error, mask uint32) *NativeBackend {
	b := NewNativeBackend(open, nil, mask)
	b.err = buffersErr
	return b
}

func (b *NativeBackend) Kind() Kind { return KindNative }

func (b *NativeBackend) EnterAlternateScreen() error {
	const op = "enter alternate screen"
	if b.buffers == nil {
		return platformError(op, b.unavailable())
	}
	if err := b.buffers.ActivateAlternate(); err != nil {
		return platformError(op, err)
	}
	return nil
}

func (b *NativeBackend) LeaveAlternateScreen() error {
	const op = "leave alternate screen"
	if b.buffers == nil {
		return platformError(op, b.unavailable())
	}
	if err := b.buffers.ActivatePrimary(); err != nil {
		return platformError(op, err)
	}
	return nil
}

func (b *NativeBackend) EnableRawMode() error {
	return b.input.enable()
}

func (b *NativeBackend) DisableRawMode() error {
	return b.input.disable()
}

func (b *NativeBackend) sealed() {}

func (b *NativeBackend) unavailable() error {
	if b.err != nil {
		return b.err
	}
	return console.ErrUnsupported
}
