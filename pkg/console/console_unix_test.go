// ABOUTME: termios Handle tests against a real pseudo-terminal opened with creack/pty
// ABOUTME: Verifies the mask round-trip touches only the local-mode word

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package console

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func openPTY(t *testing.T) *os.File {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return tty
}

func TestOpenFile_PTY(t *testing.T) {
	t.Parallel()
	tty := openPTY(t)

	h, err := OpenFile(tty)
	if err != nil {
		t.Fatalf("OpenFile() unexpected error: %v", err)
	}
	mode, err := h.Mode()
	if err != nil {
		t.Fatalf("Mode() unexpected error: %v", err)
	}
	if mode&RawMask() != RawMask() {
		t.Errorf("fresh pty mode %#x lacks raw mask bits %#x", mode, RawMask())
	}
}

func TestOpenFile_NotTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := OpenFile(f); !errors.Is(err, ErrNotConsole) {
		t.Fatalf("OpenFile(regular file) error = %v, want ErrNotConsole", err)
	}
}

func TestTermiosHandle_MaskRoundTrip(t *testing.T) {
	t.Parallel()
	tty := openPTY(t)

	h, err := OpenFile(tty)
	if err != nil {
		t.Fatal(err)
	}
	before, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlGetTermios)
	if err != nil {
		t.Fatal(err)
	}

	mode, err := h.Mode()
	if err != nil {
		t.Fatal(err)
	}
	if err := h.SetMode(mode &^ RawMask()); err != nil {
		t.Fatalf("SetMode(raw) unexpected error: %v", err)
	}

	raw, err := h.Mode()
	if err != nil {
		t.Fatal(err)
	}
	if raw&RawMask() != 0 {
		t.Errorf("raw mode %#x still has mask bits set", raw)
	}

	if err := h.SetMode(raw | RawMask()); err != nil {
		t.Fatalf("SetMode(restore) unexpected error: %v", err)
	}

	after, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlGetTermios)
	if err != nil {
		t.Fatal(err)
	}
	if after.Lflag != before.Lflag {
		t.Errorf("Lflag = %#x after round trip, want %#x", after.Lflag, before.Lflag)
	}
	if after.Iflag != before.Iflag || after.Oflag != before.Oflag || after.Cflag != before.Cflag {
		t.Error("round trip changed termios fields outside the local-mode word")
	}
}

func TestSetLow32(t *testing.T) {
	t.Parallel()

	var narrow uint32 = 0xdeadbeef
	setLow32(&narrow, 0x12)
	if narrow != 0x12 {
		t.Errorf("uint32 word = %#x, want 0x12", narrow)
	}

	var wide uint64 = 0xffff_0000_dead_beef
	setLow32(&wide, 0x12)
	if wide != 0xffff_0000_0000_0012 {
		t.Errorf("uint64 word = %#x, want 0xffff000000000012", wide)
	}
}

func TestOpenScreenBuffers_Unsupported(t *testing.T) {
	t.Parallel()

	if _, err := OpenScreenBuffers(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("OpenScreenBuffers() error = %v, want ErrUnsupported", err)
	}
	if err := EnableVirtualTerminal(); err != nil {
		t.Fatalf("EnableVirtualTerminal() = %v, want nil", err)
	}
	if f, err := OpenActiveOutput(); f != nil || !errors.Is(err, ErrUnsupported) {
		t.Fatalf("OpenActiveOutput() = (%v, %v), want (nil, ErrUnsupported)", f, err)
	}
}
