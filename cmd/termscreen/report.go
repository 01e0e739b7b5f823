// ABOUTME: Capability report printed by -info: selected backend, probe result, tty status
// ABOUTME: Encoded with easyjson's jwriter; no reflection, stable field order

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mauromedda/termscreen/internal/config"
	"github.com/mauromedda/termscreen/pkg/screen"
)

// report is the -info payload.
type report struct {
	Version         string
	OS              string
	Backend         string
	Preference      string
	SupportsANSI    bool
	RawMode         bool
	StdinTerminal   bool
	StdoutTerminal  bool
	CygwinTerminal  bool
	Width, Height   int
	AlternateScreen bool
	KeepRawOnExit   bool
}

func buildReport(cfg *config.Settings) report {
	backend := screen.Select()
	r := report{
		Version:         version,
		OS:              runtime.GOOS,
		Backend:         backend.Kind().String(),
		Preference:      cfg.Preference().String(),
		SupportsANSI:    screen.SupportsANSI(),
		RawMode:         rawCapable(backend),
		StdinTerminal:   isatty.IsTerminal(os.Stdin.Fd()),
		StdoutTerminal:  isatty.IsTerminal(os.Stdout.Fd()),
		CygwinTerminal:  isatty.IsCygwinTerminal(os.Stdout.Fd()),
		AlternateScreen: cfg.UseAlternateScreen(),
		KeepRawOnExit:   cfg.KeepRaw(),
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		r.Width, r.Height = w, h
	}
	return r
}

// rawCapable reports whether raw mode can be attempted at all; the native
// backend always tries.
func rawCapable(b screen.Backend) bool {
	if a, ok := b.(*screen.ANSIBackend); ok {
		return a.SupportsRawMode()
	}
	return true
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r report) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"version":`)
	w.String(r.Version)
	w.RawString(`,"os":`)
	w.String(r.OS)
	w.RawString(`,"backend":`)
	w.String(r.Backend)
	w.RawString(`,"preference":`)
	w.String(r.Preference)
	w.RawString(`,"supports_ansi":`)
	w.Bool(r.SupportsANSI)
	w.RawString(`,"raw_mode":`)
	w.Bool(r.RawMode)
	w.RawString(`,"stdin_terminal":`)
	w.Bool(r.StdinTerminal)
	w.RawString(`,"stdout_terminal":`)
	w.Bool(r.StdoutTerminal)
	w.RawString(`,"cygwin_terminal":`)
	w.Bool(r.CygwinTerminal)
	if r.Width > 0 {
		w.RawString(`,"size":{"width":`)
		w.Int(r.Width)
		w.RawString(`,"height":`)
		w.Int(r.Height)
		w.RawByte('}')
	}
	w.RawString(`,"alternate_screen":`)
	w.Bool(r.AlternateScreen)
	w.RawString(`,"keep_raw_on_exit":`)
	w.Bool(r.KeepRawOnExit)
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler via easyjson.
func (r report) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	r.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

func writeReport(out io.Writer, r report) error {
	data, err := easyjson.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
