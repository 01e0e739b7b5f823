// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --alt, --raw, --keep-raw, --backend, --verbose, --info, --version

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/termscreen/internal/config"
)

type cliArgs struct {
	alt     bool
	raw     bool
	keepRaw bool
	backend string
	verbose bool
	info    bool
	version bool

	// set records which flags were given explicitly so they override config.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("termscreen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&a.alt, "alt", true, "Switch to the alternate screen")
	fs.BoolVar(&a.raw, "raw", true, "Enable raw input while the page is shown")
	fs.BoolVar(&a.keepRaw, "keep-raw", false, "Opt out of restoring raw mode on release, then disable it explicitly")
	fs.StringVar(&a.backend, "backend", "", "Backend preference: auto, ansi or native")
	fs.BoolVar(&a.verbose, "verbose", false, "Log terminal transitions at debug level")
	fs.BoolVar(&a.info, "info", false, "Print the capability report as JSON and exit")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		return a, err
	}
	a.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	return a, nil
}

// apply overlays explicitly given flags onto the loaded settings.
func (a cliArgs) apply(s *config.Settings) {
	if a.set["alt"] {
		s.AlternateScreen = &a.alt
	}
	if a.set["raw"] {
		s.RawMode = &a.raw
	}
	if a.set["keep-raw"] {
		s.KeepRawOnExit = &a.keepRaw
	}
	if a.set["backend"] {
		s.Backend = a.backend
	}
	if a.verbose {
		s.LogLevel = "debug"
	}
}
