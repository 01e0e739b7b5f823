// ABOUTME: CLI entry point for termscreen: shows a status page on the alternate screen
// ABOUTME: Loads config, pins the backend, switches terminal state and restores it on exit or panic

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	// termfix must be imported before anything renders with lipgloss so no
	// background-color query is sent while the terminal is raw.
	_ "github.com/mauromedda/termscreen/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/termscreen/internal/config"
	tslog "github.com/mauromedda/termscreen/internal/log"
	"github.com/mauromedda/termscreen/pkg/console"
	"github.com/mauromedda/termscreen/pkg/screen"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("termscreen %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings, pins the backend and dispatches to the report or the session.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	args.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.LogLevel != "" {
		lvl, _ := tslog.ParseLevel(cfg.LogLevel)
		tslog.SetLevel(lvl)
	}

	if err := screen.SetPreference(cfg.Preference()); err != nil {
		return fmt.Errorf("pinning backend: %w", err)
	}

	if args.info {
		return writeReport(os.Stdout, buildReport(cfg))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -info for a non-interactive report")
	}
	return session(cfg, os.Stdout, os.Stdin)
}

// session switches the terminal, shows the status page, waits for a key and
// restores what it switched.
func session(cfg *config.Settings, out io.Writer, in io.Reader) error {
	page := renderPage(cfg, terminalWidth())

	var guards []screen.Releaser
	var alt *screen.AlternateScreen
	var raw *screen.RawMode

	if cfg.UseAlternateScreen() {
		s, err := screen.EnterAlternateScreen(cfg.UseRawMode())
		if err != nil {
			return fmt.Errorf("entering alternate screen: %w", err)
		}
		alt, raw = s, s.Raw()
		guards = append(guards, alt)
	} else if cfg.UseRawMode() {
		r, err := screen.EnableRawMode()
		if err != nil {
			return fmt.Errorf("enabling raw mode: %w", err)
		}
		raw = r
		guards = append(guards, raw)
	}
	defer screen.RestoreOnPanic(guards...)

	if raw != nil && cfg.KeepRaw() {
		raw.SetRestoreOnRelease(false)
	}

	// os.Stdout keeps the handle of the primary console buffer; on the native
	// backend the page must go to the buffer that is now displayed.
	if alt != nil && screen.Select().Kind() == screen.KindNative {
		f, err := console.OpenActiveOutput()
		if err != nil {
			tslog.Debug("active console output unavailable, writing to stdout: %v", err)
		} else {
			defer f.Close()
			out = f
		}
	}

	if _, err := io.WriteString(out, page); err != nil {
		releaseAll(guards)
		return fmt.Errorf("writing status page: %w", err)
	}

	if _, err := bufio.NewReader(in).ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		tslog.Debug("reading key: %v", err)
	}

	if err := leave(alt, raw); err != nil {
		return err
	}

	if raw != nil && cfg.KeepRaw() {
		fmt.Fprintln(os.Stderr, "raw mode was kept on release; disabling it explicitly")
		if err := screen.DisableRawMode(); err != nil {
			return fmt.Errorf("disabling raw mode: %w", err)
		}
	}
	return nil
}

// leave performs the explicit transitions so failures are reported, not swallowed.
func leave(alt *screen.AlternateScreen, raw *screen.RawMode) error {
	if alt != nil {
		if err := alt.Leave(); err != nil {
			return fmt.Errorf("leaving alternate screen: %w", err)
		}
		return nil
	}
	if raw != nil && raw.RestoreOnRelease() {
		if err := raw.Disable(); err != nil {
			return fmt.Errorf("disabling raw mode: %w", err)
		}
	}
	return nil
}

func releaseAll(guards []screen.Releaser) {
	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Release()
	}
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
