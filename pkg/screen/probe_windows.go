// ABOUTME: Windows capability probe: Cygwin/MSYS ptys or a console with VT processing enabled
// ABOUTME: Any failure fails closed to the native console backend

//go:build windows

package screen

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mauromedda/termscreen/internal/log"
	"github.com/mauromedda/termscreen/pkg/console"
)

func probeANSI() bool {
	if isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Debug("probe: cygwin/msys terminal, using control sequences")
		return true
	}
	if err := console.EnableVirtualTerminal(); err != nil {
		log.Debug("probe: virtual terminal processing unavailable: %v", err)
		return false
	}
	return true
}
