// ABOUTME: RestoreOnPanic releases terminal guards on panic and prints the stack trace
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal

package screen

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/x/ansi"
)

// Releaser is implemented by *RawMode and *AlternateScreen.
type Releaser interface {
	Release()
}

// RestoreOnPanic should be deferred right after the guards are obtained. On
// panic it releases the guards in reverse order, shows the cursor, prints the
// panic value and stack trace to stderr, then exits with code 1.
func RestoreOnPanic(guards ...Releaser) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(os.Stdout, guards)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is switched. Unlike RestoreOnPanic it does NOT
// call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(guards ...Releaser) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(os.Stdout, guards)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

func restoreAfterPanic(out io.Writer, guards []Releaser) {
	for i := len(guards) - 1; i >= 0; i-- {
		if guards[i] != nil {
			guards[i].Release()
		}
	}
	if SupportsANSI() {
		_, _ = io.WriteString(out, ansi.ShowCursor)
	}
}
