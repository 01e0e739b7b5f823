// ABOUTME: Named idempotent actions for a command-dispatch layer: enter and leave the alternate screen
// ABOUTME: Each carries its control-sequence payload and a native console fallback

package screen

import (
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Command is an action a dispatcher can queue. ANSI returns the payload to
// write when the console interprets control sequences; ExecuteNative performs
// the same action through the console API otherwise.
type Command interface {
	ANSI() string
	ExecuteNative() error
}

// EnterAlternateScreenCommand switches to the alternate screen.
type EnterAlternateScreenCommand struct{}

func (EnterAlternateScreenCommand) ANSI() string {
	return ansi.SetAltScreenSaveCursorMode
}

func (EnterAlternateScreenCommand) ExecuteNative() error {
	return transition(defaultNative().EnterAlternateScreen)
}

// LeaveAlternateScreenCommand switches back to the main screen.
type LeaveAlternateScreenCommand struct{}

func (LeaveAlternateScreenCommand) ANSI() string {
	return ansi.ResetAltScreenSaveCursorMode
}

func (LeaveAlternateScreenCommand) ExecuteNative() error {
	return transition(defaultNative().LeaveAlternateScreen)
}

// Execute runs cmds in order, writing payloads to w when SupportsANSI and
// using the native fallbacks otherwise. It stops at the first failure.
func Execute(w io.Writer, cmds ...Command) error {
	return execute(w, SupportsANSI(), cmds...)
}

func execute(w io.Writer, useANSI bool, cmds ...Command) error {
	for _, c := range cmds {
		if !useANSI {
			if err := c.ExecuteNative(); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, c.ANSI()); err != nil {
			return ioError("execute command", err)
		}
	}
	if f, ok := w.(interface{ Flush() error }); ok && useANSI {
		if err := f.Flush(); err != nil {
			return ioError("execute command", err)
		}
	}
	return nil
}
