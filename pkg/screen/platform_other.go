//go:build !windows

package screen

// platformBackend is fixed off Windows: control sequences for the screen,
// termios for raw mode. No probe runs.
func platformBackend() Backend {
	return defaultANSI()
}
