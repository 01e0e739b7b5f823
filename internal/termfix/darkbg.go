// ABOUTME: Pre-sets lipgloss dark background so no OSC 11 query is ever sent
// ABOUTME: A query reply arriving while input is raw would be read as a keypress

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background lipgloss skips the sync.Once that asks
	// the terminal for its background color. Import this package before
	// anything renders styles.
	lipgloss.SetHasDarkBackground(true)
}
