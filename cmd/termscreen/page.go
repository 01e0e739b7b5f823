// ABOUTME: Status page shown while the terminal is switched: lipgloss header + glamour body
// ABOUTME: Rendered before any transition so no styling code runs while input is raw

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/termscreen/internal/config"
	"github.com/mauromedda/termscreen/pkg/screen"
)

const defaultTitle = "termscreen"

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#5A56E0")).
	Padding(0, 2)

// renderPage builds the whole page as one string.
func renderPage(cfg *config.Settings, width int) string {
	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	var b strings.Builder
	b.WriteString(center(headerStyle.Render(title), width))
	b.WriteString("\n\n")
	b.WriteString(renderMarkdown(statusMarkdown(cfg), width))
	b.WriteString("\n\n")
	b.WriteString(center(footerText(cfg), width))
	b.WriteString("\n")
	return b.String()
}

func statusMarkdown(cfg *config.Settings) string {
	backend := screen.Select()
	var b strings.Builder
	b.WriteString("## Terminal state\n\n")
	b.WriteString("| Setting | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Backend | `%s` |\n", backend.Kind())
	fmt.Fprintf(&b, "| Preference | `%s` |\n", cfg.Preference())
	fmt.Fprintf(&b, "| Control sequences | %s |\n", yesNo(screen.SupportsANSI()))
	fmt.Fprintf(&b, "| Alternate screen | %s |\n", yesNo(cfg.UseAlternateScreen()))
	fmt.Fprintf(&b, "| Raw input | %s |\n", yesNo(cfg.UseRawMode()))
	fmt.Fprintf(&b, "| Keep raw on release | %s |\n", yesNo(cfg.KeepRaw()))
	return b.String()
}

func footerText(cfg *config.Settings) string {
	if cfg.UseRawMode() {
		return "press any key to restore the terminal"
	}
	return "press enter to restore the terminal"
}

// renderMarkdown falls back to the raw text if glamour fails. The dark style
// is fixed: auto-detection would query the terminal.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ")
}

// center left-pads s to the middle of a line of the given display width.
func center(s string, width int) string {
	w := runewidth.StringWidth(ansi.Strip(s))
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
