// Package tui holds the terminal setup shared by the dashboard commands.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI picks the lipgloss color profile. CLICOLOR_FORCE=1 or
// COLORTERM=truecolor force full color, which keeps output stable when
// stdout is not a terminal. MASONRY_COLOR overrides both with one of
// "truecolor", "256", "16" or "none".
func InitializeTUI() {
	switch os.Getenv("MASONRY_COLOR") {
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	case "256":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	case "16":
		lipgloss.SetColorProfile(termenv.ANSI)
		return
	case "none":
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
