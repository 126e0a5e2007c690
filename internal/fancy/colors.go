// Package fancy renders config and UI description trees for the terminal.
package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, keyed by what is being drawn rather than by hue.
var (
	colorTitle   = lipgloss.Color("39")  // tree roots and headings
	colorSection = lipgloss.Color("15")  // branch titles
	colorMuted   = lipgloss.Color("250") // counts, paths, details
	colorGuide   = lipgloss.Color("240") // tree connectors
	colorOption  = lipgloss.Color("208") // option cards
	colorList    = lipgloss.Color("228") // priority lists
	colorAction  = lipgloss.Color("201") // buttons
	colorOK      = lipgloss.Color("82")
	colorFailure = lipgloss.Color("196")
)
