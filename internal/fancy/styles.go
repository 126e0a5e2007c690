package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle   = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(colorSection).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	BranchStyle = lipgloss.NewStyle().Foreground(colorGuide)

	// UI description node kinds
	CardStyle   = lipgloss.NewStyle().Foreground(colorOption).Bold(true)
	ListStyle   = lipgloss.NewStyle().Foreground(colorList)
	ButtonStyle = lipgloss.NewStyle().Foreground(colorAction)

	ValidStyle = lipgloss.NewStyle().Foreground(colorOK)
	ErrorStyle = lipgloss.NewStyle().Foreground(colorFailure)
)

// HeadingText styles a heading node.
func HeadingText(text string) string { return RootStyle.Render(text) }

// CardText styles an option card title.
func CardText(text string) string { return CardStyle.Render(text) }

// ListText styles a bullet list caption.
func ListText(text string) string { return ListStyle.Render(text) }

// ButtonText styles a button label.
func ButtonText(text string) string { return ButtonStyle.Render(text) }

// ValidText styles a success line.
func ValidText(text string) string { return ValidStyle.Render(text) }

// ErrorText styles an error message for CLI output.
func ErrorText(text string) string { return ErrorStyle.Render(text) }

// PathText styles file paths and URLs.
func PathText(text string) string { return InfoStyle.Render(text) }
