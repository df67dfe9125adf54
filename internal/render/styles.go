package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorKeyword = lipgloss.Color("#7C3AED")
	colorName    = lipgloss.Color("#F9FAFB")
	colorLiteral = lipgloss.Color("#10B981")
	colorSymbol  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles holds one style per kind of output
type Styles struct {
	Title   lipgloss.Style
	Keyword lipgloss.Style
	Name    lipgloss.Style
	Literal lipgloss.Style
	Symbol  lipgloss.Style
	Comment lipgloss.Style
	Indent  lipgloss.Style
	Error   lipgloss.Style
	Detail  lipgloss.Style
}

// NewStyles creates the styles bound to renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorKeyword),

		Keyword: r.NewStyle().
			Foreground(colorKeyword).
			Bold(true),

		Name: r.NewStyle().
			Foreground(colorName),

		Literal: r.NewStyle().
			Foreground(colorLiteral),

		Symbol: r.NewStyle().
			Foreground(colorSymbol),

		Comment: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Indent: r.NewStyle().
			Foreground(colorMuted),

		Error: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		Detail: r.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2),
	}
}
