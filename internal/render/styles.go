// Package render draws boards for the terminal.
package render

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/pasomd/internal/config"
)

// Styles holds the lipgloss styles for one color scheme.
type Styles struct {
	Column      lipgloss.Style
	Card        lipgloss.Style
	Highlighted lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	WIP         lipgloss.Style
	WIPExceeded lipgloss.Style
	Indicator   lipgloss.Style
}

// NewStyles builds the styles for a color scheme.
func NewStyles(colors config.ColorScheme) Styles {
	return Styles{
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.ColumnBorder)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colors.CardBorder)).
			Foreground(lipgloss.Color(colors.Normal)).
			Padding(0, 1),

		Highlighted: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(colors.Highlight)).
			Foreground(lipgloss.Color(colors.Normal)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)).
			Italic(true),

		WIP: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.WIPFg)),

		WIPExceeded: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.WIPExceeded)),

		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
	}
}
