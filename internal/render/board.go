package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/pasomd/internal/models"
)

// DefaultColumnWidth is the content width of a column when none is given
const DefaultColumnWidth = 28

// Highlight marks one card of the board.
type Highlight struct {
	Column int
	Item   int
}

// Options controls board rendering.
type Options struct {
	Styles      Styles
	ColumnWidth int
	MaxItems    int        // Cards shown per column, 0 for all
	Offset      int        // Index of the first visible card in every column
	Markdown    bool       // Render card text through glamour
	Highlight   *Highlight // Card to emphasize, nil for none
}

// Board renders the columns of a board side by side.
func Board(board models.Board, opts Options) string {
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = DefaultColumnWidth
	}
	if len(board.Columns) == 0 {
		return opts.Styles.Subtle.Render("No columns")
	}

	rendered := make([]string, 0, len(board.Columns))
	for i, col := range board.Columns {
		highlighted := -1
		if opts.Highlight != nil && opts.Highlight.Column == i {
			highlighted = opts.Highlight.Item
		}
		rendered = append(rendered, Column(col, highlighted, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Column renders one column: a header with the display name and item count (or
// count against the WIP limit), then its visible cards.
//
//	{Name} {count}/{limit}
//	▲ n more (if scrolled down)
//	{Card}
//	...
//	▼ n more (if more cards below)
func Column(col models.Column, highlighted int, opts Options) string {
	s := opts.Styles
	var b strings.Builder

	b.WriteString(s.Title.Render(col.Name))
	b.WriteString(" ")
	b.WriteString(wipBadge(col, s))
	b.WriteString("\n")

	if len(col.Items) == 0 {
		b.WriteString(s.Subtle.Render("No cards"))
		return columnStyle(col, s, opts.ColumnWidth).Render(b.String())
	}

	start := min(max(opts.Offset, 0), len(col.Items))
	end := len(col.Items)
	if opts.MaxItems > 0 {
		end = min(start+opts.MaxItems, len(col.Items))
	}

	if start > 0 {
		b.WriteString(s.Indicator.Render(fmt.Sprintf("▲ %d more", start)))
		b.WriteString("\n")
	}

	cardWidth := max(opts.ColumnWidth-4, 8)
	for i := start; i < end; i++ {
		text := col.Items[i]
		if opts.Markdown {
			text = CardText(text, cardWidth)
		}
		style := s.Card
		if i == highlighted {
			style = s.Highlighted
		}
		b.WriteString(style.Width(cardWidth).Render(text))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(col.Items) {
		b.WriteString("\n")
		b.WriteString(s.Indicator.Render(fmt.Sprintf("▼ %d more", len(col.Items)-end)))
	}

	return columnStyle(col, s, opts.ColumnWidth).Render(b.String())
}

func wipBadge(col models.Column, s Styles) string {
	if col.WIPLimit == nil {
		return s.WIP.Render(fmt.Sprintf("(%d)", len(col.Items)))
	}
	badge := fmt.Sprintf("%d/%d", len(col.Items), *col.WIPLimit)
	if col.OverWIPLimit() {
		return s.WIPExceeded.Render(badge + " !")
	}
	return s.WIP.Render(badge)
}

func columnStyle(col models.Column, s Styles, width int) lipgloss.Style {
	style := s.Column.Width(width)
	if col.Color != "" {
		style = style.BorderForeground(lipgloss.Color(col.Color))
	}
	return style
}
