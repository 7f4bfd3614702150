package models

import (
	"strconv"
	"strings"
)

// ColumnDefinition is a single column declaration as it was written in a block,
// e.g. "Doing (3) {#3b82f6}". It only lives long enough to build or update a Column.
type ColumnDefinition struct {
	RawName  string // Declaration text as authored, suffixes included
	BaseName string // Name with the WIP and color suffixes stripped
	WIPLimit *int   // Parsed "(N)" suffix, nil when absent or invalid
	Color    string // Normalized "#rrggbb" style color, empty when absent
}

// Column represents a kanban board column (e.g., "Todo", "Doing", "Done")
type Column struct {
	Name       string   `json:"name"`                // Display name of the column
	RawName    string   `json:"raw_name"`            // Declaration text, always consistent with Name/WIPLimit/Color
	StatusName string   `json:"status_name"`         // Status token written in front of items
	WIPLimit   *int     `json:"wip_limit,omitempty"` // Maximum number of items, nil when unlimited
	Color      string   `json:"color,omitempty"`     // Hex color, empty when unset
	Items      []string `json:"items"`               // Item texts in board order; may contain newlines
}

// NewColumn builds a column whose RawName is derived from its name, WIP limit and color.
func NewColumn(name string, wipLimit *int, color string) Column {
	return Column{
		Name:       name,
		RawName:    BuildRawName(name, wipLimit, color),
		StatusName: name,
		WIPLimit:   copyInt(wipLimit),
		Color:      color,
		Items:      []string{},
	}
}

// ColumnFromDefinition builds a column that keeps the declaration text exactly as authored.
func ColumnFromDefinition(def ColumnDefinition) Column {
	col := NewColumn(def.BaseName, def.WIPLimit, def.Color)
	if def.RawName != "" {
		col.RawName = def.RawName
	}
	return col
}

// BuildRawName renders the declaration text for a column: name, then "(N)", then "{#color}".
func BuildRawName(name string, wipLimit *int, color string) string {
	var b strings.Builder
	b.WriteString(name)
	if wipLimit != nil {
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(*wipLimit))
		b.WriteString(")")
	}
	if color != "" {
		b.WriteString(" {")
		b.WriteString(color)
		b.WriteString("}")
	}
	return b.String()
}

// Key returns the identity used to collapse duplicate declarations of this column.
func (c Column) Key() string {
	return NormalizeKey(c.Name)
}

// OverWIPLimit reports whether the column holds more items than its WIP limit allows.
func (c Column) OverWIPLimit() bool {
	return c.WIPLimit != nil && len(c.Items) > *c.WIPLimit
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := c
	out.WIPLimit = copyInt(c.WIPLimit)
	out.Items = append([]string{}, c.Items...)
	return out
}

// NormalizeKey folds a column name into its lookup key: trimmed and case-insensitive.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
