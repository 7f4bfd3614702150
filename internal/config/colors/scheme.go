package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and highlights)
	Accent string `yaml:"accent"`

	// Board elements
	ColumnBorder string `yaml:"column_border"`
	CardBorder   string `yaml:"card_border"`
	Highlight    string `yaml:"highlight"` // Border of the card touched by the last edit

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// WIP limit badge colors
	WIPFg       string `yaml:"wip_fg"`
	WIPExceeded string `yaml:"wip_exceeded"`

	// Message colors
	ErrorFg   string `yaml:"error_fg"`
	WarningFg string `yaml:"warning_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.Highlight, preset.Highlight)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.WIPFg, preset.WIPFg)
	fill(&c.WIPExceeded, preset.WIPExceeded)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.WarningFg, preset.WarningFg)
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.Highlight, other.Highlight)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.WIPFg, other.WIPFg)
	merge(&c.WIPExceeded, other.WIPExceeded)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.WarningFg, other.WarningFg)
}
