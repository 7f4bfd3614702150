package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Board
		ColumnBorder: "#FFFFFF",
		CardBorder:   "#585858",
		Highlight:    "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// WIP
		WIPFg:       "#D0D0D0",
		WIPExceeded: "#FFFFFF",

		// Messages
		ErrorFg:   "#FFFFFF",
		WarningFg: "#FFFFFF",
	}
}
