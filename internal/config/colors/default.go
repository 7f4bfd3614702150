package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Board
		ColumnBorder: "#5F87D7",
		CardBorder:   "#585858",
		Highlight:    "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// WIP
		WIPFg:       "#5FD75F",
		WIPExceeded: "#FF0000",

		// Messages
		ErrorFg:   "#FF0000",
		WarningFg: "#FFD700",
	}
}
