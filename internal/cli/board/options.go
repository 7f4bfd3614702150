package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/config"
	"github.com/thenoetrevino/pasomd/internal/render"
)

// renderOptions reads the rendering flags shared by show and watch
func renderOptions(cmd *cobra.Command, markdownDefault bool, colors config.ColorScheme) render.Options {
	markdown := markdownDefault
	if cmd.Flags().Changed("markdown") {
		markdown, _ = cmd.Flags().GetBool("markdown")
	}
	width, _ := cmd.Flags().GetInt("width")
	maxItems, _ := cmd.Flags().GetInt("max-items")

	return render.Options{
		Styles:      render.NewStyles(colors),
		ColumnWidth: width,
		MaxItems:    maxItems,
		Markdown:    markdown,
	}
}
