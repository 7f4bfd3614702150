package board

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/cli"
	"github.com/thenoetrevino/pasomd/internal/document"
	"github.com/thenoetrevino/pasomd/internal/render"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Display a kanban block",
		Long: `Display one kanban block of a Markdown document as a board.

Examples:
  # Render the first block
  pasomd show notes.md

  # Render the second block with card text as Markdown
  pasomd show notes.md --block 1 --markdown

  # Dump the parsed board
  pasomd show notes.md --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("block", 0, "Index of the kanban block in the document")
	cmd.Flags().Bool("markdown", false, "Render card text as Markdown")
	cmd.Flags().Int("offset", 0, "Index of the first card shown in each column")
	cmd.Flags().Int("max-items", 0, "Cards shown per column (0 = all)")
	cmd.Flags().Int("width", render.DefaultColumnWidth, "Column width")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]
	blockIndex, _ := cmd.Flags().GetInt("block")

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	snapshot, err := cliInstance.App.BoardService.Load(cmd.Context(), path, blockIndex)
	if err != nil {
		return cli.Report(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success("", map[string]interface{}{
			"block": blockIndex,
			"board": snapshot.Board,
		})
	}

	a := cliInstance.App
	blockID := document.ID(path, blockIndex)
	if cmd.Flags().Changed("offset") {
		offset, _ := cmd.Flags().GetInt("offset")
		a.Scrolls.Set(blockID, offset)
	}

	opts := renderOptions(cmd, a.Config.RenderMarkdown, a.Config.ColorScheme)
	opts.Offset = a.Scrolls.Get(blockID)
	if target, ok := a.Highlights.Take(path); ok && target.Block == blockIndex {
		opts.Highlight = &render.Highlight{Column: target.Column, Item: target.Item}
	}

	return formatter.Success(render.Board(snapshot.Board, opts), nil)
}
