package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/cli"
	"github.com/thenoetrevino/pasomd/internal/cli/board"
)

var rootCmd = &cobra.Command{
	Use:   "pasomd",
	Short: "pasomd - kanban boards inside Markdown",
	Long: `pasomd reads and edits the kanban boards written in fenced "kanban" blocks of
Markdown documents. Edits rewrite only the column and item lists of a block and
leave the rest of the document as written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cli.BindGlobalFlags(rootCmd)
	rootCmd.AddCommand(board.Commands()...)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
