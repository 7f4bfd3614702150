package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/cli"
)

// BlocksCmd returns the blocks subcommand
func BlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "List the kanban blocks of a document",
		Long: `List every fenced kanban block of a Markdown document.

Examples:
  pasomd blocks notes.md
  pasomd blocks notes.md --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runBlocks,
	}
	addOutputFlags(cmd)
	return cmd
}

func runBlocks(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	summaries, err := cliInstance.App.BoardService.Blocks(cmd.Context(), args[0])
	if err != nil {
		return cli.Report(formatter, err)
	}

	var b strings.Builder
	if len(summaries) == 0 {
		b.WriteString("No kanban blocks found")
	}
	for i, s := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Block %d  lines %d-%d  %d columns, %d items", s.Index, s.StartLine+1, s.EndLine+1, s.Columns, s.Items)
	}
	return formatter.Success(b.String(), map[string]interface{}{"blocks": summaries})
}
