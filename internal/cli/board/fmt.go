package board

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/cli"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// FmtCmd returns the fmt subcommand
func FmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Normalize kanban blocks",
		Long: `Rewrite kanban blocks without changing their boards.

By default only the column and item lists are rewritten and every other line is
kept as written. --canonical regenerates the whole block.

Examples:
  pasomd fmt notes.md
  pasomd fmt notes.md --block 1 --canonical
`,
		Args: cobra.ExactArgs(1),
		RunE: runFmt,
	}

	cmd.Flags().Int("block", -1, "Index of the kanban block to format (-1 = all)")
	cmd.Flags().Bool("canonical", false, "Regenerate blocks in canonical form")
	addOutputFlags(cmd)

	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]
	blockIndex, _ := cmd.Flags().GetInt("block")
	canonical, _ := cmd.Flags().GetBool("canonical")

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()
	svc := cliInstance.App.BoardService

	indexes := []int{blockIndex}
	if blockIndex < 0 {
		summaries, err := svc.Blocks(cmd.Context(), path)
		if err != nil {
			return cli.Report(formatter, err)
		}
		indexes = indexes[:0]
		for _, s := range summaries {
			indexes = append(indexes, s.Index)
		}
	}

	var changed []int
	for _, index := range indexes {
		result, err := svc.Format(cmd.Context(), boardservice.FormatRequest{
			Path:      path,
			Block:     index,
			Canonical: canonical,
		})
		if err != nil {
			return cli.Report(formatter, err)
		}
		if result.Changed {
			changed = append(changed, index)
		}
	}

	message := "Already formatted"
	if len(changed) > 0 {
		message = fmt.Sprintf("✓ Formatted %d block(s)", len(changed))
	}
	return formatter.Success(message, map[string]interface{}{
		"blocks":  len(indexes),
		"changed": changed,
	})
}
