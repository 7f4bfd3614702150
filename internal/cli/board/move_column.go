package board

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/cli"
	"github.com/thenoetrevino/pasomd/internal/models"
	"github.com/thenoetrevino/pasomd/internal/payload"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// MoveColumnCmd returns the move-column subcommand
func MoveColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move-column FILE",
		Short: "Reorder a column",
		Long: `Move a column to another position and write the change back into the document.

--to is an insertion index: the column lands before the column currently at that
index, and an index equal to the number of columns moves it to the end.

Examples:
  pasomd move-column notes.md --payload='{"columnIndex":0}' --to=3
  pasomd move-column notes.md --from=2 --to=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runMoveColumn,
	}

	cmd.Flags().Int("block", 0, "Index of the kanban block in the document")
	cmd.Flags().String("payload", "", `Drag payload, e.g. {"columnIndex":1}`)
	cmd.Flags().Int("from", -1, "Source column index (alternative to --payload)")
	cmd.Flags().Int("to", 0, "Insertion index")
	addOutputFlags(cmd)

	return cmd
}

func runMoveColumn(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]
	blockIndex, _ := cmd.Flags().GetInt("block")
	to, _ := cmd.Flags().GetInt("to")

	raw, _ := cmd.Flags().GetString("payload")
	if raw == "" {
		if !cmd.Flags().Changed("from") {
			return formatter.Fail(cli.ExitUsage, "MISSING_PAYLOAD", fmt.Errorf("either --payload or --from is required"))
		}
		from, _ := cmd.Flags().GetInt("from")
		raw = payload.EncodeColumn(models.ColumnPayload{ColumnIndex: from})
	}
	column, ok := payload.DecodeColumn(raw)
	if !ok {
		return cli.Report(formatter, fmt.Errorf("%w: %s", models.ErrInvalidPayload, raw))
	}

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	result, err := cliInstance.App.BoardService.MoveColumn(cmd.Context(), boardservice.MoveColumnRequest{
		Path:   path,
		Block:  blockIndex,
		Column: column,
		To:     to,
	})
	if err != nil {
		return cli.Report(formatter, err)
	}

	message := "No change"
	if result.Changed {
		message = "✓ Column moved"
	}
	return formatter.Success(message, map[string]interface{}{
		"changed": result.Changed,
		"board":   result.Board,
	})
}
