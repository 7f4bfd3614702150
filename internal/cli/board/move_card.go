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

// MoveCardCmd returns the move-card subcommand
func MoveCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move-card FILE",
		Short: "Move a card to another position",
		Long: `Move a card within or across columns and write the change back into the document.

The card is identified either by a drag payload or by --from-column/--from-item.

Examples:
  # Drop card 0 of column 0 at the top of column 2
  pasomd move-card notes.md --payload='{"columnIndex":0,"itemIndex":0}' --to-column=2 --to-item=0

  # Same move with explicit flags
  pasomd move-card notes.md --from-column=0 --from-item=0 --to-column=2 --to-item=0
`,
		Args: cobra.ExactArgs(1),
		RunE: runMoveCard,
	}

	cmd.Flags().Int("block", 0, "Index of the kanban block in the document")
	cmd.Flags().String("payload", "", `Drag payload, e.g. {"columnIndex":1,"itemIndex":3}`)
	cmd.Flags().Int("from-column", -1, "Source column index (alternative to --payload)")
	cmd.Flags().Int("from-item", -1, "Source item index (alternative to --payload)")
	cmd.Flags().Int("to-column", 0, "Target column index")
	cmd.Flags().Int("to-item", 0, "Target item index (values past the end append)")
	addOutputFlags(cmd)

	return cmd
}

func runMoveCard(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]
	blockIndex, _ := cmd.Flags().GetInt("block")
	toColumn, _ := cmd.Flags().GetInt("to-column")
	toItem, _ := cmd.Flags().GetInt("to-item")

	raw, err := cardPayloadFlag(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "MISSING_PAYLOAD", err)
	}
	card, ok := payload.DecodeCard(raw)
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

	result, err := cliInstance.App.BoardService.MoveCard(cmd.Context(), boardservice.MoveCardRequest{
		Path:     path,
		Block:    blockIndex,
		Card:     card,
		ToColumn: toColumn,
		ToItem:   toItem,
	})
	if err != nil {
		return cli.Report(formatter, err)
	}

	message := "No change"
	if result.Changed {
		message = fmt.Sprintf("✓ Card moved to column %d", toColumn)
	}
	return formatter.Success(message, map[string]interface{}{
		"changed": result.Changed,
		"board":   result.Board,
	})
}

// cardPayloadFlag returns --payload, or builds the payload from --from-column/--from-item
func cardPayloadFlag(cmd *cobra.Command) (string, error) {
	if raw, _ := cmd.Flags().GetString("payload"); raw != "" {
		return raw, nil
	}
	if !cmd.Flags().Changed("from-column") || !cmd.Flags().Changed("from-item") {
		return "", fmt.Errorf("either --payload or both --from-column and --from-item are required")
	}
	fromColumn, _ := cmd.Flags().GetInt("from-column")
	fromItem, _ := cmd.Flags().GetInt("from-item")
	return payload.EncodeCard(models.CardPayload{ColumnIndex: fromColumn, ItemIndex: fromItem}), nil
}
