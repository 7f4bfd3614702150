package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/pasomd/internal/cli"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// Violation is a column holding more items than its WIP limit allows
type Violation struct {
	Path   string `json:"path"`
	Block  int    `json:"block"`
	Column string `json:"column"`
	Items  int    `json:"items"`
	Limit  int    `json:"limit"`
}

// CheckCmd returns the check subcommand
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report columns over their WIP limit",
		Long: `Parse every kanban block of the given documents and report columns whose item
count exceeds their WIP limit. Exits with status 5 when any limit is exceeded.

Examples:
  pasomd check notes.md
  pasomd check docs/*.md --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().Int("jobs", 4, "Documents checked concurrently")
	addOutputFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	jobs, _ := cmd.Flags().GetInt("jobs")

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	violations, blocks, err := checkDocuments(cmd, cliInstance.App.BoardService, args, jobs)
	if err != nil {
		return cli.Report(formatter, err)
	}

	data := map[string]interface{}{
		"documents":  len(args),
		"blocks":     blocks,
		"violations": violations,
	}
	if len(violations) == 0 {
		return formatter.Success(fmt.Sprintf("✓ %d block(s) within WIP limits", blocks), data)
	}

	if formatter.JSON {
		if err := formatter.Success("", data); err != nil {
			return err
		}
		return cli.Exit(cli.ExitValidation, fmt.Errorf("%d column(s) over WIP limit", len(violations)))
	}

	var b strings.Builder
	for _, v := range violations {
		fmt.Fprintf(&b, "%s block %d: %s has %d items (limit %d)\n", v.Path, v.Block, v.Column, v.Items, v.Limit)
	}
	formatter.Println(strings.TrimSuffix(b.String(), "\n"))
	return formatter.Fail(cli.ExitValidation, "WIP_EXCEEDED", fmt.Errorf("%d column(s) over WIP limit", len(violations)))
}

// checkDocuments loads every document concurrently and collects WIP violations
// in argument order.
func checkDocuments(cmd *cobra.Command, svc boardservice.Service, paths []string, jobs int) ([]Violation, int, error) {
	if jobs <= 0 {
		jobs = 1
	}
	perDoc := make([][]Violation, len(paths))
	blockCounts := make([]int, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			snapshots, err := svc.LoadAll(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			blockCounts[i] = len(snapshots)
			for _, snap := range snapshots {
				for _, col := range snap.Board.Columns {
					if !col.OverWIPLimit() {
						continue
					}
					perDoc[i] = append(perDoc[i], Violation{
						Path:   path,
						Block:  snap.Block.Index,
						Column: col.Name,
						Items:  len(col.Items),
						Limit:  *col.WIPLimit,
					})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	violations := []Violation{}
	blocks := 0
	for i := range paths {
		violations = append(violations, perDoc[i]...)
		blocks += blockCounts[i]
	}
	return violations, blocks, nil
}
