package board

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/app"
	"github.com/thenoetrevino/pasomd/internal/cli"
	"github.com/thenoetrevino/pasomd/internal/document"
	"github.com/thenoetrevino/pasomd/internal/models"
	"github.com/thenoetrevino/pasomd/internal/payload"
	"github.com/thenoetrevino/pasomd/internal/render"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// WatchCmd returns the watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Render a kanban block live and accept drops on stdin",
		Long: `Render one kanban block and re-render it whenever the document changes on disk.

Drops are read from stdin, one JSON object per line:
  {"kind":"card","payload":"{\"columnIndex\":0,\"itemIndex\":1}","toColumn":2,"toItem":0}
  {"kind":"column","payload":"{\"columnIndex\":2}","to":0}
  {"kind":"scroll","offset":3}

Stop with Ctrl+C.
`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().Int("block", 0, "Index of the kanban block in the document")
	cmd.Flags().Bool("markdown", false, "Render card text as Markdown")
	cmd.Flags().Int("max-items", 0, "Cards shown per column (0 = all)")
	cmd.Flags().Int("width", render.DefaultColumnWidth, "Column width")
	cmd.Flags().Duration("debounce", document.DefaultDebounce, "Quiet period before re-rendering after a change")
	addOutputFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]
	blockIndex, _ := cmd.Flags().GetInt("block")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	cliInstance, err := cli.NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := cliInstance.App
	session := newWatchSession(a, formatter, path, blockIndex, renderOptions(cmd, a.Config.RenderMarkdown, a.Config.ColorScheme))
	if err := session.refresh(ctx, true); err != nil {
		return cli.Report(formatter, err)
	}

	go func() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			if err := session.apply(ctx, line); err != nil {
				session.report(err)
			}
		}
	}()

	a.Logger.Info("Watching document", "path", path, "block", blockIndex)
	err = document.Watch(ctx, path, debounce, func() {
		if err := session.refresh(ctx, false); err != nil {
			session.report(err)
		}
	})
	a.Logger.Info("Stopped watching document", "path", path)
	if err != nil {
		return cli.Report(formatter, err)
	}
	return nil
}

// watchCommand is one line of watch input
type watchCommand struct {
	Kind     string `json:"kind"`
	Payload  string `json:"payload"`
	ToColumn int    `json:"toColumn"`
	ToItem   int    `json:"toItem"`
	To       int    `json:"to"`
	Offset   int    `json:"offset"`
}

// watchSession renders one block and applies drops to it. Output from the stdin
// reader and the file watcher is serialized through mu.
type watchSession struct {
	app       *app.App
	formatter *cli.OutputFormatter
	path      string
	block     int
	opts      render.Options

	mu       sync.Mutex
	lastText string
}

func newWatchSession(a *app.App, formatter *cli.OutputFormatter, path string, block int, opts render.Options) *watchSession {
	return &watchSession{
		app:       a,
		formatter: formatter,
		path:      path,
		block:     block,
		opts:      opts,
	}
}

// apply decodes one command and runs it against the block
func (w *watchSession) apply(ctx context.Context, line []byte) error {
	var c watchCommand
	if err := json.Unmarshal(line, &c); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
	}

	svc := w.app.BoardService
	switch c.Kind {
	case "card":
		card, ok := payload.DecodeCard(c.Payload)
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrInvalidPayload, c.Payload)
		}
		if _, err := svc.MoveCard(ctx, boardservice.MoveCardRequest{
			Path:     w.path,
			Block:    w.block,
			Card:     card,
			ToColumn: c.ToColumn,
			ToItem:   c.ToItem,
		}); err != nil {
			return err
		}
		return w.refresh(ctx, false)

	case "column":
		column, ok := payload.DecodeColumn(c.Payload)
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrInvalidPayload, c.Payload)
		}
		if _, err := svc.MoveColumn(ctx, boardservice.MoveColumnRequest{
			Path:   w.path,
			Block:  w.block,
			Column: column,
			To:     c.To,
		}); err != nil {
			return err
		}
		return w.refresh(ctx, false)

	case "scroll":
		w.app.Scrolls.Set(document.ID(w.path, w.block), c.Offset)
		return w.refresh(ctx, true)

	default:
		return fmt.Errorf("%w: unknown command kind %q", models.ErrInvalidPayload, c.Kind)
	}
}

// refresh re-renders the block. Unless force is set, nothing is written when the
// document text is the same as at the last render.
func (w *watchSession) refresh(ctx context.Context, force bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	text, err := w.app.Store.Read(ctx, w.path)
	if err != nil {
		return err
	}
	if !force && text == w.lastText {
		return nil
	}

	snapshot, err := w.app.BoardService.Load(ctx, w.path, w.block)
	if err != nil {
		return err
	}
	w.lastText = text

	opts := w.opts
	opts.Offset = w.app.Scrolls.Get(document.ID(w.path, w.block))
	if target, ok := w.app.Highlights.Take(w.path); ok && target.Block == w.block {
		opts.Highlight = &render.Highlight{Column: target.Column, Item: target.Item}
	}

	return w.formatter.Success(render.Board(snapshot.Board, opts), map[string]interface{}{
		"block":      w.block,
		"board":      snapshot.Board,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (w *watchSession) report(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, code := cli.Classify(err)
	w.app.Logger.Warn("Watch command failed", "path", w.path, "error", err)
	if fmtErr := w.formatter.Error(code, err.Error()); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
}
