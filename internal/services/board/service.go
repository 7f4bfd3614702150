package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/pasomd/internal/cache"
	"github.com/thenoetrevino/pasomd/internal/document"
	"github.com/thenoetrevino/pasomd/internal/editqueue"
	"github.com/thenoetrevino/pasomd/internal/merger"
	"github.com/thenoetrevino/pasomd/internal/modelops"
	"github.com/thenoetrevino/pasomd/internal/models"
	"github.com/thenoetrevino/pasomd/internal/parser"
)

// Service defines all board-related operations on kanban blocks in documents
type Service interface {
	// Read operations
	Blocks(ctx context.Context, path string) ([]BlockSummary, error)
	Load(ctx context.Context, path string, index int) (*Snapshot, error)
	LoadAll(ctx context.Context, path string) ([]Snapshot, error)

	// Write operations
	MoveCard(ctx context.Context, req MoveCardRequest) (*Result, error)
	MoveColumn(ctx context.Context, req MoveColumnRequest) (*Result, error)
	Format(ctx context.Context, req FormatRequest) (*Result, error)
}

// Options configures a service
type Options struct {
	DefaultColumn  string
	FenceLanguages []string
}

// BlockSummary describes one kanban block of a document
type BlockSummary struct {
	Index     int `json:"index"`
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
	Columns   int `json:"columns"`
	Items     int `json:"items"`
}

// Snapshot is a parsed block together with the text it was parsed from
type Snapshot struct {
	Path  string
	Block document.Block
	Board models.Board
}

// Result is the outcome of an edit
type Result struct {
	Changed bool
	Board   models.Board
}

// MoveCardRequest encapsulates a card drop
type MoveCardRequest struct {
	Path     string
	Block    int
	Card     models.CardPayload
	ToColumn int
	ToItem   int
}

// MoveColumnRequest encapsulates a column drop
type MoveColumnRequest struct {
	Path   string
	Block  int
	Column models.ColumnPayload
	To     int
}

// FormatRequest rewrites a block without changing its board
type FormatRequest struct {
	Path      string
	Block     int
	Canonical bool // Regenerate the whole block instead of patching the lists
}

// service implements Service on top of a document store
type service struct {
	store      document.Store
	queue      *editqueue.Manager
	highlights *cache.Highlights
	opts       Options
}

// NewService creates a new board service
func NewService(store document.Store, queue *editqueue.Manager, highlights *cache.Highlights, opts Options) Service {
	if len(opts.FenceLanguages) == 0 {
		opts.FenceLanguages = []string{models.DefaultFenceLanguage}
	}
	if strings.TrimSpace(opts.DefaultColumn) == "" {
		opts.DefaultColumn = models.DefaultColumnName
	}
	return &service{
		store:      store,
		queue:      queue,
		highlights: highlights,
		opts:       opts,
	}
}

// Blocks lists the kanban blocks of a document
func (s *service) Blocks(ctx context.Context, path string) ([]BlockSummary, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	text, err := s.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	blocks := document.Parse(text).Blocks(s.opts.FenceLanguages)
	summaries := make([]BlockSummary, 0, len(blocks))
	for _, b := range blocks {
		board := s.parse(b.Lines)
		summaries = append(summaries, BlockSummary{
			Index:     b.Index,
			StartLine: b.StartLine,
			EndLine:   b.EndLine,
			Columns:   len(board.Columns),
			Items:     board.ItemCount(),
		})
	}
	return summaries, nil
}

// Load reads a document and parses one of its blocks
func (s *service) Load(ctx context.Context, path string, index int) (*Snapshot, error) {
	if err := validate(path, index); err != nil {
		return nil, err
	}
	text, err := s.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	block, ok := document.Parse(text).Block(s.opts.FenceLanguages, index)
	if !ok {
		return nil, fmt.Errorf("%w: block %d in %s", models.ErrBlockNotFound, index, path)
	}
	return &Snapshot{Path: path, Block: block, Board: s.parse(block.Lines)}, nil
}

// LoadAll reads a document once and parses every kanban block in it
func (s *service) LoadAll(ctx context.Context, path string) ([]Snapshot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	text, err := s.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	blocks := document.Parse(text).Blocks(s.opts.FenceLanguages)
	snapshots := make([]Snapshot, 0, len(blocks))
	for _, b := range blocks {
		snapshots = append(snapshots, Snapshot{Path: path, Block: b, Board: s.parse(b.Lines)})
	}
	return snapshots, nil
}

// MoveCard applies a card drop and writes the document if it changed
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) (*Result, error) {
	var target cache.Target
	moved := false

	from := req.Card
	result, err := s.edit(ctx, req.Path, req.Block, func(b models.Board) (models.Board, bool) {
		col, item, ok := modelops.CardDestination(b, from.ColumnIndex, from.ItemIndex, req.ToColumn, req.ToItem)
		if !ok || (col == from.ColumnIndex && item == from.ItemIndex) {
			return b, false
		}
		target = cache.Target{Block: req.Block, Column: col, Item: item}
		moved = true
		return modelops.MoveCard(b, from.ColumnIndex, from.ItemIndex, req.ToColumn, req.ToItem), true
	}, false)
	if err != nil {
		return nil, err
	}

	if moved && result.Changed && s.highlights != nil {
		s.highlights.Set(req.Path, target)
	}
	return result, nil
}

// MoveColumn applies a column drop and writes the document if it changed
func (s *service) MoveColumn(ctx context.Context, req MoveColumnRequest) (*Result, error) {
	return s.edit(ctx, req.Path, req.Block, func(b models.Board) (models.Board, bool) {
		to, ok := modelops.ColumnDestination(b, req.Column.ColumnIndex, req.To)
		if !ok || to == req.Column.ColumnIndex {
			return b, false
		}
		return modelops.MoveColumn(b, req.Column.ColumnIndex, req.To), true
	}, false)
}

// Format rewrites a block through the merger, or regenerates it when Canonical is set
func (s *service) Format(ctx context.Context, req FormatRequest) (*Result, error) {
	return s.edit(ctx, req.Path, req.Block, func(b models.Board) (models.Board, bool) {
		return b, true
	}, req.Canonical)
}

// edit runs one read-modify-write cycle on the document's queue. The document is
// re-read inside the queued step so that each edit sees the result of the previous one.
// When mutate reports that nothing applied, the block is left untouched.
func (s *service) edit(ctx context.Context, path string, index int, mutate func(models.Board) (models.Board, bool), canonical bool) (*Result, error) {
	if err := validate(path, index); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Every block of a document shares one queue: a write replaces the whole file,
	// so edits to sibling blocks must not interleave either.
	var result Result
	err := s.queue.Do(path, func(qctx context.Context) error {
		text, err := s.store.Read(qctx, path)
		if err != nil {
			return err
		}

		doc := document.Parse(text)
		block, ok := doc.Block(s.opts.FenceLanguages, index)
		if !ok {
			return fmt.Errorf("%w: block %d in %s", models.ErrBlockNotFound, index, path)
		}

		board, applied := mutate(s.parse(block.Lines))
		result.Board = board
		if !applied {
			slog.Debug("Move rejected, block left as is", "path", path, "block", index)
			return nil
		}

		var lines []string
		if canonical {
			lines = merger.Serialize(board)
		} else {
			lines = merger.Merge(block.Lines, board)
		}

		updated := doc.Splice(block, lines).String()
		if updated == text {
			slog.Debug("Edit left document unchanged", "path", path, "block", index)
			return nil
		}

		if err := s.store.Write(qctx, path, updated); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Changed = true
		slog.Info("Block updated", "path", path, "block", index)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) parse(lines []string) models.Board {
	return parser.ParseLines(lines, parser.Options{DefaultColumn: s.opts.DefaultColumn})
}

func validate(path string, index int) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if index < 0 {
		return ErrInvalidBlockIndex
	}
	return nil
}
