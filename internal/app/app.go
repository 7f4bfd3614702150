package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/pasomd/internal/cache"
	"github.com/thenoetrevino/pasomd/internal/config"
	"github.com/thenoetrevino/pasomd/internal/document"
	"github.com/thenoetrevino/pasomd/internal/editqueue"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Store  document.Store
	Logger *slog.Logger

	// Process-wide UI state
	Highlights *cache.Highlights
	Scrolls    *cache.ScrollOffsets

	// Service layer (business logic)
	BoardService boardservice.Service

	queue *editqueue.Manager
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.store == nil {
		ac.store = document.NewFileStore()
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	queue := editqueue.NewManager(context.Background())
	highlights := cache.NewHighlights(cfg.HighlightDuration())

	return &App{
		Config:     cfg,
		Store:      ac.store,
		Logger:     ac.logger,
		Highlights: highlights,
		Scrolls:    cache.NewScrollOffsets(),
		BoardService: boardservice.NewService(ac.store, queue, highlights, boardservice.Options{
			DefaultColumn:  cfg.DefaultColumn,
			FenceLanguages: cfg.FenceLanguages,
		}),
		queue: queue,
	}
}

// Close waits for queued edits to finish and stops the edit workers.
func (a *App) Close() error {
	a.queue.Close()
	return nil
}
