package app

import (
	"log/slog"

	"github.com/thenoetrevino/pasomd/internal/document"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store  document.Store
	logger *slog.Logger
}

// WithStore sets the document store for the application
func WithStore(store document.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
