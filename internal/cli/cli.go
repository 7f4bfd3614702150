package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/app"
	"github.com/thenoetrevino/pasomd/internal/config"
	"github.com/thenoetrevino/pasomd/internal/logging"
)

// GlobalOptions holds flags shared by every command
type GlobalOptions struct {
	ConfigPath string
	LogDir     string
}

// Globals is populated by the root command's persistent flags
var Globals GlobalOptions

// BindGlobalFlags registers the persistent flags on the root command
func BindGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&Globals.ConfigPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/pasomd/config.yaml)")
	cmd.PersistentFlags().StringVar(&Globals.LogDir, "log-dir", "", "Directory for pasomd.log (default ~/.pasomd/logs)")
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI loads configuration, sets up logging and builds the application container
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	initLogging()

	var (
		cfg *config.Config
		err error
	)
	if Globals.ConfigPath != "" {
		cfg, err = config.LoadFrom(Globals.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CLI{
		App: app.New(cfg, opts...),
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// initLogging points slog at the log file; on failure the default logger stays in place
func initLogging() {
	var err error
	if Globals.LogDir != "" {
		err = logging.InitWithDir(Globals.LogDir)
	} else {
		err = logging.Init()
	}
	if err != nil {
		slog.Warn("Logging to file disabled", "error", err)
	}
}
