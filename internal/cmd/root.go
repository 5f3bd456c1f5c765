package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"blizhe/internal/config"
	"blizhe/internal/logging"
	"blizhe/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start a conversation session (default)" default:"1"`
	Serve     ServeCmd     `cmd:"serve" help:"Host the app over SSH for remote sessions"`
	History   HistoryCmd   `cmd:"history" help:"List past sessions"`
	Favorites FavoritesCmd `cmd:"favorites" help:"List favorited questions"`
	Clear     ClearCmd     `cmd:"clear" help:"Delete all history and favorites"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play feedback sound (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting if the flag is at its default and the env var is unset.

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("BLIZHE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("BLIZHE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("BLIZHE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("BLIZHE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("BLIZHE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the database
	// layer can log through logging.Logger.
	container, err := NewContainer(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Count int    `help:"Default question count offered in the setup wizard" default:"0"`
	Theme string `help:"Color theme" default:"" enum:",blue,warm,neutral"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	if r.Count > 0 {
		settings.DefaultCount = &r.Count
	}
	if r.Theme != "" {
		settings.Theme = r.Theme
	}

	logging.Logger.Info("Starting blizhe TUI")

	p := tea.NewProgram(
		ui.NewModel(
			cli.Container.Catalog,
			cli.Container.SessionService,
			cli.Container.SoundPlayer,
			settings,
		),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
