package cmd

import (
	"fmt"

	"blizhe/internal/config"
	"blizhe/internal/logging"
	"blizhe/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting blizhe SSH server",
		"host", s.Host,
		"port", s.Port)

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	srv, err := server.NewServer(s.Host, s.Port, dbPath(), settings, cli.Container.Catalog)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start()
}
