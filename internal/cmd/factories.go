package cmd

import (
	"context"
	"path/filepath"

	adaptersound "blizhe/internal/adapters/sound"
	adapterstorage "blizhe/internal/adapters/storage"
	"blizhe/internal/catalog"
	"blizhe/internal/config"
	"blizhe/internal/ports"
	"blizhe/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Catalog        *catalog.Catalog
	SessionService *services.SessionService
	SoundPlayer    ports.SoundPlayer

	// Internal - for cleanup only
	store ports.Store
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(ctx context.Context) (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(dbPath())
	if err != nil {
		return nil, err
	}

	cat := catalog.Load(ctx, config.DataDir())

	return &Container{
		Catalog:        cat,
		SessionService: services.NewSessionService(store),
		SoundPlayer:    adaptersound.NewPlayer(),
		store:          store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// dbPath returns the path to the shared SQLite database
func dbPath() string {
	return filepath.Join(config.BlizheHome(), "blizhe.db")
}
