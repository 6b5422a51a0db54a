package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/fineprint-dev/fineprint/internal/config"
	"github.com/fineprint-dev/fineprint/internal/fetch"
	"github.com/fineprint-dev/fineprint/internal/model"
	"github.com/fineprint-dev/fineprint/internal/service"
	"github.com/fineprint-dev/fineprint/internal/storage"
)

// The CLI passes the fetcher around as the generic extractor.
var _ service.TextExtractor = (*fetch.Fetcher)(nil)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fineprint/fineprint.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadPreferences resolves the active user preferences. Stored values win;
// without storage the config file settings apply.
func loadPreferences(ctx context.Context, store service.Storage) (*model.UserPreferences, error) {
	if store != nil {
		return store.GetPreferences(ctx)
	}
	prefs, err := config.LoadPreferences(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}
