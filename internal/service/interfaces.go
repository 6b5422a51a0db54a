// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// CacheTTL is how long a URL-keyed analysis stays fresh.
const CacheTTL = 24 * time.Hour

// HistoryLimit caps the number of stored analyses; older rows are pruned.
const HistoryLimit = 100

// Storage defines the contract for the persistence layer: analysis history,
// the URL-keyed result cache, and stored user preferences.
type Storage interface {
	// Analysis history and cache
	SaveAnalysis(ctx context.Context, record *model.AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*model.AnalysisRecord, error)
	GetCachedAnalysis(ctx context.Context, url string) (*model.AnalysisRecord, error)
	ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRecord, error)
	ClearAnalyses(ctx context.Context) error

	// User preferences
	GetPreferences(ctx context.Context) (*model.UserPreferences, error)
	SavePreferences(ctx context.Context, prefs *model.UserPreferences) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// TextExtractor fetches a page and extracts its readable text. It is the
// CLI-side stand-in for the browser text-extraction collaborator.
type TextExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
