package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fineprint-dev/fineprint/internal/model"
	"github.com/fineprint-dev/fineprint/internal/service"
)

// SaveAnalysis stores an analysis record and prunes history beyond the
// configured limit, oldest rows first.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, record *model.AnalysisRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO analyses (id, url, source, risk_score, risk_level, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.URL, record.Source,
		record.RiskScore, string(record.RiskLevel), string(resultJSON), createdAt,
	); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}

	// History is capped; everything older than the newest N rows goes.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM analyses WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC, id LIMIT ?
		)`, service.HistoryLimit,
	); err != nil {
		return fmt.Errorf("failed to prune analysis history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis: %w", err)
	}

	slog.Debug("saved analysis", "id", record.ID, "url", record.URL, "score", record.RiskScore)
	return nil
}

// GetAnalysis returns a stored analysis by ID, or nil when absent.
func (s *SQLiteStorage) GetAnalysis(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, source, risk_score, risk_level, result, created_at
		FROM analyses WHERE id = ?`, id)

	record, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return record, nil
}

// GetCachedAnalysis returns the most recent stored analysis for a URL if it
// is younger than the cache TTL, and nil on a cache miss.
func (s *SQLiteStorage) GetCachedAnalysis(ctx context.Context, url string) (*model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(url, "url"); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-service.CacheTTL)
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, source, risk_score, risk_level, result, created_at
		FROM analyses
		WHERE url = ? AND created_at > ?
		ORDER BY created_at DESC LIMIT 1`, url, cutoff)

	record, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached analysis: %w", err)
	}

	slog.Debug("cache hit", "url", url, "id", record.ID)
	return record, nil
}

// ListAnalyses returns stored analyses, newest first. A non-positive limit
// returns up to the history cap.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > service.HistoryLimit {
		limit = service.HistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, source, risk_score, risk_level, result, created_at
		FROM analyses
		ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []model.AnalysisRecord
	for rows.Next() {
		record, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", scanErr)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}
	return records, nil
}

// ClearAnalyses deletes all stored analyses.
func (s *SQLiteStorage) ClearAnalyses(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("failed to clear analyses: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanAnalysis.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*model.AnalysisRecord, error) {
	var (
		record     model.AnalysisRecord
		url        sql.NullString
		level      string
		resultJSON string
	)
	if err := row.Scan(&record.ID, &url, &record.Source, &record.RiskScore, &level, &resultJSON, &record.CreatedAt); err != nil {
		return nil, err
	}
	record.URL = url.String
	record.RiskLevel = model.RiskLevel(level)

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
	}
	record.Result = &result

	return &record, nil
}
