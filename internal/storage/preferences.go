package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// GetPreferences returns the stored user preferences, or the defaults when
// none have been saved yet.
func (s *SQLiteStorage) GetPreferences(ctx context.Context) (*model.UserPreferences, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		prefs         model.UserPreferences
		notifications int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT privacy_weight, legal_rights_weight, convenience_weight,
		       risk_threshold, enable_notifications
		FROM preferences WHERE id = 1`).Scan(
		&prefs.PrivacyWeight, &prefs.LegalRightsWeight, &prefs.ConvenienceWeight,
		&prefs.RiskThreshold, &notifications,
	)
	if err == sql.ErrNoRows {
		defaults := model.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	prefs.EnableNotifications = notifications != 0
	return &prefs, nil
}

// SavePreferences persists the user preferences, replacing any stored set.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, prefs *model.UserPreferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if prefs == nil {
		return fmt.Errorf("%w: prefs", ErrNilParameter)
	}
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	notifications := 0
	if prefs.EnableNotifications {
		notifications = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (id, privacy_weight, legal_rights_weight, convenience_weight,
		                         risk_threshold, enable_notifications, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			privacy_weight = excluded.privacy_weight,
			legal_rights_weight = excluded.legal_rights_weight,
			convenience_weight = excluded.convenience_weight,
			risk_threshold = excluded.risk_threshold,
			enable_notifications = excluded.enable_notifications,
			updated_at = excluded.updated_at`,
		prefs.PrivacyWeight, prefs.LegalRightsWeight, prefs.ConvenienceWeight,
		prefs.RiskThreshold, notifications, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
