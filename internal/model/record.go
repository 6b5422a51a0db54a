package model

import (
	"fmt"
	"time"
)

// AnalysisRecord is a stored analysis: the engine result plus the caller
// context the storage layer owns (identity, source, timestamp).
type AnalysisRecord struct {
	CreatedAt time.Time       `json:"created_at"`
	Result    *AnalysisResult `json:"result"`
	ID        string          `json:"id"`
	URL       string          `json:"url,omitempty"`
	Source    string          `json:"source"`
	RiskScore float64         `json:"risk_score"`
	RiskLevel RiskLevel       `json:"risk_level"`
}

// Validate ensures the record has valid data.
func (r *AnalysisRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if r.Result == nil {
		return fmt.Errorf("record result is required")
	}
	if err := r.Result.Validate(); err != nil {
		return fmt.Errorf("invalid result: %w", err)
	}
	return nil
}
