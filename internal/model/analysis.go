package model

import "fmt"

// RiskLevel buckets a 0-100 risk score for display.
type RiskLevel string

// Risk levels.
const (
	RiskLevelLow     RiskLevel = "LOW"
	RiskLevelMedium  RiskLevel = "MEDIUM"
	RiskLevelHigh    RiskLevel = "HIGH"
	RiskLevelUnknown RiskLevel = "UNKNOWN"
)

// Score thresholds for risk levels.
const (
	highRiskThreshold   = 70.0
	mediumRiskThreshold = 40.0
)

// RiskLevelForScore maps a clamped score onto a level. UNKNOWN is never
// produced here; it is reserved for the fallback result.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskLevelHigh
	case score >= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Match records a category's patterns firing against a single clause.
type Match struct {
	Category        Category `json:"category"`
	CategoryName    string   `json:"category_name"`
	Severity        float64  `json:"severity"`
	Confidence      float64  `json:"confidence"`
	MatchedText     string   `json:"matched_text"`
	MatchedKeywords []string `json:"matched_keywords"`
	Irreversible    bool     `json:"irreversible"`
	Explanation     string   `json:"explanation"`
	Implication     string   `json:"implication"`
}

// Validate ensures the match respects the engine's invariants.
func (m *Match) Validate() error {
	if !m.Category.Valid() {
		return fmt.Errorf("unknown category %q", m.Category)
	}
	if m.Severity < 0 || m.Severity > 1 {
		return fmt.Errorf("severity must be in [0,1], got %.2f", m.Severity)
	}
	if m.Confidence < 0.6 || m.Confidence > 0.95 {
		return fmt.Errorf("confidence must be in [0.6,0.95], got %.2f", m.Confidence)
	}
	return nil
}

// Clause is a segmented fragment of input text, the atomic unit of matching.
type Clause struct {
	Text        string  `json:"text"`
	Matches     []Match `json:"matches"`
	IsRisky     bool    `json:"is_risky"`
	HighestRisk float64 `json:"highest_risk"`
}

// RedFlag is a top-ranked match surfaced to the end user, annotated with the
// clause it came from.
type RedFlag struct {
	Category     Category `json:"category"`
	CategoryName string   `json:"category_name"`
	Severity     float64  `json:"severity"`
	Confidence   float64  `json:"confidence"`
	ClauseText   string   `json:"clause_text"`
	Explanation  string   `json:"explanation"`
	Implication  string   `json:"implication"`
	Irreversible bool     `json:"irreversible"`
}

// CategoryScore is the per-category aggregate shown in the breakdown section.
// Severity is the mean match severity scaled to 0-100.
type CategoryScore struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Severity float64  `json:"severity"`
	Matches  int      `json:"matches"`
}

// Benchmark compares a score against an industry peer group.
type Benchmark struct {
	Industry     string  `json:"industry"`
	IndustryName string  `json:"industry_name"`
	AverageScore float64 `json:"average_score"`
	Score        float64 `json:"score"`
	Percentage   int     `json:"percentage"`
	Comparison   string  `json:"comparison"`
}

// Metadata carries non-scoring context about an analysis. It deliberately
// contains no wall-clock fields so identical inputs produce identical
// results; the storage layer owns timestamps.
type Metadata struct {
	EngineVersion string `json:"engine_version"`
	URL           string `json:"url,omitempty"`
	Language      string `json:"language,omitempty"`
	Fallback      bool   `json:"fallback"`
}

// AnalysisResult is the complete output of one engine call.
type AnalysisResult struct {
	RiskScore       float64         `json:"risk_score"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	RedFlags        []RedFlag       `json:"red_flags"`
	Categories      []CategoryScore `json:"categories"`
	Benchmark       *Benchmark      `json:"benchmark,omitempty"`
	ClausesAnalyzed int             `json:"clauses_analyzed"`
	Confidence      float64         `json:"confidence"`
	Metadata        Metadata        `json:"metadata"`
}

// Validate ensures the result respects the engine's invariants.
func (r *AnalysisResult) Validate() error {
	if r.RiskScore < 0 || r.RiskScore > 100 {
		return fmt.Errorf("risk score must be in [0,100], got %.2f", r.RiskScore)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %.2f", r.Confidence)
	}
	if len(r.RedFlags) > 3 {
		return fmt.Errorf("at most 3 red flags allowed, got %d", len(r.RedFlags))
	}
	seen := make(map[Category]bool, len(r.RedFlags))
	for _, flag := range r.RedFlags {
		if seen[flag.Category] {
			return fmt.Errorf("duplicate red flag category %q", flag.Category)
		}
		seen[flag.Category] = true
	}
	if r.ClausesAnalyzed < 0 {
		return fmt.Errorf("clauses analyzed cannot be negative, got %d", r.ClausesAnalyzed)
	}
	return nil
}
