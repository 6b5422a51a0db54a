// Package engine implements the deterministic risk analysis pipeline for
// legal text: clause segmentation, category matching, weighted scoring,
// red-flag selection, and industry benchmarking.
package engine

import (
	"fmt"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// Version identifies the engine rule set. Bump when the catalog or scoring
// rules change in a way that alters results.
const Version = "1.0.0"

// MaxTextLength is the caller-side cap on a single text. The engine itself
// is linear in clause count and never blocks; the cap exists so HTTP and
// batch callers bound their work.
const MaxTextLength = 50000

// MaxBatchSize bounds the number of texts per batch request.
const MaxBatchSize = 10

// Options carries the per-call inputs besides the text itself.
type Options struct {
	// URL of the analyzed page, used only for benchmark classification.
	URL string
	// Language hint; only "en" is meaningfully supported.
	Language string
	// Preferences overrides the default user preference weights.
	Preferences *model.UserPreferences
}

// Analyzer is the analysis engine. All catalogs are built and compiled once
// at construction and never mutated, so a single Analyzer is safe for
// concurrent use without synchronization.
type Analyzer struct {
	catalog    []compiledCategory
	index      map[model.Category]categoryEntry
	benchmarks []benchmarkBucket
}

// Option customizes engine construction.
type Option func(*settings)

type settings struct {
	catalog    []categoryEntry
	benchmarks []benchmarkBucket
}

// WithCatalog replaces the default category catalog. Intended for tests;
// the replacement is validated exactly like the default.
func WithCatalog(entries []categoryEntry) Option {
	return func(s *settings) { s.catalog = entries }
}

// New builds an Analyzer, compiling every keyword pattern and validating the
// catalog. It fails if category weights do not sum to 1.0.
func New(opts ...Option) (*Analyzer, error) {
	s := settings{
		catalog:    defaultCatalog(),
		benchmarks: defaultBenchmarks(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	compiled, err := compileCatalog(s.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog: %w", err)
	}

	index := make(map[model.Category]categoryEntry, len(compiled))
	for _, cat := range compiled {
		index[cat.entry.Info.Key] = cat.entry
	}

	return &Analyzer{
		catalog:    compiled,
		index:      index,
		benchmarks: s.benchmarks,
	}, nil
}

// Analyze runs the full pipeline over one text. It is a pure function of
// (text, opts): identical inputs produce identical results, and any input,
// including empty text, yields a well-formed result.
func (a *Analyzer) Analyze(text string, opts Options) (*model.AnalysisResult, error) {
	prefs := model.DefaultPreferences()
	if opts.Preferences != nil {
		if err := opts.Preferences.Validate(); err != nil {
			return nil, fmt.Errorf("invalid preferences: %w", err)
		}
		prefs = *opts.Preferences
	}

	normalized := preprocess(text)
	clauses := buildClauses(normalized, a.catalog)

	score := a.scoreRisk(clauses, normalized, prefs)

	result := &model.AnalysisResult{
		RiskScore:       score,
		RiskLevel:       model.RiskLevelForScore(score),
		RedFlags:        selectRedFlags(clauses),
		Categories:      a.aggregateCategories(clauses),
		Benchmark:       a.compareBenchmark(opts.URL, score),
		ClausesAnalyzed: len(clauses),
		Confidence:      overallConfidence(clauses),
		Metadata: model.Metadata{
			EngineVersion: Version,
			URL:           opts.URL,
			Language:      opts.Language,
		},
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("engine produced invalid result: %w", err)
	}
	return result, nil
}

// Categories returns the static catalog for the categories endpoint and CLI.
func (a *Analyzer) Categories() []model.CategoryInfo {
	infos := make([]model.CategoryInfo, 0, len(a.catalog))
	for _, cat := range a.catalog {
		infos = append(infos, cat.entry.Info)
	}
	return infos
}

// FallbackAnalysis is the canned degraded response callers substitute when
// the engine cannot be reached or an analysis fails upstream. The fallback
// marker distinguishes it from a genuine zero-risk result.
func FallbackAnalysis() *model.AnalysisResult {
	return &model.AnalysisResult{
		RiskScore: 0,
		RiskLevel: model.RiskLevelUnknown,
		RedFlags: []model.RedFlag{
			{
				Category:     "ANALYSIS_UNAVAILABLE",
				CategoryName: "Analysis Unavailable",
				Severity:     0,
				Confidence:   0,
				ClauseText:   "",
				Explanation:  "The analysis engine is currently unavailable.",
				Implication:  "Try again later; this page has not been assessed.",
			},
		},
		Categories:      []model.CategoryScore{},
		ClausesAnalyzed: 0,
		Confidence:      1.0,
		Metadata: model.Metadata{
			EngineVersion: Version,
			Fallback:      true,
		},
	}
}
