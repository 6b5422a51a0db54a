package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fineprint-dev/fineprint/internal/model"
)

const riskyTerms = `You agree that all disputes will be resolved through binding arbitration.
You waive right to class action proceedings of any kind against the company.
We may share your data with third-party advertisers and marketing partners.
Subscriptions automatically renew each month under recurring billing terms.`

func TestAnalyzeRiskyDocument(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	result, err := analyzer.Analyze(riskyTerms, Options{URL: "https://app.example.com/terms"})
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	assert.Equal(t, model.RiskLevelHigh, result.RiskLevel)
	assert.GreaterOrEqual(t, result.RiskScore, 70.0)
	assert.Equal(t, 4, result.ClausesAnalyzed)

	require.Len(t, result.RedFlags, 3)
	seen := make(map[model.Category]bool)
	for _, flag := range result.RedFlags {
		assert.False(t, seen[flag.Category], "red flag categories must be distinct")
		seen[flag.Category] = true
		assert.NotEmpty(t, flag.ClauseText)
		assert.NotEmpty(t, flag.Explanation)
	}
	// Data sharing matched three keywords, so its severity-confidence
	// product outranks the single-keyword arbitration hit.
	assert.Equal(t, model.CategoryDataSharingResale, result.RedFlags[0].Category)

	assert.Len(t, result.Categories, 4)
	require.NotNil(t, result.Benchmark)
	assert.Equal(t, "technology", result.Benchmark.Industry)

	assert.Equal(t, Version, result.Metadata.EngineVersion)
	assert.Equal(t, "https://app.example.com/terms", result.Metadata.URL)
	assert.False(t, result.Metadata.Fallback)
}

func TestAnalyzeCleanDocument(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	result, err := analyzer.Analyze("The quick brown fox jumps over the lazy dog near the river.", Options{})
	require.NoError(t, err)

	assert.Zero(t, result.RiskScore)
	assert.Equal(t, model.RiskLevelLow, result.RiskLevel)
	assert.Empty(t, result.RedFlags)
	assert.Empty(t, result.Categories)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyzeEmptyText(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	for _, text := range []string{"", "   \n\t  ", "short."} {
		result, err := analyzer.Analyze(text, Options{})
		require.NoError(t, err)

		assert.Zero(t, result.RiskScore)
		assert.Equal(t, model.RiskLevelLow, result.RiskLevel)
		assert.Zero(t, result.ClausesAnalyzed)
		assert.Equal(t, 1.0, result.Confidence)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	first, err := analyzer.Analyze(riskyTerms, Options{URL: "https://example.com/terms"})
	require.NoError(t, err)

	for range 5 {
		again, err := analyzer.Analyze(riskyTerms, Options{URL: "https://example.com/terms"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeRejectsInvalidPreferences(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	bad := model.UserPreferences{PrivacyWeight: 1.4}
	_, err = analyzer.Analyze(riskyTerms, Options{Preferences: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferences")
}

func TestAnalyzeMoreRiskNeverLowersLevel(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	mild := "Subscriptions automatically renew each month until you cancel them."
	result1, err := analyzer.Analyze(mild, Options{})
	require.NoError(t, err)

	harsh := mild + " You agree that all disputes go to binding arbitration without exception."
	result2, err := analyzer.Analyze(harsh, Options{})
	require.NoError(t, err)

	assert.Greater(t, result2.RiskScore, result1.RiskScore)
}

func TestCategories(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	infos := analyzer.Categories()
	require.Len(t, infos, 8)
	assert.Equal(t, model.CategoryForcedArbitration, infos[0].Key)
	for _, info := range infos {
		require.NoError(t, info.Validate())
	}
}

func TestFallbackAnalysis(t *testing.T) {
	result := FallbackAnalysis()

	assert.Zero(t, result.RiskScore)
	assert.Equal(t, model.RiskLevelUnknown, result.RiskLevel)
	assert.True(t, result.Metadata.Fallback)
	assert.Equal(t, 1.0, result.Confidence)

	require.Len(t, result.RedFlags, 1)
	assert.Equal(t, model.Category("ANALYSIS_UNAVAILABLE"), result.RedFlags[0].Category)
	assert.Empty(t, result.Categories)
}

func TestAnalyzeLongDocument(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	// A text right at the length cap still analyzes fine; the cap is
	// enforced by callers, not the engine.
	filler := strings.Repeat("This sentence pads the document with harmless words. ", 900)
	result, err := analyzer.Analyze(filler+"All disputes are resolved through binding arbitration.", Options{})
	require.NoError(t, err)
	assert.Equal(t, model.RiskLevelHigh, result.RiskLevel)
}
