package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fineprint-dev/fineprint/internal/model"
)

func compiledDefaultCatalog(t *testing.T) []compiledCategory {
	t.Helper()
	compiled, err := compileCatalog(defaultCatalog())
	require.NoError(t, err)
	return compiled
}

func TestMatchClause(t *testing.T) {
	catalog := compiledDefaultCatalog(t)

	tests := []struct {
		name           string
		clause         string
		wantCategories []model.Category
		wantConfidence map[model.Category]float64
	}{
		{
			name:           "single keyword hit",
			clause:         "All disputes are resolved through binding arbitration in Delaware",
			wantCategories: []model.Category{model.CategoryForcedArbitration},
			wantConfidence: map[model.Category]float64{
				model.CategoryForcedArbitration: 0.75,
			},
		},
		{
			name:           "two keywords raise confidence",
			clause:         "We may share your data with third-party advertisers for marketing",
			wantCategories: []model.Category{model.CategoryDataSharingResale},
			wantConfidence: map[model.Category]float64{
				model.CategoryDataSharingResale: 0.9,
			},
		},
		{
			name:           "confidence caps at ceiling",
			clause:         "You agree to binding arbitration, mandatory arbitration under the arbitration agreement, and waive right to jury trial",
			wantCategories: []model.Category{model.CategoryForcedArbitration},
			wantConfidence: map[model.Category]float64{
				model.CategoryForcedArbitration: 0.95,
			},
		},
		{
			name:   "one clause can match several categories",
			clause: "You agree to mandatory arbitration and waive right to class action remedies",
			wantCategories: []model.Category{
				model.CategoryForcedArbitration,
				model.CategoryClassActionWaiver,
			},
		},
		{
			name:           "clean clause matches nothing",
			clause:         "You can change your display name whenever you like from settings",
			wantCategories: nil,
		},
		{
			name:           "permissive 'may' alone does not trigger arbitration keywords",
			clause:         "You may contact support at any time for assistance with your account",
			wantCategories: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := matchClause(tt.clause, catalog)

			got := make([]model.Category, 0, len(matches))
			for _, m := range matches {
				got = append(got, m.Category)
			}
			if tt.wantCategories == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.wantCategories, got, "matches must come back in catalog order")
			}

			for _, m := range matches {
				if want, ok := tt.wantConfidence[m.Category]; ok {
					assert.InDelta(t, want, m.Confidence, 1e-9)
				}
				assert.NotEmpty(t, m.MatchedKeywords)
				assert.NotEmpty(t, m.MatchedText)
				require.NoError(t, m.Validate())
			}
		})
	}
}

func TestMatchClauseRecordsMatchedText(t *testing.T) {
	catalog := compiledDefaultCatalog(t)

	matches := matchClause("Subscriptions automatically renew each month with recurring billing", catalog)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, model.CategoryAutoRenewal, m.Category)
	assert.Equal(t, "automatically renew", m.MatchedText)
	assert.ElementsMatch(t, []string{"automatically renew", "recurring billing"}, m.MatchedKeywords)
}

func TestBuildClauses(t *testing.T) {
	catalog := compiledDefaultCatalog(t)

	text := "You agree to binding arbitration for all disputes. The weather is nice outside today, is it not."
	clauses := buildClauses(text, catalog)
	require.Len(t, clauses, 2)

	assert.True(t, clauses[0].IsRisky)
	assert.InDelta(t, 0.9, clauses[0].HighestRisk, 1e-9)

	assert.False(t, clauses[1].IsRisky)
	assert.Zero(t, clauses[1].HighestRisk)
	assert.Empty(t, clauses[1].Matches)
}
