package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fineprint-dev/fineprint/internal/model"
)

func TestLinguisticModifier(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "neutral text",
			text: "the service provides access to certain features",
			want: 1.0,
		},
		{
			name: "obligation language boosts",
			text: "you must accept the terms to continue",
			want: 1.10,
		},
		{
			name: "absolute language boosts more",
			text: "you grant an irrevocable right to the operator",
			want: 1.15,
		},
		{
			name: "permissive language cuts",
			text: "you may opt out of communications",
			want: 0.90,
		},
		{
			name: "obligation and absolute stack",
			text: "you must grant an irrevocable right",
			want: 1.25,
		},
		{
			name: "obligation and permissive cancel out",
			text: "you must accept but may opt out later",
			want: 1.0,
		},
		{
			name: "word boundaries prevent partial matches",
			text: "the maypole display wilts in summer",
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, linguisticModifier(tt.text), 1e-9)
		})
	}
}

func TestScoreRisk(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)
	prefs := model.DefaultPreferences()

	t.Run("no matches scores zero", func(t *testing.T) {
		text := "The weather is nice outside and nothing here is concerning at all."
		clauses := buildClauses(text, analyzer.catalog)
		assert.Zero(t, analyzer.scoreRisk(clauses, text, prefs))
	})

	t.Run("single match scores its severity", func(t *testing.T) {
		text := "You agree to binding arbitration for all disputes."
		clauses := buildClauses(text, analyzer.catalog)
		// One match, so the weighted mean is the bare severity: 0.9 -> 90.
		assert.InDelta(t, 90.0, analyzer.scoreRisk(clauses, text, prefs), 1e-9)
	})

	t.Run("two matches average by combined weight", func(t *testing.T) {
		text := "You agree to binding arbitration for all disputes. We share your data with partner networks worldwide."
		clauses := buildClauses(text, analyzer.catalog)
		// Equal catalog weights (0.15) but different dimensions; with the
		// default 0.4/0.4 privacy and legal weights the mean of 0.9 and 0.8
		// severities lands at 85.
		assert.InDelta(t, 85.0, analyzer.scoreRisk(clauses, text, prefs), 1e-9)
	})

	t.Run("preference weights shift the score", func(t *testing.T) {
		text := "You agree to binding arbitration for all disputes. We share your data with partner networks worldwide."
		clauses := buildClauses(text, analyzer.catalog)

		privacyFocused := model.UserPreferences{
			PrivacyWeight:     0.8,
			LegalRightsWeight: 0.1,
			ConvenienceWeight: 0.1,
			RiskThreshold:     50,
		}
		base := analyzer.scoreRisk(clauses, text, model.DefaultPreferences())
		shifted := analyzer.scoreRisk(clauses, text, privacyFocused)

		// Data sharing is the less severe of the two matches; weighting
		// privacy up pulls the mean toward it.
		assert.Less(t, shifted, base)
		assert.InDelta(t, 81.11, shifted, 0.01)
	})

	t.Run("zero dimension weight removes its categories entirely", func(t *testing.T) {
		text := "You agree to binding arbitration for all disputes. We share your data with partner networks worldwide."
		clauses := buildClauses(text, analyzer.catalog)

		privacyOnly := model.UserPreferences{
			PrivacyWeight:     1.0,
			LegalRightsWeight: 0,
			ConvenienceWeight: 0,
			RiskThreshold:     50,
		}
		score := analyzer.scoreRisk(clauses, text, privacyOnly)

		// The arbitration match carries zero combined weight, leaving the
		// data-sharing severity as the whole score.
		assert.InDelta(t, 80.0, score, 1e-9)
		assert.Less(t, score, analyzer.scoreRisk(clauses, text, model.DefaultPreferences()))
	})

	t.Run("obligation language raises the score", func(t *testing.T) {
		text := "You must accept that disputes go to binding arbitration in all cases."
		clauses := buildClauses(text, analyzer.catalog)
		// 90 raw, times the 1.10 obligation modifier.
		assert.InDelta(t, 99.0, analyzer.scoreRisk(clauses, text, prefs), 1e-9)
	})

	t.Run("score clamps at 100", func(t *testing.T) {
		text := "You must grant an unconditional irrevocable license and accept binding arbitration immediately."
		clauses := buildClauses(text, analyzer.catalog)
		score := analyzer.scoreRisk(clauses, text, prefs)
		assert.LessOrEqual(t, score, 100.0)
		assert.Greater(t, score, 90.0)
	})
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-5))
	assert.Equal(t, 42.5, clampScore(42.5))
	assert.Equal(t, 100.0, clampScore(107.3))
}
