package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fineprint-dev/fineprint/internal/model"
)

func TestSelectRedFlags(t *testing.T) {
	mkClause := func(text string, matches ...model.Match) model.Clause {
		return model.Clause{Text: text, Matches: matches, IsRisky: len(matches) > 0}
	}
	mkMatch := func(cat model.Category, severity, confidence float64) model.Match {
		return model.Match{Category: cat, Severity: severity, Confidence: confidence}
	}

	t.Run("empty input yields no flags", func(t *testing.T) {
		assert.Empty(t, selectRedFlags(nil))
		assert.Empty(t, selectRedFlags([]model.Clause{mkClause("clean clause")}))
	})

	t.Run("ranks by severity times confidence", func(t *testing.T) {
		clauses := []model.Clause{
			mkClause("renewal clause", mkMatch(model.CategoryAutoRenewal, 0.6, 0.75)),
			mkClause("arbitration clause", mkMatch(model.CategoryForcedArbitration, 0.9, 0.9)),
			mkClause("sharing clause", mkMatch(model.CategoryDataSharingResale, 0.8, 0.9)),
		}

		flags := selectRedFlags(clauses)
		require.Len(t, flags, 3)
		assert.Equal(t, model.CategoryForcedArbitration, flags[0].Category)
		assert.Equal(t, model.CategoryDataSharingResale, flags[1].Category)
		assert.Equal(t, model.CategoryAutoRenewal, flags[2].Category)
	})

	t.Run("caps at three flags", func(t *testing.T) {
		clauses := []model.Clause{
			mkClause("a", mkMatch(model.CategoryForcedArbitration, 0.9, 0.9)),
			mkClause("b", mkMatch(model.CategoryClassActionWaiver, 0.85, 0.9)),
			mkClause("c", mkMatch(model.CategoryDataSharingResale, 0.8, 0.9)),
			mkClause("d", mkMatch(model.CategoryLiabilityWaiver, 0.7, 0.9)),
			mkClause("e", mkMatch(model.CategoryAutoRenewal, 0.6, 0.9)),
		}

		flags := selectRedFlags(clauses)
		assert.Len(t, flags, 3)
	})

	t.Run("categories are distinct even when one dominates", func(t *testing.T) {
		clauses := []model.Clause{
			mkClause("first arbitration clause", mkMatch(model.CategoryForcedArbitration, 0.9, 0.95)),
			mkClause("second arbitration clause", mkMatch(model.CategoryForcedArbitration, 0.9, 0.9)),
			mkClause("third arbitration clause", mkMatch(model.CategoryForcedArbitration, 0.9, 0.75)),
			mkClause("renewal clause", mkMatch(model.CategoryAutoRenewal, 0.6, 0.75)),
		}

		flags := selectRedFlags(clauses)
		require.Len(t, flags, 2)
		assert.Equal(t, model.CategoryForcedArbitration, flags[0].Category)
		assert.Equal(t, "first arbitration clause", flags[0].ClauseText)
		assert.Equal(t, model.CategoryAutoRenewal, flags[1].Category)
	})

	t.Run("ties keep clause order", func(t *testing.T) {
		clauses := []model.Clause{
			mkClause("earlier clause", mkMatch(model.CategoryDataSharingResale, 0.8, 0.9)),
			mkClause("later clause", mkMatch(model.CategoryDataRetention, 0.8, 0.9)),
		}

		flags := selectRedFlags(clauses)
		require.Len(t, flags, 2)
		assert.Equal(t, "earlier clause", flags[0].ClauseText)
		assert.Equal(t, "later clause", flags[1].ClauseText)
	})
}
