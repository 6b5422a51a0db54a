package engine

import (
	"regexp"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// Linguistic modifier adjustments, additive on a 1.0 multiplier base. The
// three checks are independent: obligation plus permissive language nets to
// zero.
const (
	obligationBoost = 0.10
	absoluteBoost   = 0.15
	permissiveCut   = 0.10
)

var (
	obligationLanguage = regexp.MustCompile(`(?i)\b(will|must|shall|required to)\b`)
	absoluteLanguage   = regexp.MustCompile(`(?i)\b(unconditional|absolute|irrevocable)\b`)
	permissiveLanguage = regexp.MustCompile(`(?i)\b(may|might|could|optional|at your discretion)\b`)
)

// scoreRisk aggregates every match across every risky clause into a 0-100
// score. Each match is weighted by its category's catalog weight times the
// user's preference weight for that category's dimension; the linguistic
// modifier derived from the full text is then applied and the result clamped.
func (a *Analyzer) scoreRisk(clauses []model.Clause, fullText string, prefs model.UserPreferences) float64 {
	var weightedSum, weightSum float64

	for _, clause := range clauses {
		for _, m := range clause.Matches {
			combined := a.combinedWeight(m.Category, prefs)
			weightedSum += m.Severity * combined
			weightSum += combined
		}
	}

	if weightSum == 0 {
		return 0
	}

	score := weightedSum / weightSum * 100
	score *= linguisticModifier(fullText)

	return clampScore(score)
}

// combinedWeight is the catalog weight of a category times the user
// preference weight of its dimension. Categories missing from the catalog
// (impossible for engine-produced matches) carry full weight.
func (a *Analyzer) combinedWeight(cat model.Category, prefs model.UserPreferences) float64 {
	entry, ok := a.index[cat]
	if !ok {
		return 1.0
	}
	return entry.Info.Weight * prefs.Weight(entry.Dimension)
}

// linguisticModifier inspects the whole normalized text, not just risky
// clauses, and returns the multiplier for the raw score.
func linguisticModifier(text string) float64 {
	modifier := 1.0
	if obligationLanguage.MatchString(text) {
		modifier += obligationBoost
	}
	if absoluteLanguage.MatchString(text) {
		modifier += absoluteBoost
	}
	if permissiveLanguage.MatchString(text) {
		modifier -= permissiveCut
	}
	return modifier
}

// clampScore bounds a score to [0,100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
