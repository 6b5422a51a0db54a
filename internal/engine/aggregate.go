package engine

import (
	"github.com/fineprint-dev/fineprint/internal/model"
)

// aggregateCategories computes the per-category breakdown: mean match
// severity scaled to 0-100. Categories with no matches are omitted entirely
// rather than shown as zero. Output follows catalog order.
func (a *Analyzer) aggregateCategories(clauses []model.Clause) []model.CategoryScore {
	sums := make(map[model.Category]float64)
	counts := make(map[model.Category]int)

	for _, clause := range clauses {
		for _, m := range clause.Matches {
			sums[m.Category] += m.Severity
			counts[m.Category]++
		}
	}

	scores := make([]model.CategoryScore, 0, len(counts))
	for _, cat := range a.catalog {
		key := cat.entry.Info.Key
		n := counts[key]
		if n == 0 {
			continue
		}
		scores = append(scores, model.CategoryScore{
			Category: key,
			Name:     cat.entry.Info.Name,
			Severity: sums[key] / float64(n) * 100,
			Matches:  n,
		})
	}

	return scores
}

// overallConfidence is the arithmetic mean of every match confidence, defined
// as 1.0 when nothing matched. That is a vacuous-truth convention: a clean
// document is confidently clean, not "unknown".
func overallConfidence(clauses []model.Clause) float64 {
	var sum float64
	var count int
	for _, clause := range clauses {
		for _, m := range clause.Matches {
			sum += m.Confidence
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	return sum / float64(count)
}
