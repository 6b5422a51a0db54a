package engine

import (
	"sort"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// maxRedFlags caps the number of red flags surfaced per analysis.
const maxRedFlags = 3

// selectRedFlags pools every match with its source clause, ranks the pool by
// severity times confidence, and emits up to three entries with distinct
// categories. The sort is stable, so ties keep clause order and then catalog
// order.
func selectRedFlags(clauses []model.Clause) []model.RedFlag {
	type pooled struct {
		match  model.Match
		clause string
	}

	var pool []pooled
	for _, clause := range clauses {
		for _, m := range clause.Matches {
			pool = append(pool, pooled{match: m, clause: clause.Text})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].match.Severity*pool[i].match.Confidence >
			pool[j].match.Severity*pool[j].match.Confidence
	})

	flags := make([]model.RedFlag, 0, maxRedFlags)
	seen := make(map[model.Category]bool, maxRedFlags)

	for _, p := range pool {
		if len(flags) == maxRedFlags {
			break
		}
		if seen[p.match.Category] {
			continue
		}
		seen[p.match.Category] = true
		flags = append(flags, model.RedFlag{
			Category:     p.match.Category,
			CategoryName: p.match.CategoryName,
			Severity:     p.match.Severity,
			Confidence:   p.match.Confidence,
			ClauseText:   p.clause,
			Explanation:  p.match.Explanation,
			Implication:  p.match.Implication,
			Irreversible: p.match.Irreversible,
		})
	}

	return flags
}
