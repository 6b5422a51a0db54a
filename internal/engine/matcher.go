package engine

import (
	"github.com/fineprint-dev/fineprint/internal/model"
)

// Confidence scoring constants: base confidence for a single keyword hit,
// the boost per additional keyword, and the cap.
const (
	baseConfidence    = 0.6
	perKeywordBoost   = 0.15
	confidenceCeiling = 0.95
)

// matchClause tests one clause against every catalog category and returns
// the resulting matches in catalog order. A clause may match several
// categories independently.
func matchClause(clause string, catalog []compiledCategory) []model.Match {
	var matches []model.Match

	for _, cat := range catalog {
		var (
			matchedKeywords []string
			matchedText     string
		)

		for i, re := range cat.patterns {
			loc := re.FindStringIndex(clause)
			if loc == nil {
				continue
			}
			matchedKeywords = append(matchedKeywords, cat.entry.Keywords[i])
			if matchedText == "" {
				matchedText = clause[loc[0]:loc[1]]
			}
		}

		if len(matchedKeywords) == 0 {
			continue
		}

		confidence := baseConfidence + perKeywordBoost*float64(len(matchedKeywords))
		if confidence > confidenceCeiling {
			confidence = confidenceCeiling
		}

		matches = append(matches, model.Match{
			Category:        cat.entry.Info.Key,
			CategoryName:    cat.entry.Info.Name,
			Severity:        cat.entry.Severity,
			Confidence:      confidence,
			MatchedText:     matchedText,
			MatchedKeywords: matchedKeywords,
			Irreversible:    cat.entry.Info.Irreversible,
			Explanation:     cat.entry.Explanation,
			Implication:     cat.entry.Implication,
		})
	}

	return matches
}

// buildClauses segments text and runs the matcher over every clause.
func buildClauses(text string, catalog []compiledCategory) []model.Clause {
	fragments := segment(text)
	clauses := make([]model.Clause, 0, len(fragments))

	for _, frag := range fragments {
		matches := matchClause(frag, catalog)

		var highest float64
		for _, m := range matches {
			if m.Severity > highest {
				highest = m.Severity
			}
		}

		clauses = append(clauses, model.Clause{
			Text:        frag,
			Matches:     matches,
			IsRisky:     len(matches) > 0,
			HighestRisk: highest,
		})
	}

	return clauses
}
