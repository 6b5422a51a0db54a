package engine

import (
	"regexp"
	"strings"
)

// minClauseLength is the noise threshold: shorter fragments are discarded.
const minClauseLength = 20

var clauseBoundary = regexp.MustCompile(`[.!?]\s+`)

// segment splits normalized text into clause-level units on
// sentence-terminating punctuation followed by whitespace, preserving source
// order. This is a deliberately crude boundary heuristic: abbreviations,
// decimal numbers, and quoted sentences will mis-segment, which is an
// accepted trade-off for determinism and speed.
func segment(text string) []string {
	if text == "" {
		return nil
	}

	fragments := clauseBoundary.Split(text, -1)
	clauses := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if len(frag) <= minClauseLength {
			continue
		}
		clauses = append(clauses, frag)
	}
	return clauses
}
