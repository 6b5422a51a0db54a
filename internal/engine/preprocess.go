package engine

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	curlyQuotes   = strings.NewReplacer(
		"‘", "'",
		"’", "'",
		"“", `"`,
		"”", `"`,
	)
)

// preprocess normalizes raw text before segmentation: whitespace runs
// collapse to a single space, curly quotes become straight quotes, and
// leading/trailing whitespace is trimmed. Empty input yields empty output.
func preprocess(text string) string {
	text = curlyQuotes.Replace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
