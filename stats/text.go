package stats

import (
	"regexp"
	"strings"
)

var (
	controlRe = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	nlRe      = regexp.MustCompile(`\n{3,}`)
)

// Normalize removes control characters (except newlines and tabs), collapses
// runs of spaces and tabs within each line, and caps consecutive newlines at
// two. Counting happens on the normalized form so whitespace padding in
// cells does not inflate the numbers.
func Normalize(text string) string {
	text = controlRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRe.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		cleaned = append(cleaned, line)
	}
	text = strings.Join(cleaned, "\n")

	text = nlRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
