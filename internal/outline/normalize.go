package outline

import (
	"regexp"
	"strings"
)

const (
	// Katakana middle dot; lossy encoding round-trips often mangle it to '?'.
	dotKatakana = "・"
	// Canonical middle dot used in group titles.
	dotMiddle = "·"

	nbsp = " " // non-breaking space
)

var trailingPageNumRE = regexp.MustCompile(`\s*\d+\s*$`)

// NormalizeGroupTitle canonicalizes middle-dot punctuation variants and the
// '?' placeholder left behind by lossy encoding, collapses non-breaking
// spaces, and trims. Idempotent.
func NormalizeGroupTitle(title string) string {
	s := strings.ReplaceAll(title, dotKatakana, dotMiddle)
	s = strings.ReplaceAll(s, "?", dotMiddle)
	s = strings.ReplaceAll(s, nbsp, " ")
	return strings.TrimSpace(s)
}

// NormalizeEntry cleans a candidate entry line. An empty result means the
// line carries no entry and must be discarded: decorative ***-prefixed
// lines, ==...== marker lines (screenshot placeholders), and lines that are
// nothing but a page number all normalize to "". Trailing page-number
// artifacts (whitespace + digits) are stripped from surviving entries.
func NormalizeEntry(line string) string {
	s := strings.TrimSpace(line)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "***") {
		return ""
	}
	if strings.HasPrefix(s, "==") && strings.HasSuffix(s, "==") {
		return ""
	}
	s = trailingPageNumRE.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
