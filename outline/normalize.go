// Package outline reconstructs a hierarchical document outline (title plus
// nested H1-H3 headings with associated body content) from the raw
// geometric text blocks of a paginated document. It is a multi-stage
// pipeline: document statistics, title extraction, boilerplate and tabular
// filtering, heuristic heading classification with a statistical fallback,
// content association, and hierarchy validation.
package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// reTrailingPage strips trailing page-number artifacts from headings
	reTrailingPage = regexp.MustCompile(`\s+\d+\s*$`)

	// reLeadingNumeral strips a hierarchical numeral prefix
	reLeadingNumeral = regexp.MustCompile(`^\d+(\.\d+)*\s*\.?\s*`)

	// reConcatPair matches two numbered headings concatenated into one
	// block by upstream block merging; only the first is kept
	reConcatPair = regexp.MustCompile(`^(\d+(?:\.\d+)*[.)]?\s+\S.*?)\s+\d+(?:\.\d+)*[.)]?\s+[A-Z]`)

	reDigits = regexp.MustCompile(`^\d+$`)
)

// NormalizeText folds ligatures and collapses whitespace. NFKC decomposes
// the common ff/fi/fl ligature codepoints that PDF fonts emit.
func NormalizeText(text string) string {
	text = norm.NFKC.String(text)
	return strings.Join(strings.Fields(text), " ")
}

// CleanHeadingText cleans a classified block's text for use as a heading:
// it collapses an over-matched pair of concatenated numbered headings into
// just the first, then strips trailing page-number artifacts, the leading
// numeral, and trailing punctuation.
func CleanHeadingText(text string) string {
	cleaned := NormalizeText(text)

	// Block merging upstream occasionally glues two numbered entries
	// together; a best-effort repair, not a guaranteed parse.
	if m := reConcatPair.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}

	cleaned = reTrailingPage.ReplaceAllString(cleaned, "")
	cleaned = reLeadingNumeral.ReplaceAllString(cleaned, "")
	return strings.TrimRight(cleaned, ".,:;")
}

// isDigits reports whether text is composed entirely of digits
func isDigits(text string) bool {
	return reDigits.MatchString(text)
}
