package filter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSortKeyChars = 200

var (
	headingMarker  = regexp.MustCompile(`^\s*#+\s*`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeForSorting cleans a note so it can be compared alphabetically.
// Diacritics are folded on a best-effort basis; if the transform fails the
// lower-cased text is returned as is.
func NormalizeForSorting(text string) string {
	text = headingMarker.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = truncate(text, maxSortKeyChars)
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
