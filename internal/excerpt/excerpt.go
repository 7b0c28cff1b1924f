// Package excerpt derives the title and preview shown for a note row.
package excerpt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxTitleChars   = 64
	MaxPreviewChars = 200
	MaxPreviewLines = 4

	// EmptyTitle is shown for notes without any visible text.
	EmptyTitle = "New Note…"
)

var titlePattern = regexp.MustCompile(`\s*([^\n]{1,64})`)

// Excerpt is the text rendered for a single row.
type Excerpt struct {
	Title   string
	Preview string
}

// Extract returns the bounded title and preview for note content. When
// markdown is set the syntax markers are removed before the caps apply.
func Extract(content string, markdown bool) Excerpt {
	text := content
	if markdown {
		if stripped := StripMarkdown(content); strings.TrimSpace(stripped) != "" {
			text = stripped
		}
	}

	title, rest := splitTitle(text)
	return Excerpt{Title: title, Preview: preview(rest)}
}

// splitTitle returns the title and the text following the title line.
func splitTitle(text string) (string, string) {
	loc := titlePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return EmptyTitle, ""
	}

	title := strings.TrimRight(text[loc[2]:loc[3]], "\r")
	if strings.TrimSpace(title) == "" {
		return EmptyTitle, ""
	}

	rest := text[loc[3]:]
	if _, after, found := strings.Cut(rest, "\n"); found {
		rest = after
	} else {
		rest = ""
	}
	return title, rest
}

// preview accumulates non-blank lines until either cap is hit. Both exits are
// explicit so the loop is bounded by the input length alone.
func preview(rest string) string {
	var (
		b     strings.Builder
		lines int
		chars int
	)

	for rest != "" && lines < MaxPreviewLines && chars < MaxPreviewChars {
		line, after, _ := strings.Cut(rest, "\n")
		rest = after

		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if budget := MaxPreviewChars - chars; utf8.RuneCountInString(line) > budget {
			line = truncateRunes(line, budget)
		}

		if lines > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		lines++
		chars += utf8.RuneCountInString(line)
	}

	return b.String()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
