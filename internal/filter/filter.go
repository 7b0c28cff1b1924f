// Package filter turns a note collection and the active criteria into the
// ordered sequence the list renders.
package filter

import (
	"slices"
	"sort"
	"strings"

	"github.com/Paintersrp/notelist/internal/note"
)

const tagPrefix = "tag:"

// Criteria selects which notes are listed. Values are replaced wholesale;
// Equal decides whether the pipeline has to run again.
type Criteria struct {
	Query     string
	Tags      []string
	ShowTrash bool
}

// Equal compares two criteria. Tag order is ignored.
func (c Criteria) Equal(other Criteria) bool {
	if c.Query != other.Query || c.ShowTrash != other.ShowTrash {
		return false
	}
	if len(c.Tags) != len(other.Tags) {
		return false
	}
	a := slices.Clone(c.Tags)
	b := slices.Clone(other.Tags)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// WithQuery returns a copy of c with the query replaced.
func (c Criteria) WithQuery(q string) Criteria {
	c.Tags = slices.Clone(c.Tags)
	c.Query = q
	return c
}

// matcher holds the parsed query so tokens are lowered once per run.
type matcher struct {
	criteria Criteria
	terms    []string
	tags     []string
}

func newMatcher(c Criteria) matcher {
	m := matcher{criteria: c}
	for _, token := range strings.Fields(strings.ToLower(c.Query)) {
		if name, ok := strings.CutPrefix(token, tagPrefix); ok && name != "" {
			m.tags = append(m.tags, name)
			continue
		}
		m.terms = append(m.terms, token)
	}
	return m
}

func (m matcher) match(n note.Note) bool {
	if m.criteria.ShowTrash != n.Trashed {
		return false
	}

	if len(m.criteria.Tags) > 0 && !slices.ContainsFunc(m.criteria.Tags, n.HasTag) {
		return false
	}

	for _, name := range m.tags {
		if !slices.ContainsFunc(n.Tags, func(tag string) bool {
			return strings.EqualFold(tag, name)
		}) {
			return false
		}
	}

	if len(m.terms) == 0 {
		return true
	}
	content := strings.ToLower(n.Content)
	for _, term := range m.terms {
		if !strings.Contains(content, term) {
			return false
		}
	}
	return true
}

// Match reports whether a single note passes the criteria.
func Match(n note.Note, c Criteria) bool {
	return newMatcher(c).match(n)
}

// Apply returns the matching notes in display order. The input slice is not
// modified and the result never aliases it.
func Apply(notes []note.Note, c Criteria, opts SortOptions) []note.Note {
	m := newMatcher(c)

	matched := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if m.match(n) {
			matched = append(matched, n)
		}
	}

	sortNotes(matched, opts)
	return matched
}

// Tags returns the sorted set of tags used by notes outside the trash.
func Tags(notes []note.Note) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		if n.Trashed {
			continue
		}
		for _, tag := range n.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
