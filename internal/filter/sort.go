package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Paintersrp/notelist/internal/note"
)

type SortMode int

const (
	SortByModified SortMode = iota
	SortByCreated
	SortAlphabetical
)

var sortModeNames = []string{"modificationDate", "creationDate", "alphabetical"}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return sortModeNames[0]
	}
	return sortModeNames[m]
}

// Next cycles through the sort modes.
func (m SortMode) Next() SortMode {
	return (m + 1) % SortMode(len(sortModeNames))
}

// ParseSortMode accepts the names used in the config file.
func ParseSortMode(s string) (SortMode, error) {
	for i, name := range sortModeNames {
		if strings.EqualFold(s, name) {
			return SortMode(i), nil
		}
	}
	return SortByModified, fmt.Errorf("unknown sort mode %q", s)
}

// SortOptions controls ordering. Reversed only flips the mode key; pinned
// notes stay on top either way.
type SortOptions struct {
	Mode     SortMode
	Reversed bool
}

type sortEntry struct {
	note note.Note
	key  string
}

// sortNotes orders notes in place. Dates sort newest first and titles A to Z
// unless reversed. Ties fall back to the note ID so equal keys never depend
// on input order.
func sortNotes(notes []note.Note, opts SortOptions) {
	entries := make([]sortEntry, len(notes))
	for i, n := range notes {
		entries[i] = sortEntry{note: n}
		if opts.Mode == SortAlphabetical {
			entries[i].key = NormalizeForSorting(n.Content)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j], opts)
	})

	for i := range entries {
		notes[i] = entries[i].note
	}
}

func less(a, b sortEntry, opts SortOptions) bool {
	if a.note.Pinned != b.note.Pinned {
		return a.note.Pinned
	}

	if c := compareKey(a, b, opts.Mode); c != 0 {
		if opts.Reversed {
			return c > 0
		}
		return c < 0
	}

	return a.note.ID < b.note.ID
}

// compareKey returns the natural ordering of a and b for the mode: negative
// when a should be listed first.
func compareKey(a, b sortEntry, mode SortMode) int {
	switch mode {
	case SortByCreated:
		return b.note.CreatedAt.Compare(a.note.CreatedAt)
	case SortAlphabetical:
		return strings.Compare(a.key, b.key)
	default:
		return b.note.ModifiedAt.Compare(a.note.ModifiedAt)
	}
}
