// Package note defines the note records the list is built from.
package note

import (
	"slices"
	"time"
)

// Note is a read-only view of a note owned by the vault store.
type Note struct {
	ID         string
	Content    string
	Tags       []string
	Pinned     bool
	Markdown   bool
	Trashed    bool
	PublishURL string
	ModifiedAt time.Time
	CreatedAt  time.Time
}

// Published reports whether the note has a public URL.
func (n Note) Published() bool {
	return n.PublishURL != ""
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Collection is a snapshot of every note in the vault.
//
// Loaded is false until the first successful load; an empty, loaded
// collection means the vault genuinely has no notes.
type Collection struct {
	Notes    []Note
	Loaded   bool
	Revision uint64
}

// Unique drops trashed notes whose id is also held by a live note, keeping
// the order of the rest. A note trashed and then recreated under the same
// path leaves both files behind; the live one owns the id.
func Unique(notes []Note) []Note {
	if len(notes) == 0 {
		return notes
	}

	live := make(map[string]bool, len(notes))
	for _, n := range notes {
		if !n.Trashed {
			live[n.ID] = true
		}
	}

	seen := make(map[string]bool, len(notes))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if seen[n.ID] || (n.Trashed && live[n.ID]) {
			continue
		}
		seen[n.ID] = true
		out = append(out, n)
	}
	return out
}

// Find returns the note with the given id.
func (c Collection) Find(id string) (Note, bool) {
	for _, n := range c.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Replace returns a copy of the collection with the note swapped in.
// Unknown notes are appended.
func (c Collection) Replace(n Note) Collection {
	notes := make([]Note, 0, len(c.Notes)+1)
	found := false
	for _, existing := range c.Notes {
		if existing.ID == n.ID {
			notes = append(notes, n)
			found = true
			continue
		}
		notes = append(notes, existing)
	}
	if !found {
		notes = append(notes, n)
	}
	return Collection{Notes: notes, Loaded: c.Loaded, Revision: c.Revision + 1}
}

// Remove returns a copy of the collection without the note.
func (c Collection) Remove(id string) Collection {
	notes := make([]Note, 0, len(c.Notes))
	for _, existing := range c.Notes {
		if existing.ID != id {
			notes = append(notes, existing)
		}
	}
	return Collection{Notes: notes, Loaded: c.Loaded, Revision: c.Revision + 1}
}
