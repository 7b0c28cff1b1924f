package filter

import "github.com/Paintersrp/notelist/internal/note"

// Sequence is one committed pipeline result. Every run allocates a new
// Sequence, so pointer equality tells consumers whether the list changed.
type Sequence struct {
	Notes    []note.Note
	Criteria Criteria
	Sort     SortOptions
	Revision uint64

	index map[string]int
}

// NewSequence runs the pipeline over the collection and wraps the result.
func NewSequence(c note.Collection, criteria Criteria, opts SortOptions) *Sequence {
	notes := Apply(c.Notes, criteria, opts)
	index := make(map[string]int, len(notes))
	for i, n := range notes {
		index[n.ID] = i
	}
	return &Sequence{
		Notes:    notes,
		Criteria: criteria,
		Sort:     opts,
		Revision: c.Revision,
		index:    index,
	}
}

// Len is safe on a nil sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Notes)
}

func (s *Sequence) At(i int) (note.Note, bool) {
	if s == nil || i < 0 || i >= len(s.Notes) {
		return note.Note{}, false
	}
	return s.Notes[i], true
}

// IndexOf returns the position of the note, or -1.
func (s *Sequence) IndexOf(id string) int {
	if s == nil {
		return -1
	}
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// IDs lists the note ids in display order.
func (s *Sequence) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		ids[i] = n.ID
	}
	return ids
}
