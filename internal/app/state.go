// Package app holds the note list state and the pure transition function
// that updates it.
package app

import (
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/selection"
	"github.com/Paintersrp/notelist/internal/window"
)

// State is replaced wholesale by Reduce.
type State struct {
	Collection note.Collection
	Criteria   filter.Criteria
	Sort       filter.SortOptions
	Display    window.DisplayMode
	Selection  selection.Controller
	Tags       []string

	// Sequence is the last committed pipeline result and Committed the
	// criteria it was computed with. Both are nil/zero before the first run.
	Sequence  *filter.Sequence
	Committed filter.Criteria
}

func NewState(display window.DisplayMode, sort filter.SortOptions) State {
	return State{Display: display, Sort: sort}
}

// SelectedNote returns the open note from the current collection.
func (s State) SelectedNote() (note.Note, bool) {
	id, ok := s.Selection.Selected()
	if !ok {
		return note.Note{}, false
	}
	return s.Collection.Find(id)
}

// Cursor is the highlighted row in the committed sequence.
func (s State) Cursor() int {
	return s.Selection.Cursor(s.Sequence)
}
