package app

import (
	"github.com/Paintersrp/notelist/internal/debounce"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/selection"
)

// Reduce applies cmd to s. It never performs I/O; everything outside the
// state is returned as effects, in the order they should run.
func Reduce(s State, cmd Command) (State, []Effect) {
	switch c := cmd.(type) {
	case SetQuery:
		if c.Query == s.Criteria.Query {
			return s, nil
		}
		s.Criteria = s.Criteria.WithQuery(c.Query)
		return s, schedule(debounce.SearchInput)

	case SetTag:
		s.Criteria = filter.Criteria{Query: s.Criteria.Query, Tags: []string{c.Tag}}
		return s, schedule(debounce.TagSelected)

	case ShowAllNotes:
		s.Criteria = filter.Criteria{Query: s.Criteria.Query}
		return s, schedule(debounce.AllNotesSelected)

	case SetTrashView:
		s.Criteria = filter.Criteria{Query: s.Criteria.Query, ShowTrash: c.Show}
		return s, schedule(debounce.TrashSelected)

	case SelectNote:
		return s, selectionEffects(s.Selection.Select(c.ID))

	case DeselectNote:
		return s, selectionEffects(s.Selection.Deselect())

	case SelectPrevious:
		id, ok := s.Selection.Previous(s.Sequence)
		if !ok {
			return s, nil
		}
		return s, selectionEffects(s.Selection.Select(id))

	case SelectNext:
		id, ok := s.Selection.Next(s.Sequence)
		if !ok {
			return s, nil
		}
		return s, selectionEffects(s.Selection.Select(id))

	case Pin:
		n, ok := s.Collection.Find(c.ID)
		if !ok || n.Pinned == c.Pinned {
			return s, nil
		}
		n.Pinned = c.Pinned
		s.Collection = s.Collection.Replace(n)
		return s, []Effect{PersistPin{ID: c.ID, Pinned: c.Pinned}, Schedule{Event: debounce.NotePinned}}

	case Trash:
		n, ok := s.Collection.Find(c.ID)
		if !ok || n.Trashed {
			return s, nil
		}
		effects := s.release(c.ID)
		n.Trashed = true
		s.Collection = s.Collection.Replace(n)
		return s, append(effects, PersistTrash{ID: c.ID}, Schedule{Event: debounce.NoteTrashed})

	case Restore:
		n, ok := s.Collection.Find(c.ID)
		if !ok || !n.Trashed {
			return s, nil
		}
		effects := s.release(c.ID)
		n.Trashed = false
		s.Collection = s.Collection.Replace(n)
		return s, append(effects, PersistRestore{ID: c.ID}, Schedule{Event: debounce.NoteRestored})

	case DeleteForever:
		if _, ok := s.Collection.Find(c.ID); !ok {
			return s, nil
		}
		effects := s.release(c.ID)
		s.Collection = s.Collection.Remove(c.ID)
		return s, append(effects, PersistDelete{ID: c.ID}, Schedule{Event: debounce.NoteDeletedForever})

	case EmptyTrash:
		var effects []Effect
		kept := make([]note.Note, 0, len(s.Collection.Notes))
		for _, n := range s.Collection.Notes {
			if n.Trashed {
				effects = append(effects, s.release(n.ID)...)
				continue
			}
			kept = append(kept, n)
		}
		s.Collection = note.Collection{
			Notes:    kept,
			Loaded:   s.Collection.Loaded,
			Revision: s.Collection.Revision + 1,
		}
		return s, append(effects, PersistEmptyTrash{}, Schedule{Event: debounce.NoteDeletedForever})

	case NotesLoaded:
		c.Collection.Loaded = true
		c.Collection.Notes = note.Unique(c.Collection.Notes)
		s.Collection = c.Collection
		s.Tags = filter.Tags(c.Collection.Notes)
		return s, schedule(debounce.NotesLoaded)

	case NoteUpdatedRemotely:
		c.Collection.Loaded = true
		c.Collection.Notes = note.Unique(c.Collection.Notes)
		s.Collection = c.Collection
		s.Tags = filter.Tags(c.Collection.Notes)
		return s, schedule(debounce.NoteUpdatedRemotely)

	case TagsLoaded:
		s.Tags = c.Tags
		return s, schedule(debounce.TagsLoaded)

	case AuthChanged:
		effects := selectionEffects(s.Selection.Deselect())
		s.Collection = note.Collection{}
		s.Tags = nil
		return s, append(effects, Schedule{Event: debounce.AuthChanged})

	case SetDisplay:
		s.Display = c.Mode
		return s, nil

	case SetSort:
		if c.Options == s.Sort {
			return s, nil
		}
		s.Sort = c.Options
		return s, schedule(debounce.SortChanged)
	}

	return s, nil
}

// release closes the note if it is open, remembering its row so the cursor
// stays in place once it leaves the list.
func (s *State) release(id string) []Effect {
	if selected, ok := s.Selection.Selected(); !ok || selected != id {
		return nil
	}
	effects := selectionEffects(s.Selection.Deselect())
	if idx := s.Sequence.IndexOf(id); idx >= 0 {
		s.Selection.Anchor(idx)
	}
	return effects
}

// Recompute runs the pipeline over the state as it is now. It is called when
// the debounce timer fires, so it always sees the latest collection.
func Recompute(s State) (State, []Effect) {
	seq := filter.NewSequence(s.Collection, s.Criteria, s.Sort)
	return Commit(s, seq, s.Committed)
}

// Commit installs seq as the current sequence. The selection is reconciled
// against it, closing the open note only if the criteria moved away from
// prev and no longer match it.
func Commit(s State, seq *filter.Sequence, prev filter.Criteria) (State, []Effect) {
	criteriaChanged := s.Sequence == nil || !prev.Equal(seq.Criteria)
	s.Sequence = seq
	s.Committed = seq.Criteria
	return s, selectionEffects(s.Selection.Reconcile(seq, criteriaChanged))
}

func schedule(ev debounce.Event) []Effect {
	return []Effect{Schedule{Event: ev}}
}

func selectionEffects(effects []selection.Effect) []Effect {
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		switch e.Kind {
		case selection.OpenNote:
			out = append(out, OpenNote{ID: e.ID})
		case selection.CloseNote:
			out = append(out, CloseNote{ID: e.ID})
		}
	}
	return out
}
