package app

import (
	"github.com/Paintersrp/notelist/internal/debounce"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/window"
)

// Command is a discrete request to change list state.
type Command interface {
	command()
}

// ===== FILTER COMMANDS =====

type SetQuery struct{ Query string }
type SetTag struct{ Tag string }
type ShowAllNotes struct{}
type SetTrashView struct{ Show bool }

// ===== SELECTION COMMANDS =====

type SelectNote struct{ ID string }
type DeselectNote struct{}
type SelectPrevious struct{}
type SelectNext struct{}

// ===== NOTE ACTIONS =====

type Pin struct {
	ID     string
	Pinned bool
}
type Trash struct{ ID string }
type Restore struct{ ID string }
type DeleteForever struct{ ID string }
type EmptyTrash struct{}

// ===== UPSTREAM EVENTS =====

type NotesLoaded struct{ Collection note.Collection }

// NoteUpdatedRemotely carries the collection reloaded after a change made
// outside the list.
type NoteUpdatedRemotely struct{ Collection note.Collection }
type TagsLoaded struct{ Tags []string }
type AuthChanged struct{}

// ===== SETTINGS =====

type SetDisplay struct{ Mode window.DisplayMode }
type SetSort struct{ Options filter.SortOptions }

func (SetQuery) command()            {}
func (SetTag) command()              {}
func (ShowAllNotes) command()        {}
func (SetTrashView) command()        {}
func (SelectNote) command()          {}
func (DeselectNote) command()        {}
func (SelectPrevious) command()      {}
func (SelectNext) command()          {}
func (Pin) command()                 {}
func (Trash) command()               {}
func (Restore) command()             {}
func (DeleteForever) command()       {}
func (EmptyTrash) command()          {}
func (NotesLoaded) command()         {}
func (NoteUpdatedRemotely) command() {}
func (TagsLoaded) command()          {}
func (AuthChanged) command()         {}
func (SetDisplay) command()          {}
func (SetSort) command()             {}

// Effect is work the reducer asks the caller to perform.
type Effect interface {
	effect()
}

// Schedule asks for a debounced pipeline run.
type Schedule struct{ Event debounce.Event }
type OpenNote struct{ ID string }
type CloseNote struct{ ID string }
type PersistPin struct {
	ID     string
	Pinned bool
}
type PersistTrash struct{ ID string }
type PersistRestore struct{ ID string }
type PersistDelete struct{ ID string }
type PersistEmptyTrash struct{}

func (Schedule) effect()          {}
func (OpenNote) effect()          {}
func (CloseNote) effect()         {}
func (PersistPin) effect()        {}
func (PersistTrash) effect()      {}
func (PersistRestore) effect()    {}
func (PersistDelete) effect()     {}
func (PersistEmptyTrash) effect() {}
