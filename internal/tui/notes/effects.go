package notes

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notelist/internal/app"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/store"
)

const loadTimeout = 30 * time.Second

// recomputeMsg is posted when the debounce timer fires.
type recomputeMsg struct{}

// notesLoadedMsg carries a fresh collection. Remote loads were triggered by
// a change outside the list.
type notesLoadedMsg struct {
	collection note.Collection
	remote     bool
}

type loadFailedMsg struct {
	err error
}

// storeDoneMsg reports the outcome of a write to the vault.
type storeDoneMsg struct {
	op    string
	id    string
	count int
	err   error
}

func (m storeDoneMsg) String() string {
	switch {
	case m.op == opEmptyTrash:
		return fmt.Sprintf("Emptied trash (%d notes)", m.count)
	case m.id != "":
		return fmt.Sprintf("%s %s", m.op, m.id)
	default:
		return m.op
	}
}

const (
	opPin        = "Pinned"
	opUnpin      = "Unpinned"
	opTrash      = "Trashed"
	opRestore    = "Restored"
	opDelete     = "Deleted"
	opEmptyTrash = "Emptied trash"
)

// waitForRecompute blocks until the scheduler fires. The model re-issues it
// after every recomputeMsg.
func waitForRecompute(fired <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-fired
		return recomputeMsg{}
	}
}

func loadNotes(v *store.Vault, remote bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		c, err := v.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return notesLoadedMsg{collection: c, remote: remote}
	}
}

// persist turns a storage effect into a command against the vault.
func persist(v *store.Vault, e app.Effect) tea.Cmd {
	switch e := e.(type) {
	case app.PersistPin:
		op := opUnpin
		if e.Pinned {
			op = opPin
		}
		return storeOp(op, e.ID, func() error { return v.SetPinned(e.ID, e.Pinned) })
	case app.PersistTrash:
		return storeOp(opTrash, e.ID, func() error { return v.Trash(e.ID) })
	case app.PersistRestore:
		return storeOp(opRestore, e.ID, func() error { return v.Restore(e.ID) })
	case app.PersistDelete:
		return storeOp(opDelete, e.ID, func() error { return v.DeleteForever(e.ID) })
	case app.PersistEmptyTrash:
		return func() tea.Msg {
			n, err := v.EmptyTrash()
			return storeDoneMsg{op: opEmptyTrash, count: n, err: err}
		}
	}
	return nil
}

func storeOp(op, id string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return storeDoneMsg{op: op, id: id, err: fn()}
	}
}
