// Package selection tracks which note is open and keeps it consistent with
// the filtered list.
package selection

import "github.com/Paintersrp/notelist/internal/filter"

type EffectKind int

const (
	OpenNote EffectKind = iota + 1
	CloseNote
)

func (k EffectKind) String() string {
	switch k {
	case OpenNote:
		return "open-note"
	case CloseNote:
		return "close-note"
	default:
		return "none"
	}
}

// Effect asks the editor side to open or close a note.
type Effect struct {
	Kind EffectKind
	ID   string
}

// Controller is either empty or holds one selected note id. The zero value
// has nothing selected.
type Controller struct {
	id       string
	selected bool

	anchor   int
	anchored bool
}

func (c *Controller) Selected() (string, bool) {
	return c.id, c.selected
}

// Select opens id. Selecting the open note again still asks for it to be
// opened so the editor can refocus.
func (c *Controller) Select(id string) []Effect {
	c.id = id
	c.selected = true
	c.anchored = false
	return []Effect{{Kind: OpenNote, ID: id}}
}

func (c *Controller) Deselect() []Effect {
	if !c.selected {
		return nil
	}
	id := c.id
	c.id = ""
	c.selected = false
	return []Effect{{Kind: CloseNote, ID: id}}
}

// Reconcile runs after every committed sequence. The open note is only
// closed when the criteria changed and excluded it, so unrelated churn in
// the collection never closes the editor.
func (c *Controller) Reconcile(seq *filter.Sequence, criteriaChanged bool) []Effect {
	if !criteriaChanged || !c.selected {
		return nil
	}
	if seq.IndexOf(c.id) >= 0 {
		return nil
	}
	c.anchored = false
	return c.Deselect()
}

// Previous returns the note above the selection, staying on the first row.
func (c *Controller) Previous(seq *filter.Sequence) (string, bool) {
	return c.step(seq, -1)
}

// Next returns the note below the selection, staying on the last row.
func (c *Controller) Next(seq *filter.Sequence) (string, bool) {
	return c.step(seq, 1)
}

func (c *Controller) step(seq *filter.Sequence, dir int) (string, bool) {
	if !c.selected {
		return "", false
	}
	idx := seq.IndexOf(c.id)
	if idx < 0 {
		return "", false
	}

	target := min(max(idx+dir, 0), seq.Len()-1)
	n, ok := seq.At(target)
	if !ok {
		return "", false
	}
	return n.ID, true
}

// Anchor remembers the row just above index, used after the open note
// leaves the list so the cursor lands on its neighbour.
func (c *Controller) Anchor(index int) {
	c.anchor = max(index-1, 0)
	c.anchored = true
}

// Cursor is the highlighted row: the selected note, else the remembered
// anchor, else the first row. It is -1 for an empty sequence.
func (c *Controller) Cursor(seq *filter.Sequence) int {
	n := seq.Len()
	if n == 0 {
		return -1
	}
	if c.selected {
		if idx := seq.IndexOf(c.id); idx >= 0 {
			return idx
		}
	}
	if c.anchored {
		return min(c.anchor, n-1)
	}
	return 0
}
