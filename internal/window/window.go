// Package window decides which rows of the filtered note list are built for
// the current viewport and folds measured heights back into the layout.
package window

import (
	"github.com/Paintersrp/notelist/internal/excerpt"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/heights"
)

const DefaultOverscan = 2

const (
	LoadingPlaceholder = "Loading Notes"
	EmptyPlaceholder   = "No Notes"
)

// Range is a half-open span of rows. Offset is how many lines of the first
// row lie above the viewport.
type Range struct {
	Start  int
	End    int
	Offset int
}

func (r Range) Len() int { return r.End - r.Start }

// Row is everything the presentation layer needs to draw one note.
type Row struct {
	Index     int
	ID        string
	Title     string
	Preview   string
	Pinned    bool
	Published bool
	Selected  bool
}

// Renderer owns the height cache and the scroll offset for one list.
type Renderer struct {
	cache    *heights.Cache
	overscan int
	offset   int
	viewport int

	synced          bool
	seq             *filter.Sequence
	mode            DisplayMode
	selectedContent string
	width           int
}

func NewRenderer(mode DisplayMode, overscan int) *Renderer {
	if overscan < 0 {
		overscan = 0
	}
	return &Renderer{
		cache:    heights.New(0, mode.Estimate()),
		overscan: overscan,
		mode:     mode,
	}
}

// Sync applies the invalidation rules: a different sequence, a different
// display mode, or an edit to the selected note all discard measurements.
// It reports whether the cache was invalidated.
func (r *Renderer) Sync(seq *filter.Sequence, mode DisplayMode, selectedContent string) bool {
	invalidated := false

	if !r.synced || seq != r.seq {
		r.cache.Reset(seq.Len())
		r.seq = seq
		invalidated = true
	}
	if mode != r.mode {
		r.mode = mode
		r.cache.SetEstimate(mode.Estimate())
		invalidated = true
	}
	if r.synced && selectedContent != r.selectedContent && !invalidated {
		r.cache.InvalidateAll()
		invalidated = true
	}

	r.selectedContent = selectedContent
	r.synced = true
	r.clamp()
	return invalidated
}

// SetWidth records the width rows are laid out at. Measurements taken at
// another width are discarded.
func (r *Renderer) SetWidth(width int) bool {
	if width == r.width {
		return false
	}
	r.width = width
	r.cache.InvalidateAll()
	r.clamp()
	return true
}

func (r *Renderer) Width() int { return r.width }

func (r *Renderer) Mode() DisplayMode { return r.mode }

func (r *Renderer) Offset() int { return r.offset }

func (r *Renderer) Generation() uint64 { return r.cache.Generation() }

// Heights exposes the cache for read-only queries.
func (r *Renderer) Heights() *heights.Cache { return r.cache }

// Visible returns the rows covering the viewport plus the overscan margin.
func (r *Renderer) Visible(viewportHeight int) Range {
	r.viewport = viewportHeight
	r.clamp()

	n := r.cache.Rows()
	if n == 0 || viewportHeight <= 0 {
		return Range{}
	}

	first := r.cache.RowAt(r.offset)
	last := r.cache.RowAt(r.offset + viewportHeight - 1)

	start := max(0, first-r.overscan)
	end := min(n, last+1+r.overscan)
	return Range{
		Start:  start,
		End:    end,
		Offset: r.offset - r.cache.Offset(start),
	}
}

// Rows builds descriptors for exactly the rows in rng.
func (r *Renderer) Rows(seq *filter.Sequence, rng Range, selectedID string, ex *excerpt.Cache) []Row {
	start := max(rng.Start, 0)
	end := min(rng.End, seq.Len())
	if start >= end {
		return nil
	}

	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		n, _ := seq.At(i)
		e := ex.Get(n.ID, n.Content, n.Markdown)
		rows = append(rows, Row{
			Index:     i,
			ID:        n.ID,
			Title:     e.Title,
			Preview:   e.Preview,
			Pinned:    n.Pinned,
			Published: n.Published(),
			Selected:  selectedID != "" && n.ID == selectedID,
		})
	}
	return rows
}

// Measure records laid-out heights reported for generation gen. Batches from
// an older generation are dropped. Changes to rows above the first visible
// row move the offset by the same amount so the visible content stays put.
func (r *Renderer) Measure(gen uint64, measured map[int]int) bool {
	if gen != r.cache.Generation() {
		return false
	}

	anchor := r.cache.RowAt(r.offset)
	changed := false
	shift := 0
	for i, h := range measured {
		delta := r.cache.Record(i, h)
		if delta == 0 {
			continue
		}
		changed = true
		if i < anchor {
			shift += delta
		}
	}

	r.offset += shift
	r.clamp()
	return changed
}

func (r *Renderer) ScrollBy(lines int) {
	r.offset += lines
	r.clamp()
}

// ScrollTo puts row i at the top of the viewport where possible.
func (r *Renderer) ScrollTo(i int) {
	r.offset = r.cache.Offset(i)
	r.clamp()
}

// EnsureVisible scrolls the minimum distance that brings row i into view.
func (r *Renderer) EnsureVisible(i, viewportHeight int) {
	if i < 0 || i >= r.cache.Rows() {
		return
	}
	r.viewport = viewportHeight

	top := r.cache.Offset(i)
	bottom := top + r.cache.Get(i)
	switch {
	case top < r.offset:
		r.offset = top
	case bottom > r.offset+viewportHeight:
		r.offset = min(top, bottom-viewportHeight)
	}
	r.clamp()
}

func (r *Renderer) clamp() {
	limit := r.cache.Total() - r.viewport
	if r.offset > limit {
		r.offset = limit
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// Placeholder returns the text shown instead of rows, or "" when rows exist.
// An unloaded collection is never reported as empty.
func Placeholder(loaded bool, rows int) string {
	switch {
	case !loaded:
		return LoadingPlaceholder
	case rows == 0:
		return EmptyPlaceholder
	default:
		return ""
	}
}
