package window

import (
	"fmt"
	"testing"

	"github.com/Paintersrp/notelist/internal/excerpt"
	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
)

func testSequence(n int) *filter.Sequence {
	c := note.Collection{Loaded: true}
	for i := 0; i < n; i++ {
		c.Notes = append(c.Notes, note.Note{
			ID:      fmt.Sprintf("note-%02d", i),
			Content: fmt.Sprintf("Title %02d\nbody", i),
		})
	}
	return filter.NewSequence(c, filter.Criteria{}, filter.SortOptions{Mode: filter.SortAlphabetical})
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		loaded bool
		rows   int
		want   string
	}{
		{false, 0, LoadingPlaceholder},
		{false, 3, LoadingPlaceholder},
		{true, 0, EmptyPlaceholder},
		{true, 3, ""},
	}
	for _, tt := range tests {
		if got := Placeholder(tt.loaded, tt.rows); got != tt.want {
			t.Fatalf("Placeholder(%v, %d): expected %q, got %q", tt.loaded, tt.rows, tt.want, got)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	seq := testSequence(10)
	r := NewRenderer(Comfy, 1)
	r.Sync(seq, Comfy, "")

	rng := r.Visible(14)
	if rng != (Range{Start: 0, End: 4, Offset: 0}) {
		t.Fatalf("unexpected range at top: %+v", rng)
	}

	r.ScrollBy(10)
	rng = r.Visible(14)
	if rng != (Range{Start: 0, End: 5, Offset: 10}) {
		t.Fatalf("unexpected range after scroll: %+v", rng)
	}

	r.ScrollBy(1000)
	rng = r.Visible(14)
	if rng.End != 10 || r.Offset() != 46 {
		t.Fatalf("expected scroll clamped to the end, got %+v offset %d", rng, r.Offset())
	}

	if got := NewRenderer(Comfy, 1).Visible(14); got != (Range{}) {
		t.Fatalf("expected empty range without rows, got %+v", got)
	}
}

func TestRowsOnlyForRange(t *testing.T) {
	seq := testSequence(50)
	seq.Notes[3].Pinned = true
	seq.Notes[3].PublishURL = "https://example.com/n/3"

	r := NewRenderer(Comfy, 0)
	r.Sync(seq, Comfy, "")
	rng := Range{Start: 2, End: 5}

	rows := r.Rows(seq, rng, "note-04", excerpt.NewCache(16))
	if len(rows) != rng.Len() {
		t.Fatalf("expected %d rows, got %d", rng.Len(), len(rows))
	}
	for i, row := range rows {
		if row.Index != rng.Start+i {
			t.Fatalf("row %d has index %d", i, row.Index)
		}
	}
	if !rows[1].Pinned || !rows[1].Published {
		t.Fatalf("expected flags on row 3, got %+v", rows[1])
	}
	if !rows[2].Selected || rows[0].Selected {
		t.Fatalf("unexpected selection flags: %+v", rows)
	}
	if rows[0].Title != "Title 02" || rows[0].Preview != "body" {
		t.Fatalf("unexpected excerpt %+v", rows[0])
	}

	if got := r.Rows(seq, Range{Start: 48, End: 60}, "", nil); len(got) != 2 {
		t.Fatalf("expected range clipped to the sequence, got %d rows", len(got))
	}
}

func TestMeasureKeepsAnchor(t *testing.T) {
	seq := testSequence(10)
	r := NewRenderer(Comfy, 0)
	r.Sync(seq, Comfy, "")
	r.Visible(14)
	r.ScrollBy(10)

	if !r.Measure(r.Generation(), map[int]int{0: 3, 1: 7}) {
		t.Fatal("expected measurement to change the layout")
	}
	if r.Offset() != 7 {
		t.Fatalf("expected offset to shift by the delta above the anchor, got %d", r.Offset())
	}
	if r.Heights().RowAt(r.Offset()) != 1 {
		t.Fatal("anchor row moved")
	}

	if r.Measure(r.Generation(), map[int]int{0: 3}) {
		t.Fatal("identical measurement should not report a change")
	}
}

func TestMeasureDropsStaleGeneration(t *testing.T) {
	seq := testSequence(4)
	r := NewRenderer(Comfy, 0)
	r.Sync(seq, Comfy, "")
	gen := r.Generation()

	r.Sync(testSequence(4), Comfy, "")
	if r.Measure(gen, map[int]int{0: 2}) {
		t.Fatal("stale batch should be dropped")
	}
	if r.Heights().Measured(0) {
		t.Fatal("stale height recorded")
	}
}

func TestSyncInvalidation(t *testing.T) {
	seq := testSequence(4)
	r := NewRenderer(Comfy, 0)

	if !r.Sync(seq, Comfy, "a") {
		t.Fatal("first sync should size the cache")
	}
	r.Measure(r.Generation(), map[int]int{0: 2})

	if r.Sync(seq, Comfy, "a") {
		t.Fatal("unchanged inputs should keep measurements")
	}
	if !r.Heights().Measured(0) {
		t.Fatal("measurement lost without a trigger")
	}

	tests := []struct {
		name    string
		seq     *filter.Sequence
		mode    DisplayMode
		content string
	}{
		{"selected content edited", seq, Comfy, "b"},
		{"display mode changed", seq, Condensed, "b"},
		{"new sequence", testSequence(4), Condensed, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Measure(r.Generation(), map[int]int{0: 1})
			if !r.Sync(tt.seq, tt.mode, tt.content) {
				t.Fatal("expected invalidation")
			}
			if r.Heights().Measured(0) {
				t.Fatal("stale measurement survived")
			}
		})
	}

	if got := r.Heights().Get(0); got != Condensed.Estimate().Default() {
		t.Fatalf("expected condensed default height, got %d", got)
	}
}

func TestEnsureVisible(t *testing.T) {
	seq := testSequence(10)
	r := NewRenderer(Comfy, 0)
	r.Sync(seq, Comfy, "")
	r.Visible(14)

	r.EnsureVisible(5, 14)
	if r.Offset() != 22 {
		t.Fatalf("expected row 5 at the bottom edge, got offset %d", r.Offset())
	}

	r.EnsureVisible(1, 14)
	if r.Offset() != 6 {
		t.Fatalf("expected row 1 at the top edge, got offset %d", r.Offset())
	}

	r.ScrollTo(0)
	if r.Offset() != 0 {
		t.Fatalf("expected top, got %d", r.Offset())
	}
}

func TestParseDisplayMode(t *testing.T) {
	for _, mode := range []DisplayMode{Condensed, Comfy, Expanded} {
		got, err := ParseDisplayMode(mode.String())
		if err != nil || got != mode {
			t.Fatalf("round trip of %s failed: %v %v", mode, got, err)
		}
	}
	if _, err := ParseDisplayMode("roomy"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if Expanded.Next() != Condensed {
		t.Fatal("display modes should cycle")
	}
}

func TestSetWidthInvalidates(t *testing.T) {
	r := NewRenderer(Comfy, 0)
	r.Sync(testSequence(4), Comfy, "")

	if !r.SetWidth(80) {
		t.Fatal("expected first width to invalidate")
	}
	if !r.Measure(r.Generation(), map[int]int{0: 3}) {
		t.Fatal("expected measurement to apply")
	}

	if r.SetWidth(80) {
		t.Fatal("same width should not invalidate")
	}
	if !r.Heights().Measured(0) {
		t.Fatal("row 0 should still be measured")
	}

	gen := r.Generation()
	if !r.SetWidth(60) {
		t.Fatal("expected new width to invalidate")
	}
	if r.Heights().Measured(0) || r.Generation() == gen {
		t.Fatal("expected measurements dropped and generation bumped")
	}
}
