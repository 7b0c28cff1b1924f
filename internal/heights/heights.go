// Package heights keeps measured row heights for the note list and answers
// scroll-position queries over them.
package heights

import "sort"

// Estimate describes the height of a row before it has been laid out.
type Estimate struct {
	Title        int
	PreviewLine  int
	PreviewLines int
	Padding      int
}

// DefaultEstimate is a title line, four preview lines and one line of
// spacing.
var DefaultEstimate = Estimate{Title: 1, PreviewLine: 1, PreviewLines: 4, Padding: 1}

// Default is the height served for rows that have not been measured.
func (e Estimate) Default() int {
	h := e.Padding + e.Title + e.PreviewLine*e.PreviewLines
	if h < 1 {
		return 1
	}
	return h
}

// Cache maps row positions to heights. Rows are keyed by position, not note
// identity, so any change to what occupies a position requires
// InvalidateAll.
type Cache struct {
	estimate Estimate
	fallback int
	measured []int
	deltas   fenwick
	gen      uint64
}

func New(rows int, est Estimate) *Cache {
	c := &Cache{estimate: est, fallback: est.Default()}
	c.reset(rows)
	return c
}

func (c *Cache) reset(rows int) {
	if rows < 0 {
		rows = 0
	}
	c.measured = make([]int, rows)
	c.deltas = newFenwick(rows)
}

// Reset resizes the cache to rows and drops every measurement.
func (c *Cache) Reset(rows int) {
	c.reset(rows)
	c.gen++
}

// InvalidateAll drops every measurement. Measurements taken against an older
// generation are rejected by the caller through Generation.
func (c *Cache) InvalidateAll() {
	c.Reset(len(c.measured))
}

// SetEstimate changes the default height and invalidates.
func (c *Cache) SetEstimate(est Estimate) {
	c.estimate = est
	c.fallback = est.Default()
	c.InvalidateAll()
}

func (c *Cache) Estimate() Estimate { return c.estimate }

func (c *Cache) Generation() uint64 { return c.gen }

func (c *Cache) Rows() int { return len(c.measured) }

// Get returns the measured height of row i or the default estimate.
func (c *Cache) Get(i int) int {
	if i < 0 || i >= len(c.measured) || c.measured[i] == 0 {
		return c.fallback
	}
	return c.measured[i]
}

func (c *Cache) Measured(i int) bool {
	return i >= 0 && i < len(c.measured) && c.measured[i] != 0
}

// Record stores a measurement for row i and returns how much it differs from
// the height served before. Rows outside the cache are ignored.
func (c *Cache) Record(i, h int) int {
	if i < 0 || i >= len(c.measured) {
		return 0
	}
	if h <= 0 {
		h = 1
	}

	delta := h - c.Get(i)
	if delta != 0 {
		c.deltas.add(i, delta)
	}
	c.measured[i] = h
	return delta
}

// Offset is the scroll position at which row i starts.
func (c *Cache) Offset(i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(c.measured) {
		i = len(c.measured)
	}
	return i*c.fallback + c.deltas.prefix(i)
}

func (c *Cache) Total() int {
	return c.Offset(len(c.measured))
}

// RowAt returns the row covering scroll position y, clamped to the rows
// that exist. It returns 0 for an empty cache.
func (c *Cache) RowAt(y int) int {
	n := len(c.measured)
	if n == 0 || y <= 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool {
		return c.Offset(i+1) > y
	})
	if i >= n {
		return n - 1
	}
	return i
}
