package cache

import "testing"

func TestPutUpdatesExistingEntryWithoutGrowingSize(t *testing.T) {
	c := NewLRU[string, string](2)

	c.Put("alpha", "x")
	c.Put("beta", "y")
	c.Put("alpha", "z")

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if v, ok := c.Get("alpha"); !ok || v != "z" {
		t.Fatalf("expected updated alpha value, got %q (hit=%v)", v, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int, string](2)

	c.Put(1, "one")
	c.Put(2, "two")
	if _, ok := c.Get(1); !ok {
		t.Fatalf("expected key 1 to be cached")
	}
	c.Put(3, "three")

	if _, ok := c.Get(2); ok {
		t.Fatalf("expected key 2 to be evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Fatalf("expected recently used key 1 to survive eviction")
	}
	if _, ok := c.Get(3); !ok {
		t.Fatalf("expected key 3 to be cached")
	}
}

func TestStatsAndPurge(t *testing.T) {
	c := NewLRU[string, int](0)

	c.Put("a", 1)
	c.Get("a")
	c.Get("b")

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after purge, got %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected purged key to be gone")
	}
}
