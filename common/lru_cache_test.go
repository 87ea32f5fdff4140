package common

import "testing"

func TestLruCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLruCache[uint32, int](2)
	c.Set(1, 10)
	c.Set(2, 20)
	c.Get(1) // 2 is now the least recently used

	key, val, evicted := c.Set(3, 30)
	if !evicted || key != 2 || val != 20 {
		t.Errorf("unexpected eviction: %d -> %d (%t)", key, val, evicted)
	}
	if _, exists := c.Get(2); exists {
		t.Errorf("evicted key still cached")
	}
	if got, _ := c.Get(1); got != 10 {
		t.Errorf("unexpected value: %d", got)
	}
}

func TestLruCache_UpdateDoesNotEvict(t *testing.T) {
	c := NewLruCache[uint32, int](2)
	c.Set(1, 10)
	c.Set(2, 20)
	if _, _, evicted := c.Set(1, 11); evicted {
		t.Errorf("update should not evict")
	}
	if got, _ := c.Get(1); got != 11 {
		t.Errorf("value not updated: %d", got)
	}
	if got, want := c.Size(), 2; got != want {
		t.Errorf("unexpected size, wanted %d, got %d", want, got)
	}
}

func TestLruCache_Remove(t *testing.T) {
	c := NewLruCache[uint32, int](3)
	for i := uint32(1); i <= 3; i++ {
		c.Set(i, int(i))
	}
	for _, key := range []uint32{2, 3, 1} {
		if val, exists := c.Remove(key); !exists || val != int(key) {
			t.Errorf("unexpected removal of %d: %d, %t", key, val, exists)
		}
	}
	if c.head != nil || c.tail != nil || c.Size() != 0 {
		t.Errorf("cache not empty after removing all entries")
	}
	if _, exists := c.Remove(1); exists {
		t.Errorf("missing key reported as removed")
	}
	// the cache remains usable
	c.Set(4, 4)
	if got, _ := c.Get(4); got != 4 {
		t.Errorf("unexpected value: %d", got)
	}
}

func TestLruCache_Clear(t *testing.T) {
	c := NewLruCache[uint32, int](3)
	c.Set(1, 1)
	c.Clear()
	if _, exists := c.Get(1); exists {
		t.Errorf("cleared cache still contains a key")
	}
}
