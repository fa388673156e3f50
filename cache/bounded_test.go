package cache

import (
	"slices"
	"testing"
)

func TestBoundedEvictsLRU(t *testing.T) {
	var evicted []string
	c := New[string, int]()
	b := NewBounded(c, 2, func(key string, _ int) {
		evicted = append(evicted, key)
	})

	_, _, _ = b.Insert("a", 1)
	_, _, _ = b.Insert("b", 2)
	if _, err := b.Get("a"); err != nil {
		t.Fatal(err)
	}
	_, _, _ = b.Insert("c", 3)

	if !slices.Equal(evicted, []string{"b"}) {
		t.Fatalf("evicted %v, want [b]", evicted)
	}
	if _, err := b.Get("b"); !IsNotFound(err) {
		t.Errorf("b still present: %v", err)
	}
	expectChain(t, c, "c", "a")
	if b.Evictions() != 1 {
		t.Errorf("evictions %d, want 1", b.Evictions())
	}
}

func TestBoundedUpdateDoesNotEvict(t *testing.T) {
	c := New[string, int]()
	b := NewBounded(c, 2, nil)
	_, _, _ = b.Insert("a", 1)
	_, _, _ = b.Insert("b", 2)

	prev, replaced, err := b.Insert("a", 10)
	if err != nil || !replaced || prev != 1 {
		t.Fatalf("update: %d %v %v", prev, replaced, err)
	}
	expectChain(t, c, "a", "b")
	if b.Evictions() != 0 {
		t.Errorf("evictions %d, want 0", b.Evictions())
	}
}

func TestBoundedResize(t *testing.T) {
	c := New[string, int]()
	b := NewBounded(c, 0, nil)
	insertAll(t, c, "a", "b", "c", "d")
	if b.Capacity() != -1 {
		t.Errorf("capacity %d, want -1", b.Capacity())
	}

	if n := b.Resize(2); n != 2 {
		t.Fatalf("resize evicted %d, want 2", n)
	}
	expectChain(t, c, "d", "c")
	if b.Capacity() != 2 {
		t.Errorf("capacity %d, want 2", b.Capacity())
	}

	if n := b.Resize(10); n != 0 {
		t.Errorf("grow evicted %d", n)
	}
}

func TestBoundedTighterStore(t *testing.T) {
	c := New[string, int](WithCapacity(2))
	b := NewBounded(c, 5, nil)

	for i, key := range []string{"a", "b", "c"} {
		if _, _, err := b.Insert(key, i); err != nil {
			t.Fatalf("insert %s: %v", key, err)
		}
	}
	expectChain(t, c, "c", "b")
	if b.Capacity() != 2 {
		t.Errorf("capacity %d, want 2", b.Capacity())
	}
}

func TestNewBoundedTrims(t *testing.T) {
	c := New[string, int]()
	insertAll(t, c, "a", "b", "c")

	NewBounded(c, 1, nil)
	expectChain(t, c, "c")
}
