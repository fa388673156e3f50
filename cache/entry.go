package cache

// Entry is a cached key/value pair together with its position in recency
// order. Links are handles into the owning Store and carry no ownership.
type Entry[K comparable, V any] struct {
	Key   K
	Value V

	// next points towards the least recently used end, prev towards the most
	// recently used end.
	next, prev Handle
}

func (e *Entry[K, V]) Next() Handle { return e.next }

func (e *Entry[K, V]) Prev() Handle { return e.prev }
