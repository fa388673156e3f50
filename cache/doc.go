// Package cache implements a recency-ordered key/value store.
//
// Entries live in an arena (Store) and are addressed by generation-checked
// handles. The recency chain links entries by handle, so no entry owns
// another and a freed entry can never be reached through a stale link.
//
//	c := cache.New[string, int]()
//	c.Insert("a", 1)
//	c.Insert("b", 2)
//	c.Get("a")          // a is now most recently used
//	key, _ := c.PeekLRU() // "b"
//	c.Remove(key)
//
// Cache does not bound its size. Bounded layers an LRU eviction policy on top
// of it, Locked makes any Controller safe for concurrent use.
//
// Build with -tags checked to verify every invariant after each mutation.
package cache
