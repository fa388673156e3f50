package cache

import "github.com/9triver/lrucore/utils/errors"

type EvictFunc[K comparable, V any] func(key K, value V)

// Bounded enforces a maximum number of entries on top of a Cache by removing
// the least recently used key before a new key is admitted.
type Bounded[K comparable, V any] struct {
	cache     *Cache[K, V]
	max       int
	onEvict   EvictFunc[K, V]
	evictions int
}

// NewBounded wraps c. maxEntries <= 0 disables the bound. onEvict may be nil.
func NewBounded[K comparable, V any](c *Cache[K, V], maxEntries int, onEvict EvictFunc[K, V]) *Bounded[K, V] {
	b := &Bounded[K, V]{cache: c, max: maxEntries, onEvict: onEvict}
	if maxEntries > 0 {
		b.evictTo(maxEntries)
	}
	return b
}

// Insert admits key, evicting least recently used entries first if key is
// new and the bound is reached. Updating an existing key never evicts.
func (b *Bounded[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	if b.max > 0 && !b.cache.Contains(key) {
		b.evictTo(b.max - 1)
	}

	prev, replaced, err = b.cache.Insert(key, value)
	if IsCapacityExceeded(err) && b.evictOne() {
		// the store limit is tighter than the bound
		prev, replaced, err = b.cache.Insert(key, value)
	}
	return
}

// Resize changes the bound and returns the number of entries evicted.
func (b *Bounded[K, V]) Resize(maxEntries int) int {
	b.max = maxEntries
	if maxEntries <= 0 {
		return 0
	}
	return b.evictTo(maxEntries)
}

func (b *Bounded[K, V]) evictTo(n int) (evicted int) {
	for b.cache.Len() > n {
		if !b.evictOne() {
			break
		}
		evicted++
	}
	return
}

func (b *Bounded[K, V]) evictOne() bool {
	key, ok := b.cache.PeekLRU()
	if !ok {
		return false
	}
	value, err := b.cache.Remove(key)
	if err != nil {
		panic(errors.WrapWith(err, "bug: least recently used key %v not removable", key))
	}
	b.evictions++
	if b.onEvict != nil {
		b.onEvict(key, value)
	}
	return true
}

// Evictions returns the number of entries evicted so far.
func (b *Bounded[K, V]) Evictions() int {
	return b.evictions
}

func (b *Bounded[K, V]) Get(key K) (V, error) {
	return b.cache.Get(key)
}

func (b *Bounded[K, V]) Remove(key K) (V, error) {
	return b.cache.Remove(key)
}

func (b *Bounded[K, V]) Peek(key K) (V, error) {
	return b.cache.Peek(key)
}

func (b *Bounded[K, V]) PeekLRU() (K, bool) {
	return b.cache.PeekLRU()
}

func (b *Bounded[K, V]) Contains(key K) bool {
	return b.cache.Contains(key)
}

func (b *Bounded[K, V]) Keys() []K {
	return b.cache.Keys()
}

func (b *Bounded[K, V]) Len() int {
	return b.cache.Len()
}

// Capacity returns the tighter of the bound and the store capacity, or -1.
func (b *Bounded[K, V]) Capacity() int {
	limit := b.cache.Capacity()
	if b.max > 0 && (limit < 0 || b.max < limit) {
		return b.max
	}
	return limit
}
