package cache

import "sync"

// Locked serializes every call on the wrapped controller behind one mutex.
// Get reorders entries, so there is no shared read path.
type Locked[K comparable, V any] struct {
	mu    sync.Mutex
	inner Controller[K, V]
}

func NewLocked[K comparable, V any](inner Controller[K, V]) *Locked[K, V] {
	return &Locked[K, V]{inner: inner}
}

func (l *Locked[K, V]) Insert(key K, value V) (V, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Insert(key, value)
}

func (l *Locked[K, V]) Get(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Get(key)
}

func (l *Locked[K, V]) Remove(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Remove(key)
}

func (l *Locked[K, V]) Peek(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Peek(key)
}

func (l *Locked[K, V]) PeekLRU() (K, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.PeekLRU()
}

func (l *Locked[K, V]) Contains(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Contains(key)
}

func (l *Locked[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Keys()
}

func (l *Locked[K, V]) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Capacity()
}

func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Len()
}

// Do runs fn with exclusive access to the wrapped controller, for sequences
// that must not interleave with other callers (e.g. peek then remove).
func (l *Locked[K, V]) Do(fn func(c Controller[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.inner)
}
