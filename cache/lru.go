package cache

import (
	"log/slog"

	"github.com/9triver/lrucore/utils/errors"
)

// Cache is a recency-ordered key/value store. It is not safe for concurrent
// use; wrap it in Locked or hand it to a cache actor to share it.
//
// The cache never evicts on its own. A caller wanting a bound removes
// PeekLRU() until it is satisfied, which is what Bounded does.
type Cache[K comparable, V any] struct {
	index  map[K]Handle
	store  *Store[K, V]
	list   orderList[K, V]
	logger *slog.Logger
}

type Option func(*options)

type options struct {
	capacity int
	logger   *slog.Logger
}

// WithCapacity backs the cache with a fixed-capacity store. Inserting a new
// key into a full cache fails with ErrCapacityExceeded.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	store := NewStore[K, V](o.capacity)
	return &Cache[K, V]{
		index:  make(map[K]Handle),
		store:  store,
		list:   orderList[K, V]{store: store},
		logger: o.logger,
	}
}

// Insert stores value under key and makes key the most recently used entry.
// If key was present its previous value is returned with replaced set.
func (c *Cache[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	defer c.check()

	if h, ok := c.index[key]; ok {
		e := c.list.resolve(h)
		prev, e.Value = e.Value, value
		c.list.moveToFront(h)
		c.logger.Debug("cache: replace", "key", key, "handle", h)
		return prev, true, nil
	}

	h, err := c.store.Allocate(key, value)
	if err != nil {
		return prev, false, capacityExceeded(key, err)
	}
	c.list.attachFront(h)
	c.index[key] = h
	c.logger.Debug("cache: insert", "key", key, "handle", h)
	return prev, false, nil
}

func (c *Cache[K, V]) Get(key K) (value V, err error) {
	defer c.check()

	h, ok := c.index[key]
	if !ok {
		return value, notFound(key)
	}

	c.list.moveToFront(h)
	return c.list.resolve(h).Value, nil
}

func (c *Cache[K, V]) Remove(key K) (value V, err error) {
	defer c.check()

	h, ok := c.index[key]
	if !ok {
		return value, notFound(key)
	}

	value = c.list.resolve(h).Value
	c.list.detach(h)
	delete(c.index, key)
	if err := c.store.Free(h); err != nil {
		panic(errors.WrapWith(err, "bug: indexed entry %v not freeable", key))
	}
	c.logger.Debug("cache: remove", "key", key, "handle", h)
	return value, nil
}

// Peek returns the value for key without touching recency order.
func (c *Cache[K, V]) Peek(key K) (value V, err error) {
	h, ok := c.index[key]
	if !ok {
		return value, notFound(key)
	}
	return c.list.resolve(h).Value, nil
}

// PeekLRU returns the least recently used key without reordering.
func (c *Cache[K, V]) PeekLRU() (key K, ok bool) {
	if c.list.empty() {
		return
	}
	return c.list.resolve(c.list.back).Key, true
}

// PeekMRU returns the most recently used key without reordering.
func (c *Cache[K, V]) PeekMRU() (key K, ok bool) {
	if c.list.empty() {
		return
	}
	return c.list.resolve(c.list.front).Key, true
}

func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for h := c.list.front; !h.IsNil(); {
		e := c.list.resolve(h)
		keys = append(keys, e.Key)
		h = e.next
	}
	return keys
}

func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.index) == 0
}

// Capacity returns the fixed store capacity, or -1 when unbounded.
func (c *Cache[K, V]) Capacity() int {
	if limit := c.store.Limit(); limit > 0 {
		return limit
	}
	return -1
}

// Purge drops every entry. Handles issued before Purge stay invalid.
func (c *Cache[K, V]) Purge() {
	defer c.check()

	clear(c.index)
	c.list.reset()
	c.store.reset()
}
