package cache

import "fmt"

// Handle identifies a live entry inside a Store. The zero Handle (Nil) never
// refers to a live entry.
type Handle struct {
	index uint32
	gen   uint32
}

var Nil Handle

func (h Handle) IsNil() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d@%d", h.index, h.gen)
}

type slot[K comparable, V any] struct {
	entry Entry[K, V]
	gen   uint32
	live  bool
}

// Store owns every entry of a cache. Slots are recycled through a free list;
// each reuse bumps the slot generation so handles issued before a Free stay
// invalid.
type Store[K comparable, V any] struct {
	slots []slot[K, V]
	free  []uint32
	limit int
	live  int
}

// NewStore creates a store. limit <= 0 means the store grows without bound.
func NewStore[K comparable, V any](limit int) *Store[K, V] {
	s := &Store[K, V]{limit: limit}
	if limit > 0 {
		s.slots = make([]slot[K, V], 0, limit)
	}
	return s
}

func (s *Store[K, V]) Allocate(key K, value V) (Handle, error) {
	if s.limit > 0 && s.live >= s.limit {
		return Nil, ErrCapacityExceeded
	}

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot[K, V]{})
		idx = uint32(len(s.slots) - 1)
	}

	sl := &s.slots[idx]
	sl.gen++
	if sl.gen == 0 { // wrapped, generation 0 is reserved for Nil
		sl.gen = 1
	}
	sl.live = true
	sl.entry = Entry[K, V]{Key: key, Value: value}
	s.live++

	return Handle{index: idx, gen: sl.gen}, nil
}

func (s *Store[K, V]) Resolve(h Handle) (*Entry[K, V], error) {
	sl, err := s.slot(h)
	if err != nil {
		return nil, err
	}
	return &sl.entry, nil
}

func (s *Store[K, V]) Free(h Handle) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}

	sl.entry = Entry[K, V]{}
	sl.live = false
	s.free = append(s.free, h.index)
	s.live--
	return nil
}

func (s *Store[K, V]) Len() int {
	return s.live
}

// Limit returns the fixed capacity of the store, or 0 if unbounded.
func (s *Store[K, V]) Limit() int {
	if s.limit <= 0 {
		return 0
	}
	return s.limit
}

// reset frees every live slot. Generations are kept so that handles issued
// before the reset remain invalid.
func (s *Store[K, V]) reset() {
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		sl := &s.slots[i]
		sl.entry = Entry[K, V]{}
		sl.live = false
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}

func (s *Store[K, V]) slot(h Handle) (*slot[K, V], error) {
	if h.IsNil() || int(h.index) >= len(s.slots) {
		return nil, invalidHandle(h)
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return nil, invalidHandle(h)
	}
	return sl, nil
}
