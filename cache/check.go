package cache

import (
	"github.com/9triver/lrucore/utils"
	"github.com/9triver/lrucore/utils/errors"
)

// Verify walks the recency chain in both directions and cross-checks it
// against the index and the store. It returns the first inconsistency found.
func (c *Cache[K, V]) Verify() error {
	n := len(c.index)
	if c.store.Len() != n {
		return errors.Format("index/store mismatch: %d keys, %d live entries", n, c.store.Len())
	}

	if n == 0 {
		if !c.list.front.IsNil() || !c.list.back.IsNil() {
			return errors.Format("empty cache with endpoints front=%s back=%s", c.list.front, c.list.back)
		}
		return nil
	}

	seen := make(utils.Set[Handle], n)
	prev := Nil
	for h := c.list.front; !h.IsNil(); {
		e, err := c.store.Resolve(h)
		if err != nil {
			return errors.WrapWith(err, "dangling link after %s", prev)
		}
		if !seen.Add(h) {
			return errors.Format("entry %s appears twice in chain", h)
		}
		if e.prev != prev {
			return errors.Format("incorrect prev link at %s: got %s, want %s", h, e.prev, prev)
		}
		if ih, ok := c.index[e.Key]; !ok || ih != h {
			return errors.Format("index does not map key %v to %s", e.Key, h)
		}
		prev, h = h, e.next
	}

	if prev != c.list.back {
		return errors.Format("back pointer %s is not the chain tail %s", c.list.back, prev)
	}
	if seen.Len() != n {
		return errors.Format("chain visits %d entries, index holds %d", seen.Len(), n)
	}

	count := 0
	next := Nil
	for h := c.list.back; !h.IsNil(); {
		e, err := c.store.Resolve(h)
		if err != nil {
			return errors.WrapWith(err, "dangling link before %s", next)
		}
		if !seen.Contains(h) {
			return errors.Format("entry %s reachable only from back", h)
		}
		if e.next != next {
			return errors.Format("incorrect next link at %s: got %s, want %s", h, e.next, next)
		}
		if count++; count > n {
			return errors.New("reverse chain longer than forward chain")
		}
		next, h = h, e.prev
	}
	if next != c.list.front {
		return errors.Format("front pointer %s is not the reverse chain tail %s", c.list.front, next)
	}

	return nil
}

func (c *Cache[K, V]) bug(err error) {
	panic(errors.WrapWith(err, "bug: cache invariant violated"))
}
