package cache

import "github.com/9triver/lrucore/utils/errors"

// orderList is the recency chain threaded through store entries. front is
// the most recently used entry, back the least recently used one.
//
// The list never allocates or frees entries; it only rewrites links.
type orderList[K comparable, V any] struct {
	store       *Store[K, V]
	front, back Handle
}

func (l *orderList[K, V]) resolve(h Handle) *Entry[K, V] {
	e, err := l.store.Resolve(h)
	if err != nil {
		panic(errors.WrapWith(err, "bug: recency chain references dead entry"))
	}
	return e
}

func (l *orderList[K, V]) empty() bool {
	return l.front.IsNil()
}

// detach unlinks h and repairs its neighbours and both endpoints. The
// entry's own links are cleared.
func (l *orderList[K, V]) detach(h Handle) {
	e := l.resolve(h)

	if e.prev.IsNil() {
		l.front = e.next
	} else {
		l.resolve(e.prev).next = e.next
	}

	if e.next.IsNil() {
		l.back = e.prev
	} else {
		l.resolve(e.next).prev = e.prev
	}

	e.next, e.prev = Nil, Nil
}

func (l *orderList[K, V]) attachFront(h Handle) {
	e := l.resolve(h)
	e.prev = Nil
	e.next = l.front

	if l.front.IsNil() {
		l.back = h
	} else {
		l.resolve(l.front).prev = h
	}
	l.front = h
}

// moveToFront promotes h. When h is the back entry, detach re-derives back
// from h's predecessor before h is relinked at the front.
func (l *orderList[K, V]) moveToFront(h Handle) {
	if l.front == h {
		return
	}
	l.detach(h)
	l.attachFront(h)
}

func (l *orderList[K, V]) reset() {
	l.front, l.back = Nil, Nil
}
