package cache

// Controller is the surface shared by Cache and the wrappers layered on it.
type Controller[K comparable, V any] interface {
	Insert(key K, value V) (prev V, replaced bool, err error)
	Get(key K) (V, error)
	Remove(key K) (V, error)
	Peek(key K) (V, error)
	PeekLRU() (K, bool)
	Contains(key K) bool
	Keys() []K
	Capacity() int
	Len() int
}

var (
	_ Controller[string, int] = (*Cache[string, int])(nil)
	_ Controller[string, int] = (*Bounded[string, int])(nil)
	_ Controller[string, int] = (*Locked[string, int])(nil)
)
