package cache

// Requests. Every request is answered with exactly one reply through
// ctx.Respond, so they are meant to be sent with RequestFuture.
type (
	Insert[K comparable, V any] struct {
		Key   K
		Value V
	}

	Get[K comparable] struct {
		Key K
	}

	Peek[K comparable] struct {
		Key K
	}

	Remove[K comparable] struct {
		Key K
	}

	PeekLRU struct{}

	Keys struct{}

	Stats struct{}
)

// Replies. Error holds the cache error unchanged, so errors.Is works against
// the cache sentinels on the caller side.
type (
	InsertResult[V any] struct {
		Prev     V
		Replaced bool
		Error    error
	}

	ValueResult[V any] struct {
		Value V
		Error error
	}

	KeyResult[K comparable] struct {
		Key K
		Ok  bool
	}

	KeysResult[K comparable] struct {
		Keys []K
	}

	StatsResult struct {
		Len       int
		Capacity  int
		Inserts   int
		Hits      int
		Misses    int
		Removes   int
		Evictions int // only reported by evicting controllers such as cache.Bounded
	}
)
