package cache

import (
	"github.com/asynkron/protoactor-go/actor"

	"github.com/9triver/lrucore/cache"
	"github.com/9triver/lrucore/utils"
)

type evictor interface {
	Evictions() int
}

// Actor owns a cache controller. The mailbox processes one message at a
// time, which gives the controller the single owner it requires.
type Actor[K comparable, V any] struct {
	id    string
	cache cache.Controller[K, V]
	stats StatsResult
}

func (a *Actor[K, V]) onInsert(ctx actor.Context, msg *Insert[K, V]) {
	prev, replaced, err := a.cache.Insert(msg.Key, msg.Value)
	if err != nil {
		ctx.Logger().Warn("cache: insert failed",
			"cache", a.id,
			"key", msg.Key,
			"error", err,
		)
	} else {
		a.stats.Inserts++
	}
	ctx.Respond(&InsertResult[V]{Prev: prev, Replaced: replaced, Error: err})
}

func (a *Actor[K, V]) onGet(ctx actor.Context, msg *Get[K]) {
	value, err := a.cache.Get(msg.Key)
	if err != nil {
		a.stats.Misses++
	} else {
		a.stats.Hits++
	}
	ctx.Respond(&ValueResult[V]{Value: value, Error: err})
}

func (a *Actor[K, V]) onRemove(ctx actor.Context, msg *Remove[K]) {
	value, err := a.cache.Remove(msg.Key)
	if err == nil {
		a.stats.Removes++
		ctx.Logger().Debug("cache: removed", "cache", a.id, "key", msg.Key)
	}
	ctx.Respond(&ValueResult[V]{Value: value, Error: err})
}

func (a *Actor[K, V]) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		ctx.Logger().Info("cache: started",
			"cache", a.id,
			"capacity", a.cache.Capacity(),
		)
	case *Insert[K, V]:
		a.onInsert(ctx, msg)
	case *Get[K]:
		a.onGet(ctx, msg)
	case *Peek[K]:
		value, err := a.cache.Peek(msg.Key)
		ctx.Respond(&ValueResult[V]{Value: value, Error: err})
	case *Remove[K]:
		a.onRemove(ctx, msg)
	case *PeekLRU:
		key, ok := a.cache.PeekLRU()
		ctx.Respond(&KeyResult[K]{Key: key, Ok: ok})
	case *Keys:
		ctx.Respond(&KeysResult[K]{Keys: a.cache.Keys()})
	case *Stats:
		stats := a.stats
		stats.Len = a.cache.Len()
		stats.Capacity = a.cache.Capacity()
		if e, ok := a.cache.(evictor); ok {
			stats.Evictions = e.Evictions()
		}
		ctx.Respond(&stats)
	}
}

func New[K comparable, V any](ctrl cache.Controller[K, V], id string) *actor.Props {
	a := &Actor[K, V]{id: id, cache: ctrl}
	return actor.PropsFromProducer(func() actor.Actor {
		return a
	})
}

// Spawn starts a cache actor named "cache.<id>". An empty id is replaced by
// a generated short id.
func Spawn[K comparable, V any](ctx actor.SpawnerContext, ctrl cache.Controller[K, V], id string) (*actor.PID, error) {
	if id == "" {
		id = utils.GenShortID()
	}
	return ctx.SpawnNamed(New(ctrl, id), "cache."+id)
}
