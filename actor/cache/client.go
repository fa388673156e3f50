package cache

import (
	"time"

	"github.com/asynkron/protoactor-go/actor"

	"github.com/9triver/lrucore/configs"
	"github.com/9triver/lrucore/utils/errors"
)

// Client is a synchronous front for a cache actor.
type Client[K comparable, V any] struct {
	ctx     actor.SenderContext
	pid     *actor.PID
	timeout time.Duration
}

func NewClient[K comparable, V any](ctx actor.SenderContext, pid *actor.PID) *Client[K, V] {
	return &Client[K, V]{ctx: ctx, pid: pid, timeout: configs.RequestTimeout}
}

func (c *Client[K, V]) WithTimeout(timeout time.Duration) *Client[K, V] {
	return &Client[K, V]{ctx: c.ctx, pid: c.pid, timeout: timeout}
}

func (c *Client[K, V]) PID() *actor.PID {
	return c.pid
}

func request[R any, K comparable, V any](c *Client[K, V], msg any) (ret R, err error) {
	res, err := c.ctx.RequestFuture(c.pid, msg, c.timeout).Result()
	if err != nil {
		return ret, errors.WrapWith(err, "cache %s: request %T", c.pid.Id, msg)
	}

	ret, ok := res.(R)
	if !ok {
		return ret, errors.Format("cache %s: unexpected reply %T to %T", c.pid.Id, res, msg)
	}
	return ret, nil
}

func (c *Client[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	res, err := request[*InsertResult[V]](c, &Insert[K, V]{Key: key, Value: value})
	if err != nil {
		return prev, false, err
	}
	return res.Prev, res.Replaced, res.Error
}

func (c *Client[K, V]) Get(key K) (value V, err error) {
	res, err := request[*ValueResult[V]](c, &Get[K]{Key: key})
	if err != nil {
		return value, err
	}
	return res.Value, res.Error
}

func (c *Client[K, V]) Peek(key K) (value V, err error) {
	res, err := request[*ValueResult[V]](c, &Peek[K]{Key: key})
	if err != nil {
		return value, err
	}
	return res.Value, res.Error
}

func (c *Client[K, V]) Remove(key K) (value V, err error) {
	res, err := request[*ValueResult[V]](c, &Remove[K]{Key: key})
	if err != nil {
		return value, err
	}
	return res.Value, res.Error
}

func (c *Client[K, V]) PeekLRU() (key K, ok bool, err error) {
	res, err := request[*KeyResult[K]](c, &PeekLRU{})
	if err != nil {
		return key, false, err
	}
	return res.Key, res.Ok, nil
}

func (c *Client[K, V]) Keys() ([]K, error) {
	res, err := request[*KeysResult[K]](c, &Keys{})
	if err != nil {
		return nil, err
	}
	return res.Keys, nil
}

func (c *Client[K, V]) Stats() (StatsResult, error) {
	res, err := request[*StatsResult](c, &Stats{})
	if err != nil {
		return StatsResult{}, err
	}
	return *res, nil
}
