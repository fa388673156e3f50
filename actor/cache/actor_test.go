package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9triver/lrucore/cache"
)

func newTestClient(t *testing.T, ctrl cache.Controller[string, int]) *Client[string, int] {
	t.Helper()

	system := actor.NewActorSystem()
	t.Cleanup(system.Shutdown)

	pid, err := Spawn(system.Root, ctrl, t.Name())
	require.NoError(t, err)
	return NewClient[string, int](system.Root, pid).WithTimeout(2 * time.Second)
}

func TestActorInsertGet(t *testing.T) {
	client := newTestClient(t, cache.New[string, int]())

	_, replaced, err := client.Insert("a", 1)
	require.NoError(t, err)
	assert.False(t, replaced)

	prev, replaced, err := client.Insert("a", 2)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)

	v, err := client.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = client.Get("missing")
	assert.True(t, cache.IsNotFound(err), "got %v", err)
}

func TestActorRecencyOrder(t *testing.T) {
	client := newTestClient(t, cache.New[string, int]())

	for i, key := range []string{"a", "b", "c"} {
		_, _, err := client.Insert(key, i)
		require.NoError(t, err)
	}
	_, err := client.Get("a")
	require.NoError(t, err)

	keys, err := client.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, keys)

	key, ok, err := client.PeekLRU()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", key)

	v, err := client.Peek("b")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	key, _, _ = client.PeekLRU()
	assert.Equal(t, "b", key, "peek must not promote")
}

func TestActorRemove(t *testing.T) {
	client := newTestClient(t, cache.New[string, int]())

	_, _, err := client.Insert("a", 1)
	require.NoError(t, err)

	v, err := client.Remove("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = client.Remove("a")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	_, ok, err := client.PeekLRU()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActorBoundedStats(t *testing.T) {
	var evicted []string
	bounded := cache.NewBounded(cache.New[string, int](), 2, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	client := newTestClient(t, bounded)

	for i, key := range []string{"a", "b", "c"} {
		_, _, err := client.Insert(key, i)
		require.NoError(t, err)
	}
	_, _ = client.Get("c")
	_, _ = client.Get("a")

	stats, err := client.Stats()
	require.NoError(t, err)
	assert.Equal(t, StatsResult{
		Len:       2,
		Capacity:  2,
		Inserts:   3,
		Hits:      1,
		Misses:    1,
		Evictions: 1,
	}, stats)
	assert.Equal(t, []string{"a"}, evicted)
}

func TestActorCapacityExceeded(t *testing.T) {
	client := newTestClient(t, cache.New[string, int](cache.WithCapacity(1)))

	_, _, err := client.Insert("a", 1)
	require.NoError(t, err)
	_, _, err = client.Insert("b", 2)
	assert.True(t, cache.IsCapacityExceeded(err), "got %v", err)

	stats, err := client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Inserts)
	assert.Equal(t, 1, stats.Len)
}

func TestSpawnGeneratesName(t *testing.T) {
	system := actor.NewActorSystem()
	defer system.Shutdown()

	pid, err := Spawn[string, int](system.Root, cache.New[string, int](), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pid.Id, "cache."), pid.Id)
	assert.Greater(t, len(pid.Id), len("cache."))

	stats, err := NewClient[string, int](system.Root, pid).Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Evictions)
}

func TestClientTimeout(t *testing.T) {
	system := actor.NewActorSystem()
	defer system.Shutdown()

	// an actor that never answers
	pid := system.Root.Spawn(actor.PropsFromFunc(func(actor.Context) {}))
	client := NewClient[string, int](system.Root, pid).WithTimeout(50 * time.Millisecond)

	_, err := client.Get("a")
	assert.Error(t, err)
}
