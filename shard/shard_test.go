package shard_test

import (
	"fmt"
	"testing"

	"github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/shard"
	"github.com/krisalay/policy-cache/types"
	"github.com/stretchr/testify/assert"
)

func TestShardFullAndEvict(t *testing.T) {
	sh := shard.NewShard(eviction.NewEvictionPolicy(eviction.FIFO), 2)
	assert.False(t, sh.Full())

	for _, k := range []string{"a", "b"} {
		sh.Store.Set(k, &types.CacheEntry{Key: k, Value: k})
		sh.Eviction.OnPut(k)
	}
	assert.True(t, sh.Full())

	assert.Equal(t, "a", sh.Evict())
	assert.False(t, sh.Full())
	assert.Equal(t, []string{"b"}, sh.Store.Keys())
	assert.Equal(t, []string{"b"}, sh.Eviction.Keys())
}

func TestShardUnboundedNeverFull(t *testing.T) {
	sh := shard.NewShard(eviction.NewEvictionPolicy(eviction.BASIC), 0)
	for i := 0; i < 100; i++ {
		k := fmt.Sprint(i)
		sh.Store.Set(k, &types.CacheEntry{Key: k, Value: i})
		sh.Eviction.OnPut(k)
	}
	assert.False(t, sh.Full())
}

func TestShardEvictPanicsOnBrokenInvariant(t *testing.T) {
	sh := shard.NewShard(eviction.NewEvictionPolicy(eviction.LFU), 1)
	assert.Panics(t, func() { sh.Evict() }, "empty shard")

	// stored but never tracked
	sh.Store.Set("x", &types.CacheEntry{Key: "x", Value: 1})
	assert.Panics(t, func() { sh.Evict() })
}

func TestHashSelectorIsStable(t *testing.T) {
	shards := []*shard.Shard{
		shard.NewShard(eviction.NewEvictionPolicy(eviction.LRU), 1),
		shard.NewShard(eviction.NewEvictionPolicy(eviction.LRU), 1),
		shard.NewShard(eviction.NewEvictionPolicy(eviction.LRU), 1),
	}
	sel := shard.HashSelector{}

	seen := map[*shard.Shard]bool{}
	for i := 0; i < 200; i++ {
		k := fmt.Sprintf("key-%d", i)
		first := sel.Select(k, shards)
		assert.Same(t, first, sel.Select(k, shards))
		seen[first] = true
	}
	assert.Len(t, seen, 3, "keys should spread over every shard")

	one := shards[:1]
	assert.Same(t, shards[0], sel.Select("anything", one))
}
