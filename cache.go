package cache

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/krisalay/policy-cache/engine"
	"github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/shard"
	"github.com/krisalay/policy-cache/types"
	"golang.org/x/sync/singleflight"
)

/*
Cache is the main cache implementation.
This struct is the orchestrator that connects:
- shards (store + eviction tracker + capacity + lock)
- the engine (metrics, logging, discard hook, loader)
*/
type Cache struct {
	id string

	policy eviction.PolicyType

	// shards are the actual storage units. Each shard is an independent mini-cache.
	shards []*shard.Shard

	// engine contains the side effects of the cache: metrics, logging, the discard hook and the loader.
	engine *engine.CacheEngine

	// selector decides which shard a key should go to.
	selector shard.Selector

	// capacity is the maximum number of entries in the cache. This is divided across shards.
	// 0 means unbounded (BASIC policy).
	capacity int

	// singleflight prevents multiple goroutines from loading the same key from the backing store simultaneously.
	sf singleflight.Group
}

// New builds a cache that evicts according to policy.
func New(policy eviction.PolicyType, opts ...Option) (*Cache, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", eviction.ErrUnknownPolicy, policy)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	capacity := cfg.maxItems
	bounds := make([]int, cfg.shards)
	if policy.Bounded() {
		if cfg.shards > cfg.maxItems {
			return nil, fmt.Errorf("%w: %d shards for %d items", ErrInvalidShards, cfg.shards, cfg.maxItems)
		}
		bounds = cfg.perShard()
	} else {
		capacity = 0
	}

	// Each shard gets its own eviction policy instance
	shards := make([]*shard.Shard, cfg.shards)
	for i := range shards {
		shards[i] = shard.NewShard(eviction.NewEvictionPolicy(policy), bounds[i])
	}

	id := uuid.NewString()
	c := &Cache{
		id:       id,
		policy:   policy,
		shards:   shards,
		engine:   engine.NewCacheEngine(id, cfg.discard, cfg.loader, cfg.metrics, cfg.logger),
		selector: shard.HashSelector{},
		capacity: capacity,
	}

	c.engine.Logger.Info("cache: created",
		types.Field{Key: "cache", Value: id},
		types.Field{Key: "policy", Value: policy},
		types.Field{Key: "max_items", Value: capacity},
		types.Field{Key: "shards", Value: len(shards)})

	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(policy eviction.PolicyType, opts ...Option) *Cache {
	c, err := New(policy, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

/*
Put stores a value in the cache.

BEHAVIOR:
---------
- Empty key, nil value or empty string value: the call is ignored, nothing changes
- Existing key: the value is replaced and the key is "touched" (what that means depends on the policy)
- New key in a full shard: exactly one victim is evicted first, then the key is written

The discard hook runs after the shard lock is released, so it may call back into the cache.
*/
func (c *Cache) Put(key string, value any) {
	if !types.Valid(key, value) {
		c.engine.OnReject(key)
		return
	}

	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	evicted := put(sh, key, value)
	sh.Mu.Unlock()

	if evicted != "" {
		c.engine.OnEvict(evicted)
	}
}

// put runs under sh.Mu and returns the evicted key, if any.
func put(sh *shard.Shard, key string, value any) string {
	now := time.Now()

	if ent, ok := sh.Store.Get(key); ok {
		ent.Value = value
		ent.UpdatedAt = now
		sh.Store.Set(key, ent)
		sh.Eviction.OnPut(key)
		return ""
	}

	// Evict before writing, so the incoming key is never the victim.
	var evicted string
	if sh.Full() {
		evicted = sh.Evict()
	}

	sh.Store.Set(key, &types.CacheEntry{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	})
	sh.Eviction.OnPut(key)

	return evicted
}

/*
Get retrieves a value from the cache.

It returns (nil, false) for a missing or empty key. A hit is reported to the
eviction policy, which may reorder the key (MRU, LRU) or count it (LFU).
*/
func (c *Cache) Get(key string) (any, bool) {
	if key == "" {
		c.engine.OnMiss(key)
		return nil, false
	}

	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	ent, ok := sh.Store.Get(key)
	var value any
	if ok {
		value = ent.Value
		sh.Eviction.OnGet(key)
	}
	sh.Mu.Unlock()

	if !ok {
		c.engine.OnMiss(key)
		return nil, false
	}
	c.engine.OnHit(key)
	return value, true
}

/*
GetOrLoad is a read-through Get.

On a miss the loader is called once per key, no matter how many goroutines
ask at the same time, and the result is stored once with Put (which may evict).
*/
func (c *Cache) GetOrLoad(ctx context.Context, key string) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if key == "" {
		return nil, ErrNotFound
	}

	// The store happens inside the flight: callers that share a load share
	// one Put, so the key is counted as a single insertion.
	val, err, _ := c.sf.Do(key, func() (any, error) {
		v, err := c.engine.Load(ctx, key)
		if err == nil && types.Valid(key, v) {
			c.Put(key, v)
		}
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("cache: load %q: %w", key, err)
	}
	if !types.Valid(key, val) {
		return nil, ErrNotFound
	}
	return val, nil
}

/*
Remove deletes a key from the cache immediately.
This is NOT an eviction: the discard hook is not called.
Removing a non-existing key is safe.
*/
func (c *Cache) Remove(key string) {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	sh.Store.Delete(key)
	sh.Eviction.Remove(key)
}

// Contains reports whether key is resident, without touching it.
func (c *Cache) Contains(key string) bool {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	_, ok := sh.Store.Get(key)
	return ok
}

// Len returns the number of resident keys.
func (c *Cache) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.Mu.Lock()
		n += sh.Store.Size()
		sh.Mu.Unlock()
	}
	return n
}

// Keys returns resident keys shard by shard, each shard in its policy's tracking order.
func (c *Cache) Keys() []string {
	var keys []string
	for _, sh := range c.shards {
		sh.Mu.Lock()
		keys = append(keys, sh.Eviction.Keys()...)
		sh.Mu.Unlock()
	}
	return keys
}

// Print writes "Current cache:" followed by one "key: value" line per entry, sorted by key.
func (c *Cache) Print(w io.Writer) error {
	values := make(map[string]any)
	for _, sh := range c.shards {
		sh.Mu.Lock()
		for _, k := range sh.Store.Keys() {
			ent, _ := sh.Store.Get(k)
			values[k] = ent.Value
		}
		sh.Mu.Unlock()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	if _, err := fmt.Fprintln(w, "Current cache:"); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %v\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Frequency returns the access count of a resident key. It reports false when
// the key is absent or the policy does not count accesses.
func (c *Cache) Frequency(key string) (int, bool) {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	fc, ok := sh.Eviction.(eviction.FrequencyCounter)
	if !ok {
		return 0, false
	}
	return fc.Frequency(key)
}

// ID returns the identifier attached to this cache's log lines.
func (c *Cache) ID() string { return c.id }

// Policy returns the eviction policy the cache was built with.
func (c *Cache) Policy() eviction.PolicyType { return c.policy }

// Capacity returns max items, or 0 for an unbounded cache.
func (c *Cache) Capacity() int { return c.capacity }
