package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/krisalay/policy-cache/types"
)

// DiscardHook is called with every evicted key, right after it was removed.
// It exists for auditing and logging; the cache never depends on what it does.
type DiscardHook func(key string)

// ErrNoLoader is returned by Load when no Loader is configured.
var ErrNoLoader = errors.New("cache: no loader configured")

/*
CacheEngine holds the side effects of the cache, NOT its state.

It decides:
- Which metrics are recorded for a hit, a miss, an eviction or a rejected write
- What gets logged
- Who is told about evicted keys
- How data is loaded on a read-through miss

It does NOT:
- Store data
- Handle locking
- Decide eviction order

Every method is called AFTER the shard lock has been released.
*/
type CacheEngine struct {

	// ID tags every log line, so several caches can share one logger.
	ID string

	// Discard is an optional hook invoked with every evicted key.
	Discard DiscardHook

	// Loader is how the cache talks to the outside world when it does NOT have the data.
	// If nil, GetOrLoad fails with ErrNoLoader.
	Loader types.Loader

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics

	Logger types.Logger
}

/*
NewCacheEngine creates a CacheEngine.
*/
func NewCacheEngine(
	id string,
	discard DiscardHook,
	loader types.Loader,
	metrics types.Metrics,
	logger types.Logger,
) *CacheEngine {

	// Ensure metrics and logger are always non-nil
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = types.NoopLogger{}
	}

	return &CacheEngine{
		ID:      id,
		Discard: discard,
		Loader:  loader,
		Metrics: metrics,
		Logger:  logger,
	}
}

// OnHit is called when Get finds the key.
func (e *CacheEngine) OnHit(string) {
	e.Metrics.Hit()
}

// OnMiss is called when Get does not find the key.
func (e *CacheEngine) OnMiss(string) {
	e.Metrics.Miss()
}

// OnReject is called when Put ignores an empty key or value.
func (e *CacheEngine) OnReject(key string) {
	e.Metrics.Reject()
	e.Logger.Debug("cache: rejected put", types.Field{Key: "cache", Value: e.ID}, types.Field{Key: "key", Value: key})
}

/*
OnEvict is called once per evicted key.

The key is already gone from the store and the tracker when we get here.
The hook is best-effort: if it panics we log the failure and carry on.
The eviction itself stays done.
*/
func (e *CacheEngine) OnEvict(key string) {
	e.Metrics.Eviction()
	e.Logger.Debug("cache: evicted key", types.Field{Key: "cache", Value: e.ID}, types.Field{Key: "key", Value: key})

	if e.Discard == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("cache: discard hook failed",
				types.Field{Key: "cache", Value: e.ID},
				types.Field{Key: "key", Value: key},
				types.Field{Key: "panic", Value: fmt.Sprint(r)})
		}
	}()
	e.Discard(key)
}

/*
Load is used when the cache does NOT have the data.

This usually means:
- A database call
- A network request
*/
func (e *CacheEngine) Load(ctx context.Context, key string) (any, error) {
	if e.Loader == nil {
		return nil, ErrNoLoader
	}
	return e.Loader.Load(ctx, key)
}
