package cache

import (
	"fmt"

	"github.com/krisalay/policy-cache/engine"
	"github.com/krisalay/policy-cache/types"
)

// Option is an option that can be applied to the cache.
type Option func(*config) error

// WithMaxItems sets the upper bound on resident keys (max_items).
// It is ignored by the BASIC policy, which never evicts.
func WithMaxItems(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidMaxItems, n)
		}
		c.maxItems = n
		return nil
	}
}

// WithShards splits the cache into n independently locked shards.
// Eviction order is then kept per shard, not across the whole cache.
func WithShards(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidShards, n)
		}
		c.shards = n
		return nil
	}
}

// WithDiscardHook registers a callback invoked with every evicted key.
func WithDiscardHook(h DiscardHook) Option {
	return func(c *config) error {
		c.discard = engine.DiscardHook(h)
		return nil
	}
}

// WithLoader sets the backing store used by GetOrLoad.
func WithLoader(l types.Loader) Option {
	return func(c *config) error {
		c.loader = l
		return nil
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m types.Metrics) Option {
	return func(c *config) error {
		c.metrics = m
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l types.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}
