package cache

import (
	"github.com/krisalay/policy-cache/engine"
	"github.com/krisalay/policy-cache/types"
)

// DefaultMaxItems is the capacity used when WithMaxItems is not given.
const DefaultMaxItems = 4

type config struct {
	// maxItems is the upper bound on resident keys across all shards.
	maxItems int
	shards   int

	discard engine.DiscardHook
	loader  types.Loader
	metrics types.Metrics
	logger  types.Logger
}

func defaultConfig() *config {
	return &config{
		maxItems: DefaultMaxItems,
		shards:   1,
	}
}

// perShard splits maxItems over the shards. The first maxItems%shards
// shards take one extra slot, so the bounds always add up to maxItems.
func (c *config) perShard() []int {
	bounds := make([]int, c.shards)
	base, extra := c.maxItems/c.shards, c.maxItems%c.shards
	for i := range bounds {
		bounds[i] = base
		if i < extra {
			bounds[i]++
		}
	}
	return bounds
}
