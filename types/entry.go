package types

import "time"

// CacheEntry is one resident key/value pair.
// The eviction trackers never look at it; they only see the key.
type CacheEntry struct {
	Key       string
	Value     any
	CreatedAt time.Time
	UpdatedAt time.Time // equals CreatedAt until the key is overwritten
}
