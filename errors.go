package cache

import (
	"errors"

	"github.com/krisalay/policy-cache/engine"
)

var (
	// ErrNotFound is returned by GetOrLoad when neither the cache nor the loader has the key.
	ErrNotFound = errors.New("cache: key not found")

	// ErrNoLoader is returned by GetOrLoad when the cache was built without WithLoader.
	ErrNoLoader = engine.ErrNoLoader

	ErrInvalidMaxItems = errors.New("cache: max items must be positive")
	ErrInvalidShards   = errors.New("cache: shard count must be positive and not exceed max items")
)
