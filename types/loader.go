package types

import "context"

// Loader is the contract between the cache and the backing store.
type Loader interface {

	/*
		Load is called by GetOrLoad when the cache misses.
		1. Cache checks memory → key not found
		2. Cache calls Load(key) (once per key, even with many concurrent callers)
		3. Loader fetches from DB/API
		4. Cache stores the result in memory, evicting if it is full
		5. Cache returns the value

		Returning a nil value with a nil error means "does not exist".
	*/
	Load(ctx context.Context, key string) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, key string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}
