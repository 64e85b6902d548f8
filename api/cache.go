package api

import (
	"context"
	"io"
)

/*
Cache defines the PUBLIC API of the bounded cache.
This is a contract that guarantees certain behaviors, without exposing internals.
Sharding, eviction bookkeeping, locking and loading are hidden behind it.
*/
type Cache interface {

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Ignores the call if the key is empty or the value is nil / empty
		- Replaces the value if the key is already present
		- Evicts exactly one key first if the cache is full and the key is new
		- Never evicts the key being written

		After Put returns, the number of resident keys never exceeds the capacity.
	*/
	Put(key string, value any)

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key is resident: return (value, true)
		2. Otherwise: return (nil, false). Never an error, never a panic.

		Depending on the policy a hit counts as a "use" (MRU, LRU, LFU).
	*/
	Get(key string) (any, bool)

	/*
		GetOrLoad is Get with read-through.

		On a miss the configured loader is asked for the value,
		once per key even under concurrent callers, and the
		result is stored like a regular Put.
	*/
	GetOrLoad(ctx context.Context, key string) (any, error)

	/*
		Remove deletes a key from the cache immediately.

		- Removes the key from storage
		- Removes it from eviction policy tracking
		- Does NOT count as an eviction

		This operation is idempotent.
	*/
	Remove(key string)

	// Len returns the number of resident keys.
	Len() int

	// Keys returns the resident keys in tracking order.
	Keys() []string

	// Print dumps the cache content, sorted by key.
	Print(w io.Writer) error
}
