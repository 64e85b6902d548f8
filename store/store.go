package store

import "github.com/krisalay/policy-cache/types"

/*
This file defines how data is actually stored inside a shard.

The store is deliberately dumb:
- It has no capacity
- It has no idea which key is old, new, hot or cold

Deciding what to throw away is the eviction tracker's job.
The store only answers "what is the value for this key".
*/

// Store is the interface used by a shard to store and retrieve cache entries.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.CacheEntry, bool)

	// Set inserts or replaces an entry.
	Set(string, *types.CacheEntry)

	// Delete removes an entry. Deleting a missing key is a no-op.
	Delete(string)

	// Size returns how many entries are stored.
	Size() int

	// Keys returns every stored key. The order is NOT defined.
	Keys() []string
}

/*
mapStore is a plain map implementation of Store.

It does no locking of its own. A shard only touches its store while
holding the shard lock, and the eviction tracker must change in the
same critical section anyway, so a second lock here would buy nothing.
*/
type mapStore struct {
	data map[string]*types.CacheEntry
}

// New returns an empty Store.
func New() Store {
	return &mapStore{data: make(map[string]*types.CacheEntry)}
}

func (s *mapStore) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Set(key string, ent *types.CacheEntry) {
	s.data[key] = ent
}

func (s *mapStore) Delete(key string) {
	delete(s.data, key)
}

func (s *mapStore) Size() int {
	return len(s.data)
}

func (s *mapStore) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
