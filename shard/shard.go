package shard

import (
	"fmt"
	"sync"

	"github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/store"
)

/*
This file defines what a "Shard" is. A shard is a small, independent piece of the cache.

Each shard:
- Holds some portion of the data (its Store)
- Has its own eviction tracker (its Eviction policy)
- Has its own capacity bound
- Has its own lock

A cache with one shard behaves exactly like the single-policy cache: every
ordering rule of the policy holds across all keys. With more shards the
rules hold per shard.
*/
type Shard struct {

	// Store holds the actual key → value data for this shard.
	Store store.Store

	// Eviction tracks order/frequency for this shard and names the victim.
	// The keys it tracks are always exactly the keys in Store.
	Eviction eviction.Policy

	// MaxItems bounds Store.Size(). 0 means unbounded.
	MaxItems int

	// Mu guards Store and Eviction together.
	// Every Put, Get and Remove holds it for the whole operation, so nobody can
	// observe a key that is in one structure but not the other.
	Mu sync.Mutex
}

func NewShard(ev eviction.Policy, maxItems int) *Shard {
	return &Shard{
		Store:    store.New(),
		Eviction: ev,
		MaxItems: maxItems,
	}
}

// Full reports whether writing one more NEW key requires an eviction.
// The caller must hold Mu.
func (s *Shard) Full() bool {
	return s.MaxItems > 0 && s.Store.Size() >= s.MaxItems
}

/*
Evict removes exactly one victim from the tracker and the store and returns it.
The caller must hold Mu, and must only call it when the shard is Full.

A tracker that cannot name a victim while entries exist means the two
structures have drifted apart. That is a bug in the cache itself, not
something a caller can recover from, so it panics.
*/
func (s *Shard) Evict() string {
	if s.Store.Size() == 0 {
		panic("shard: evict called on an empty shard")
	}

	victim := s.Eviction.Evict()
	if victim == "" {
		panic(fmt.Sprintf("shard: %s policy returned no victim with %d entries stored",
			s.Eviction.Type(), s.Store.Size()))
	}

	s.Store.Delete(victim)
	return victim
}
