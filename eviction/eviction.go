package eviction

import (
	"errors"
	"fmt"
	"strings"
)

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

A policy is a TRACKER: it only keeps the metadata needed to pick a victim
(insertion order, access order, access counts). It never holds values.

The cache calls these methods while holding the shard lock, and it keeps one
rule at all times: the set of keys tracked by the policy is exactly the set of
keys in the shard's store.
*/
type Policy interface {

	// OnGet is called whenever a key is read from the cache and found.
	//
	// Some eviction strategies care about reads:
	// - MRU and LRU move the key to the most recent position
	// - LFU counts the access
	//
	// FIFO and LIFO ignore this.
	OnGet(string)

	// OnPut is called after a key is written to the store.
	// It is called for new keys AND for overwrites of existing keys.
	// Each policy decides what an overwrite means for ordering.
	OnPut(string)

	// Remove is called when a key is explicitly removed
	// from the cache (not evicted).
	Remove(string)

	// Evict is called when the shard is FULL and a NEW key is about to be written.
	//
	// The policy picks the victim, forgets it, and returns it.
	// The cache then deletes it from the store.
	//
	// It returns "" when there is no victim: nothing is tracked, or the policy is BASIC.
	Evict() string

	// Keys returns the tracked keys in the policy's own order (see each policy).
	Keys() []string

	// Len returns how many keys are tracked.
	Len() int

	// Type identifies the policy.
	Type() PolicyType
}

// FrequencyCounter is implemented by policies that count accesses (LFU).
type FrequencyCounter interface {
	// Frequency returns the access count of a tracked key.
	Frequency(string) (int, bool)
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// BASIC never evicts. The cache is unbounded and max items is ignored.
	BASIC PolicyType = "BASIC"

	// FIFO (First In First Out): Evicts the oldest inserted key, regardless of access.
	FIFO PolicyType = "FIFO"

	// LIFO (Last In First Out): Evicts the most recently inserted key.
	LIFO PolicyType = "LIFO"

	// MRU (Most Recently Used): Evicts the key that was written or read most recently.
	MRU PolicyType = "MRU"

	// LRU (Least Recently Used): Evicts the key that has NOT been written or read for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): Evicts the key that has been accessed the fewest times.
	// Among keys with the same count, the one touched longest ago goes first.
	LFU PolicyType = "LFU"
)

// ErrUnknownPolicy is returned when a policy name is not recognised.
var ErrUnknownPolicy = errors.New("eviction: unknown policy")

// PolicyTypes lists every supported policy.
func PolicyTypes() []PolicyType {
	return []PolicyType{BASIC, FIFO, LIFO, MRU, LRU, LFU}
}

// Valid reports whether t names a supported policy.
func (t PolicyType) Valid() bool {
	switch t {
	case BASIC, FIFO, LIFO, MRU, LRU, LFU:
		return true
	}
	return false
}

// Bounded reports whether the policy ever evicts.
func (t PolicyType) Bounded() bool {
	return t != BASIC
}

func (t PolicyType) String() string {
	return string(t)
}

// ParsePolicyType accepts a policy name in any case, e.g. "lfu" or "Mru".
func ParsePolicyType(s string) (PolicyType, error) {
	t := PolicyType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	return t, nil
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case BASIC:
		return newBasic()
	case FIFO:
		return newFIFO()
	case LIFO:
		return newLIFO()
	case MRU:
		return newMRU()
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	default:
		panic("unknown eviction policy")
	}
}
