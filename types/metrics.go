package types

import "sync/atomic"

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when Get finds the key.
	Hit()

	// Miss is called when Get does NOT find the key.
	Miss()

	// Eviction is called when a key is removed because its shard is full and needs space.
	Eviction()

	// Reject is called when Put ignores a call because the key or the value is empty.
	Reject()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.
It is the default, so the cache never has to check for a nil Metrics.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Reject()   {}

/*
Stats is a Metrics implementation that simply counts events.

Counters are atomic because shards report independently of each other,
so two goroutines may record events at the same time.
*/
type Stats struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	rejects   atomic.Uint64
}

func (s *Stats) Hit()      { s.hits.Add(1) }
func (s *Stats) Miss()     { s.misses.Add(1) }
func (s *Stats) Eviction() { s.evictions.Add(1) }
func (s *Stats) Reject()   { s.rejects.Add(1) }

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Rejects   uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s StatsSnapshot) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Snapshot reads every counter once.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Rejects:   s.rejects.Load(),
	}
}
