// This file implements LFU eviction.

package eviction

import (
	"maps"
	"slices"
)

/*
lfu evicts the key with the lowest access count. When several keys share
that count, the one touched longest ago goes first.

A "touch" is a write of an existing key or a read hit. Each touch adds one
to the count; a new key starts at 1.

Keys are grouped into buckets by count, and every bucket is a keyList in
touch order. A key lands at the back of its bucket exactly when it is
touched (that is the only moment its count changes), so the front of a
bucket is always the least recently touched key with that count. The
victim is therefore the front of the lowest bucket, found in O(1).
*/
type lfu struct {
	// freq maps each tracked key to how many times it was accessed.
	freq map[string]int

	// buckets groups keys by frequency; each bucket is ordered oldest touch first.
	buckets map[int]*keyList

	// minFreq is the smallest frequency with a non-empty bucket.
	// 0 means "unknown", and is resolved on the next Evict.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		freq:    make(map[string]int),
		buckets: make(map[int]*keyList),
	}
}

// OnGet counts a read hit.
func (l *lfu) OnGet(k string) {
	if _, ok := l.freq[k]; ok {
		l.touch(k)
	}
}

// OnPut starts a new key at frequency 1, or counts an overwrite as a touch.
func (l *lfu) OnPut(k string) {
	if _, ok := l.freq[k]; ok {
		l.touch(k)
		return
	}

	l.freq[k] = 1
	l.bucket(1).PushBack(k)

	// Nothing can be below 1
	l.minFreq = 1
}

// Evict removes the least frequently used key, breaking ties by least recent touch.
func (l *lfu) Evict() string {
	if len(l.freq) == 0 {
		return ""
	}

	b, ok := l.buckets[l.minFreq]
	if !ok {
		l.resolveMin()
		b = l.buckets[l.minFreq]
	}

	k := b.PopFront()
	delete(l.freq, k)
	l.dropIfEmpty(l.minFreq)
	return k
}

// Remove is called when a key is explicitly removed (not evicted).
func (l *lfu) Remove(k string) {
	f, ok := l.freq[k]
	if !ok {
		return
	}
	l.buckets[f].Remove(k)
	delete(l.freq, k)
	l.dropIfEmpty(f)
}

// Keys returns keys in eviction order: lowest frequency first, then least recently touched.
func (l *lfu) Keys() []string {
	keys := make([]string, 0, len(l.freq))
	for _, f := range slices.Sorted(maps.Keys(l.buckets)) {
		keys = append(keys, l.buckets[f].Keys()...)
	}
	return keys
}

func (l *lfu) Len() int { return len(l.freq) }

func (l *lfu) Type() PolicyType { return LFU }

var _ FrequencyCounter = (*lfu)(nil)

// Frequency returns the access count of k.
func (l *lfu) Frequency(k string) (int, bool) {
	f, ok := l.freq[k]
	return f, ok
}

// touch moves k from its bucket to the back of the next one.
func (l *lfu) touch(k string) {
	old := l.freq[k]
	l.buckets[old].Remove(k)
	l.dropIfEmpty(old)

	l.freq[k] = old + 1
	l.bucket(old + 1).PushBack(k)
}

// bucket returns the bucket for f, creating it on first use.
func (l *lfu) bucket(f int) *keyList {
	b, ok := l.buckets[f]
	if !ok {
		b = newKeyList()
		l.buckets[f] = b
	}
	return b
}

// dropIfEmpty deletes an empty bucket and keeps minFreq honest.
func (l *lfu) dropIfEmpty(f int) {
	b, ok := l.buckets[f]
	if !ok || b.Len() > 0 {
		return
	}
	delete(l.buckets, f)

	if l.minFreq == f {
		// A touched key moves to f+1, but a removed one leaves no hint.
		// Resolve lazily instead of scanning on every removal.
		l.minFreq = 0
	}
}

// resolveMin recomputes minFreq from the live buckets.
func (l *lfu) resolveMin() {
	l.minFreq = 0
	for f := range l.buckets {
		if l.minFreq == 0 || f < l.minFreq {
			l.minFreq = f
		}
	}
}
