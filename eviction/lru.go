// This file implements LRU eviction.

package eviction

// lru keeps the same order as MRU but evicts from the other end.
type lru struct {
	// order keeps keys by last use. The front is the LEAST recently used.
	order *keyList
}

func newLRU() *lru {
	return &lru{order: newKeyList()}
}

// OnGet is called whenever a key is read from the cache. If a key is accessed, it becomes "recently used".
func (l *lru) OnGet(k string) {
	if l.order.Contains(k) {
		l.order.MoveToBack(k)
	}
}

// OnPut marks new and overwritten keys as recently used.
func (l *lru) OnPut(k string) {
	l.order.MoveToBack(k)
}

// Evict removes the LEAST recently used key. That key is always at the front of the list.
func (l *lru) Evict() string {
	return l.order.PopFront()
}

func (l *lru) Remove(k string) {
	l.order.Remove(k)
}

// Keys returns keys from least to most recently used; the first one is the next victim.
func (l *lru) Keys() []string { return l.order.Keys() }

func (l *lru) Len() int { return l.order.Len() }

func (l *lru) Type() PolicyType { return LRU }
