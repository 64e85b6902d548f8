// This file implements LIFO eviction.

package eviction

type lifo struct {
	// order keeps keys in the order they were LAST written.
	// The back is the most recent write.
	order *keyList
}

func newLIFO() *lifo {
	return &lifo{order: newKeyList()}
}

// OnGet is a no-op: LIFO only cares about writes.
func (l *lifo) OnGet(string) {}

/*
OnPut moves the key to the back, whether it is new or an overwrite.

The cache asks for a victim BEFORE it writes a new key, so Evict sees the
previous most recent write at the back. The key being written is never
the one that gets thrown out.
*/
func (l *lifo) OnPut(k string) {
	l.order.MoveToBack(k)
}

// Evict returns and forgets the most recently written key.
func (l *lifo) Evict() string {
	return l.order.PopBack()
}

func (l *lifo) Remove(k string) {
	l.order.Remove(k)
}

// Keys returns keys from oldest to newest write; the last one is the next victim.
func (l *lifo) Keys() []string { return l.order.Keys() }

func (l *lifo) Len() int { return l.order.Len() }

func (l *lifo) Type() PolicyType { return LIFO }
