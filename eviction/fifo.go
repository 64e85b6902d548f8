// This file implements FIFO eviction.

package eviction

type fifo struct {
	// order keeps keys in the order they were FIRST inserted.
	// The front is the oldest key.
	order *keyList
}

func newFIFO() *fifo {
	return &fifo{order: newKeyList()}
}

// OnGet is a no-op: FIFO ignores reads completely.
func (f *fifo) OnGet(string) {}

// OnPut appends new keys at the back. Overwriting an existing key does NOT
// move it: FIFO only cares about the first insertion.
func (f *fifo) OnPut(k string) {
	f.order.PushBack(k)
}

// Evict returns and forgets the oldest inserted key.
func (f *fifo) Evict() string {
	return f.order.PopFront()
}

func (f *fifo) Remove(k string) {
	f.order.Remove(k)
}

// Keys returns keys from oldest to newest insertion; the first one is the next victim.
func (f *fifo) Keys() []string { return f.order.Keys() }

func (f *fifo) Len() int { return f.order.Len() }

func (f *fifo) Type() PolicyType { return FIFO }
