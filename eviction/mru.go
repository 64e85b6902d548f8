// This file implements MRU eviction.

package eviction

type mru struct {
	// order keeps keys by last use (write or read). The back is the most recently used.
	order *keyList
}

func newMRU() *mru {
	return &mru{order: newKeyList()}
}

// OnGet marks the key as the most recently used.
func (m *mru) OnGet(k string) {
	if m.order.Contains(k) {
		m.order.MoveToBack(k)
	}
}

// OnPut marks the key as the most recently used, new or not.
func (m *mru) OnPut(k string) {
	m.order.MoveToBack(k)
}

// Evict returns and forgets the most recently used key.
// Called before the new key is written, so the incoming key always survives.
func (m *mru) Evict() string {
	return m.order.PopBack()
}

func (m *mru) Remove(k string) {
	m.order.Remove(k)
}

// Keys returns keys from least to most recently used; the last one is the next victim.
func (m *mru) Keys() []string { return m.order.Keys() }

func (m *mru) Len() int { return m.order.Len() }

func (m *mru) Type() PolicyType { return MRU }
