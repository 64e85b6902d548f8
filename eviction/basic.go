package eviction

// basic tracks keys but never picks a victim. A cache using it is unbounded.
type basic struct {
	keys *keyList
}

func newBasic() *basic {
	return &basic{keys: newKeyList()}
}

func (b *basic) OnGet(string) {}

func (b *basic) OnPut(k string) { b.keys.PushBack(k) }

func (b *basic) Remove(k string) { b.keys.Remove(k) }

// Evict always returns "": there is nothing to choose between.
func (b *basic) Evict() string { return "" }

func (b *basic) Keys() []string { return b.keys.Keys() }

func (b *basic) Len() int { return b.keys.Len() }

func (b *basic) Type() PolicyType { return BASIC }
