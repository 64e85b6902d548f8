package eviction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(p Policy, keys ...string) {
	for _, k := range keys {
		p.OnPut(k)
	}
}

func TestFIFOIgnoresReadsAndOverwrites(t *testing.T) {
	p := NewEvictionPolicy(FIFO)
	put(p, "A", "B", "C")
	p.OnGet("A")
	p.OnPut("A") // overwrite keeps first-insertion position

	assert.Equal(t, []string{"A", "B", "C"}, p.Keys())
	assert.Equal(t, "A", p.Evict())
	assert.Equal(t, "B", p.Evict())
	assert.Equal(t, []string{"C"}, p.Keys())
}

func TestLIFOEvictsLastWrite(t *testing.T) {
	p := NewEvictionPolicy(LIFO)
	put(p, "A", "B", "C")
	p.OnGet("A")
	assert.Equal(t, "C", p.Evict())

	// re-writing A makes it the most recent write
	p.OnPut("A")
	assert.Equal(t, []string{"B", "A"}, p.Keys())
	assert.Equal(t, "A", p.Evict())
}

func TestMRUEvictsLastUse(t *testing.T) {
	p := NewEvictionPolicy(MRU)
	put(p, "A", "B", "C")
	p.OnGet("A")
	assert.Equal(t, []string{"B", "C", "A"}, p.Keys())
	assert.Equal(t, "A", p.Evict())

	p.OnPut("B")
	assert.Equal(t, "B", p.Evict())
	assert.Equal(t, []string{"C"}, p.Keys())

	// reads of unknown keys are ignored
	p.OnGet("nope")
	assert.Equal(t, 1, p.Len())
}

func TestLRUEvictsOldestUse(t *testing.T) {
	p := NewEvictionPolicy(LRU)
	put(p, "A", "B", "C")
	p.OnGet("A")
	assert.Equal(t, "B", p.Evict())
	p.OnPut("C")
	assert.Equal(t, "A", p.Evict())
}

func TestLFUSingleMinimum(t *testing.T) {
	p := NewEvictionPolicy(LFU)
	put(p, "A", "B")
	p.OnGet("A")

	assert.Equal(t, "B", p.Evict())
	assert.Equal(t, []string{"A"}, p.Keys())
}

func TestLFUTieBrokenByRecency(t *testing.T) {
	p := NewEvictionPolicy(LFU)
	put(p, "A", "B", "C")
	assert.Equal(t, "A", p.Evict())
	assert.Equal(t, "B", p.Evict())
}

func TestLFUTieAfterTouches(t *testing.T) {
	l := newLFU()
	put(l, "A", "B", "C")

	// A and B both reach 2; B was touched first, so B is older in the tie.
	l.OnGet("B")
	l.OnPut("A")
	l.OnGet("C")
	l.OnGet("C")

	f, ok := l.Frequency("C")
	require.True(t, ok)
	assert.Equal(t, 3, f)
	assert.Equal(t, []string{"B", "A", "C"}, l.Keys())

	assert.Equal(t, "B", l.Evict())
	assert.Equal(t, "A", l.Evict())
	assert.Equal(t, "C", l.Evict())
	assert.Equal(t, "", l.Evict())
}

func TestLFUNewKeyResetsMinimum(t *testing.T) {
	l := newLFU()
	put(l, "A", "B")
	l.OnGet("A")
	l.OnGet("B")
	l.OnGet("B")

	// min bucket is now 2 (A); a new key drops it back to 1.
	l.OnPut("C")
	assert.Equal(t, "C", l.Evict())
	assert.Equal(t, "A", l.Evict())
}

func TestLFURemoveKeepsStateConsistent(t *testing.T) {
	l := newLFU()
	put(l, "A", "B", "C")
	l.OnGet("B")
	l.OnGet("C")

	l.Remove("A") // empties the minimum bucket
	l.Remove("A")
	_, ok := l.Frequency("A")
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())

	assert.Equal(t, "B", l.Evict())
	assert.Equal(t, []string{"C"}, l.Keys())
}

func TestBasicNeverPicksAVictim(t *testing.T) {
	p := NewEvictionPolicy(BASIC)
	put(p, "A", "B")
	assert.Equal(t, "", p.Evict())
	assert.Equal(t, 2, p.Len())
	p.Remove("A")
	assert.Equal(t, []string{"B"}, p.Keys())
}

func TestRemoveForgetsKeys(t *testing.T) {
	for _, pt := range PolicyTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			p := NewEvictionPolicy(pt)
			assert.Equal(t, pt, p.Type())

			put(p, "A", "B")
			p.Remove("A")
			p.Remove("missing")
			assert.Equal(t, []string{"B"}, p.Keys())
			assert.Equal(t, 1, p.Len())
		})
	}
}

func TestEvictOnEmptyPolicy(t *testing.T) {
	for _, pt := range PolicyTypes() {
		assert.Equal(t, "", NewEvictionPolicy(pt).Evict(), pt.String())
	}
}

func TestParsePolicyType(t *testing.T) {
	pt, err := ParsePolicyType(" lfu ")
	require.NoError(t, err)
	assert.Equal(t, LFU, pt)

	pt, err = ParsePolicyType("Mru")
	require.NoError(t, err)
	assert.Equal(t, MRU, pt)

	_, err = ParsePolicyType("random")
	assert.ErrorIs(t, err, ErrUnknownPolicy)

	assert.False(t, PolicyType("ARC").Valid())
	assert.False(t, BASIC.Bounded())
	assert.True(t, FIFO.Bounded())
	assert.Panics(t, func() { NewEvictionPolicy("ARC") })
}
