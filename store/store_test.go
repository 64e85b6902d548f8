package store_test

import (
	"testing"

	"github.com/krisalay/policy-cache/store"
	"github.com/krisalay/policy-cache/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetDelete(t *testing.T) {
	s := store.New()
	assert.Equal(t, 0, s.Size())

	s.Set("a", &types.CacheEntry{Key: "a", Value: 1})
	s.Set("b", &types.CacheEntry{Key: "b", Value: 2})

	ent, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, ent.Value)
	assert.Equal(t, 2, s.Size())
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())

	s.Set("a", &types.CacheEntry{Key: "a", Value: 10})
	ent, _ = s.Get("a")
	assert.Equal(t, 10, ent.Value)
	assert.Equal(t, 2, s.Size())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, s.Keys())

	// idempotent
	s.Delete("a")
	assert.Equal(t, 1, s.Size())
}
