package bimap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/bimap"
)

func TestSetAndGet(t *testing.T) {
	b := bimap.New[string, int]()
	b.Set("one", 1)
	b.Set("two", 2)

	v, ok := b.GetByKey("one")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	k, ok := b.GetByValue(2)
	require.True(t, ok)
	assert.Equal(t, "two", k)

	_, ok = b.GetByKey("three")
	assert.False(t, ok)
	_, ok = b.GetByValue(3)
	assert.False(t, ok)
	assert.Equal(t, 2, b.Len())
}

func TestSet_EvictsByKey(t *testing.T) {
	b := bimap.New[string, int]()
	b.Set("a", 1)
	b.Set("a", 2) // rebind the key

	v, ok := b.GetByKey("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// The stale inverse entry 1→"a" must be gone.
	_, ok = b.GetByValue(1)
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())
}

func TestSet_EvictsByValue(t *testing.T) {
	b := bimap.New[string, int]()
	b.Set("a", 1)
	b.Set("b", 1) // rebind the value

	k, ok := b.GetByValue(1)
	require.True(t, ok)
	assert.Equal(t, "b", k)

	// The stale forward entry "a"→1 must be gone.
	_, ok = b.GetByKey("a")
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())
}

func TestSet_EvictsBothSides(t *testing.T) {
	b := bimap.New[string, int]()
	b.Set("a", 1)
	b.Set("b", 2)
	// Binds an existing key to an existing value: both old bindings go.
	b.Set("a", 2)

	assert.Equal(t, 1, b.Len())
	v, _ := b.GetByKey("a")
	assert.Equal(t, 2, v)
	_, ok := b.GetByKey("b")
	assert.False(t, ok)
	_, ok = b.GetByValue(1)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	b := bimap.New[string, int]()
	b.Set("a", 1)
	b.Set("b", 2)

	assert.True(t, b.DeleteByKey("a"))
	assert.False(t, b.DeleteByKey("a"))
	_, ok := b.GetByValue(1)
	assert.False(t, ok)

	assert.True(t, b.DeleteByValue(2))
	assert.False(t, b.DeleteByValue(2))
	assert.Equal(t, 0, b.Len())
}

// TestInvariant_NoDuplicates runs a mixed workload and checks the
// one-to-one invariant by reconstructing both indexes.
func TestInvariant_NoDuplicates(t *testing.T) {
	b := bimap.New[int, int]()
	for i := 0; i < 100; i++ {
		b.Set(i%10, i%7)
	}
	seenK := make(map[int]bool)
	seenV := make(map[int]bool)
	for k := 0; k < 10; k++ {
		v, ok := b.GetByKey(k)
		if !ok {
			continue
		}
		require.False(t, seenV[v], "value %d bound twice", v)
		seenV[v] = true
		back, ok := b.GetByValue(v)
		require.True(t, ok)
		require.Equal(t, k, back)
		seenK[k] = true
	}
	assert.Equal(t, len(seenK), b.Len())
}
