package skiplist_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/skiplist"
)

func TestSetGetDelete(t *testing.T) {
	l := skiplist.New[string, int]()
	assert.True(t, l.Set("b", 2))
	assert.True(t, l.Set("a", 1))
	assert.True(t, l.Set("c", 3))
	// Replacing an existing key reports false.
	assert.False(t, l.Set("b", 20))
	assert.Equal(t, 3, l.Len())

	v, ok := l.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = l.Get("z")
	assert.False(t, ok)

	assert.True(t, l.Delete("b"))
	assert.False(t, l.Delete("b"))
	_, ok = l.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestMinMax(t *testing.T) {
	l := skiplist.New[int, string]()
	_, _, ok := l.Min()
	assert.False(t, ok)
	_, _, ok = l.Max()
	assert.False(t, ok)

	for _, k := range []int{5, 1, 9, 3} {
		l.Set(k, "v")
	}
	k, _, ok := l.Min()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	k, _, ok = l.Max()
	require.True(t, ok)
	assert.Equal(t, 9, k)
}

func TestRange(t *testing.T) {
	l := skiplist.New[int, int]()
	for _, k := range []int{10, 2, 8, 4, 6} {
		l.Set(k, k*10)
	}

	var keys []int
	l.Range(3, 9, func(k, v int) bool {
		assert.Equal(t, k*10, v)
		keys = append(keys, k)

		return true
	})
	assert.Equal(t, []int{4, 6, 8}, keys)

	// Early stop.
	keys = keys[:0]
	l.Range(0, 100, func(k, _ int) bool {
		keys = append(keys, k)

		return len(keys) < 2
	})
	assert.Equal(t, []int{2, 4}, keys)

	// Empty range.
	l.Range(100, 200, func(int, int) bool {
		t.Fatal("unexpected visit")

		return false
	})
}

// TestOrderedIteration_Random inserts shuffled keys and verifies ascending
// full-range iteration plus Get consistency after random deletions.
func TestOrderedIteration_Random(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	l := skiplist.New[int, int]()
	ref := make(map[int]int)
	for i := 0; i < 1000; i++ {
		k := r.Intn(300)
		v := r.Int()
		l.Set(k, v)
		ref[k] = v
	}
	for k := range ref {
		if r.Intn(3) == 0 {
			require.True(t, l.Delete(k))
			delete(ref, k)
		}
	}
	require.Equal(t, len(ref), l.Len())

	wantKeys := make([]int, 0, len(ref))
	for k := range ref {
		wantKeys = append(wantKeys, k)
	}
	sort.Ints(wantKeys)

	gotKeys := make([]int, 0, len(ref))
	l.Range(-1, 301, func(k, v int) bool {
		require.Equal(t, ref[k], v)
		gotKeys = append(gotKeys, k)

		return true
	})
	assert.Equal(t, wantKeys, gotKeys)
}
