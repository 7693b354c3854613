package ringbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/ringbuf"
)

func TestNew_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := ringbuf.New[int](c)
		assert.ErrorIs(t, err, ringbuf.ErrBadCapacity)
	}
}

func TestFIFOOrder(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)

	assert.True(t, r.Push(1))
	assert.True(t, r.Push(2))
	assert.True(t, r.Push(3))
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())

	// Full: default mode rejects further pushes.
	assert.False(t, r.Push(4))
	assert.Equal(t, []int{1, 2, 3}, r.Snapshot())

	v, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Freed a slot; wraparound push succeeds.
	assert.True(t, r.Push(4))
	assert.Equal(t, []int{2, 3, 4}, r.Snapshot())

	for _, want := range []int{2, 3, 4} {
		v, ok = r.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = r.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestPeek(t *testing.T) {
	r, err := ringbuf.New[string](2)
	require.NoError(t, err)

	_, ok := r.Peek()
	assert.False(t, ok)

	r.Push("a")
	r.Push("b")
	v, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	// Peek does not consume.
	assert.Equal(t, 2, r.Len())
}

func TestOverwrite(t *testing.T) {
	r, err := ringbuf.New[int](3, ringbuf.WithOverwrite())
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		assert.True(t, r.Push(i))
	}
	// Oldest two (1, 2) were evicted.
	assert.Equal(t, []int{3, 4, 5}, r.Snapshot())
	assert.Equal(t, 3, r.Len())

	v, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
