package lockmgr_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/lockmgr"
)

func TestAcquireRelease(t *testing.T) {
	m := lockmgr.New()
	tok, err := m.Acquire(context.Background(), "db")
	require.NoError(t, err)
	assert.Equal(t, "db", tok.Name())
	assert.NotEmpty(t, tok.ID())

	st := m.Stats()
	assert.Equal(t, 1, st.Held)
	assert.Equal(t, uint64(1), st.Grants)

	assert.True(t, m.Release(tok))
	st = m.Stats()
	assert.Equal(t, 0, st.Held)
	assert.Equal(t, uint64(1), st.Releases)
}

func TestRelease_UnknownToken(t *testing.T) {
	m := lockmgr.New()
	// Zero token, never granted.
	assert.False(t, m.Release(lockmgr.Token{}))

	tok, err := m.Acquire(context.Background(), "x")
	require.NoError(t, err)
	require.True(t, m.Release(tok))
	// Stale token: already released.
	assert.False(t, m.Release(tok))
}

func TestAcquire_EmptyName(t *testing.T) {
	m := lockmgr.New()
	_, err := m.Acquire(context.Background(), "")
	assert.ErrorIs(t, err, lockmgr.ErrEmptyName)

	_, ok := m.TryAcquire("")
	assert.False(t, ok)
}

func TestTryAcquire(t *testing.T) {
	m := lockmgr.New()
	tok, ok := m.TryAcquire("res")
	require.True(t, ok)

	_, ok = m.TryAcquire("res")
	assert.False(t, ok)

	// Independent names do not contend.
	other, ok := m.TryAcquire("other")
	require.True(t, ok)
	require.True(t, m.Release(other))

	require.True(t, m.Release(tok))
	_, ok = m.TryAcquire("res")
	assert.True(t, ok)
}

// TestFIFOOrder queues three waiters and verifies grants follow arrival
// order exactly.
func TestFIFOOrder(t *testing.T) {
	m := lockmgr.New()
	first, err := m.Acquire(context.Background(), "q")
	require.NoError(t, err)

	const waiters = 3
	var mu sync.Mutex
	var order []int
	ready := make(chan struct{}, waiters)
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ready <- struct{}{}
			tok, err := m.Acquire(context.Background(), "q")
			require.NoError(t, err)
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			require.True(t, m.Release(tok))
		}(i)
		// Serialize arrival so queue order is deterministic.
		<-ready
		time.Sleep(10 * time.Millisecond)
	}

	require.True(t, m.Release(first))
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestAcquire_ContextCancel(t *testing.T) {
	m := lockmgr.New()
	tok, err := m.Acquire(context.Background(), "busy")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Acquire(ctx, "busy")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The cancelled waiter left the queue; release hands to nobody and the
	// lock becomes free.
	require.True(t, m.Release(tok))
	st := m.Stats()
	assert.Equal(t, 0, st.Held)
	assert.Equal(t, 0, st.Waiting)

	_, ok := m.TryAcquire("busy")
	assert.True(t, ok)
}

func TestStats_Waiting(t *testing.T) {
	m := lockmgr.New()
	tok, err := m.Acquire(context.Background(), "w")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		tok2, err := m.Acquire(context.Background(), "w")
		if err == nil {
			m.Release(tok2)
		}
	}()

	// Wait for the goroutine to enqueue.
	require.Eventually(t, func() bool {
		return m.Stats().Waiting == 1
	}, time.Second, 5*time.Millisecond)

	require.True(t, m.Release(tok))
	<-done
	assert.Equal(t, 0, m.Stats().Waiting)
}
