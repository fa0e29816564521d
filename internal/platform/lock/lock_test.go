package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_ExclusivePerKey(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker()

	first, err := l.TryObtain(ctx, "recurring:schedule:a", time.Minute)
	require.NoError(t, err)

	_, err = l.TryObtain(ctx, "recurring:schedule:a", time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	other, err := l.TryObtain(ctx, "recurring:schedule:b", time.Minute)
	require.NoError(t, err, "different keys do not contend")
	require.NoError(t, other.Release(ctx))

	require.NoError(t, first.Release(ctx))
	require.NoError(t, first.Release(ctx), "double release is harmless")

	again, err := l.TryObtain(ctx, "recurring:schedule:a", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestLocalLocker_ConcurrentContenders(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker()

	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	held := make(chan Lock, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			lk, err := l.TryObtain(ctx, "k", time.Minute)
			if err == nil {
				wins.Add(1)
				held <- lk
			}
		}()
	}
	close(start)
	wg.Wait()
	close(held)

	assert.Equal(t, int32(1), wins.Load())
	for lk := range held {
		require.NoError(t, lk.Release(ctx))
	}
}
