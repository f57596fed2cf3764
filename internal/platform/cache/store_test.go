package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	_, ok := store.Get(ctx, "missing")
	require.False(t, ok)

	store.Set(ctx, "k", 42)
	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, 42, value)

	store.Delete(ctx, "k")
	_, ok = store.Get(ctx, "k")
	require.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k", "v")
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(ctx, "k")
	require.False(t, ok)
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	store.Set(ctx, "k", "v")
	time.Sleep(15 * time.Millisecond)

	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, "v", value)
}

func TestGetOrLoadCachesAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(5 * time.Millisecond)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "k", loader)
			require.NoError(t, err)
			require.Equal(t, "loaded", value)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), loads.Load())

	_, err := store.GetOrLoad(ctx, "k", loader)
	require.NoError(t, err)
	require.Equal(t, int32(1), loads.Load())
}

func TestGetOrLoadErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)
	boom := errors.New("boom")

	calls := 0
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	value, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	require.Equal(t, "recovered", value)
	require.Equal(t, 2, calls)
}
