package feed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"collection-sync/feature/feed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *atomic.Int32) func(context.Context) (*models.Snapshot, error) {
	return func(context.Context) (*models.Snapshot, error) {
		calls.Add(1)
		return &models.Snapshot{Items: []models.Entry{{ID: "a", Title: "A"}}}, nil
	}
}

func TestSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("ReusesFreshEntry", func(t *testing.T) {
		var calls atomic.Int32
		c := newSnapshotCache(time.Minute)

		first, err := c.Get(ctx, "feeds/news.json", countingLoader(&calls))
		require.NoError(t, err)
		second, err := c.Get(ctx, "feeds/news.json", countingLoader(&calls))
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Expires", func(t *testing.T) {
		var calls atomic.Int32
		now := time.Now()
		c := newSnapshotCache(time.Minute)
		c.now = func() time.Time { return now }

		_, _ = c.Get(ctx, "k", countingLoader(&calls))
		now = now.Add(2 * time.Minute)
		_, _ = c.Get(ctx, "k", countingLoader(&calls))

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Invalidate", func(t *testing.T) {
		var calls atomic.Int32
		c := newSnapshotCache(time.Minute)

		_, _ = c.Get(ctx, "k", countingLoader(&calls))
		c.Invalidate("k")
		_, _ = c.Get(ctx, "k", countingLoader(&calls))

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Disabled", func(t *testing.T) {
		var calls atomic.Int32
		c := newSnapshotCache(0)

		_, _ = c.Get(ctx, "k", countingLoader(&calls))
		_, _ = c.Get(ctx, "k", countingLoader(&calls))

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := newSnapshotCache(time.Minute)
		boom := errors.New("boom")

		_, err := c.Get(ctx, "k", func(context.Context) (*models.Snapshot, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)

		var calls atomic.Int32
		_, err = c.Get(ctx, "k", countingLoader(&calls))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("ConcurrentMissesLoadOnce", func(t *testing.T) {
		var calls atomic.Int32
		c := newSnapshotCache(time.Minute)
		release := make(chan struct{})
		load := func(context.Context) (*models.Snapshot, error) {
			calls.Add(1)
			<-release
			return &models.Snapshot{}, nil
		}

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.Get(ctx, "k", load)
				assert.NoError(t, err)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}
