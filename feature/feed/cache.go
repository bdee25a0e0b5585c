package feed

import (
	"context"
	"sync"
	"time"

	"collection-sync/feature/feed/models"

	"golang.org/x/sync/singleflight"
)

// cachedSnapshot is a downloaded snapshot with its download time.
type cachedSnapshot struct {
	snapshot *models.Snapshot
	built    time.Time
}

// snapshotCache keeps downloaded snapshots keyed by object name.
// Concurrent misses for the same object share one download.
type snapshotCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cachedSnapshot
	sf      singleflight.Group
	now     func() time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		entries: make(map[string]cachedSnapshot),
		now:     time.Now,
	}
}

func (c *snapshotCache) fresh(key string) (*models.Snapshot, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.snapshot, true
}

// Get returns the cached snapshot for key, or loads and stores it.
func (c *snapshotCache) Get(ctx context.Context, key string, load func(context.Context) (*models.Snapshot, error)) (*models.Snapshot, error) {
	if snap, ok := c.fresh(key); ok {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Another caller may have filled it while we waited
		if snap, ok := c.fresh(key); ok {
			return snap, nil
		}

		snap, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cachedSnapshot{snapshot: snap, built: c.now()}
			c.mu.Unlock()
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Snapshot), nil
}

// Invalidate drops the snapshot for key.
func (c *snapshotCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
