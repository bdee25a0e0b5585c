package feed

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"collection-sync/core/changes"
	"collection-sync/core/reconcile"
	"collection-sync/core/storage"
	"collection-sync/feature/feed/models"

	"github.com/minio/minio-go/v7"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service mirrors feed snapshots from object storage into the database.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	store  *Store
	cfg    Config
	cache  *snapshotCache

	// mu serializes syncs, the store has a single writer
	mu sync.Mutex
}

// NewService creates a new feed service. db may be nil, in which case only ListFeeds works.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Service {
	var store *Store
	if db != nil {
		store = NewStore(db)
	}
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		store:  store,
		cfg:    cfg,
		cache:  newSnapshotCache(cfg.CacheTTL()),
	}
}

// ErrNoDatabase is returned by operations that need the database when none is configured.
var ErrNoDatabase = errors.New("feed store requires a database connection")

// Migrate prepares the feed_items table.
func (s *Service) Migrate(ctx context.Context) error {
	if s.store == nil {
		return ErrNoDatabase
	}
	return s.store.Migrate(ctx)
}

// ListFeeds returns the names of the feeds published in storage, sorted.
func (s *Service) ListFeeds(ctx context.Context) ([]string, error) {
	prefix := strings.TrimSuffix(s.cfg.Prefix, "/") + "/"
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: false}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list feeds: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, s.cfg.Extension) {
			continue
		}
		name := strings.TrimSuffix(path.Base(obj.Key), s.cfg.Extension)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}

	slices.Sort(names)
	return slices.Compact(names), nil
}

// Snapshot returns the published snapshot of a feed, cached for the configured TTL.
func (s *Service) Snapshot(ctx context.Context, name string) (*models.Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	object := s.cfg.ObjectName(name)
	return s.cache.Get(ctx, object, func(ctx context.Context) (*models.Snapshot, error) {
		var snap models.Snapshot
		if err := storage.ReadJSON(ctx, s.client, s.bucket, object, &snap); err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
			}
			return nil, err
		}
		return &snap, nil
	})
}

// Publish uploads a snapshot for a feed, replacing the current one.
func (s *Service) Publish(ctx context.Context, name string, snap *models.Snapshot) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	object := s.cfg.ObjectName(name)
	if err := storage.WriteJSON(ctx, s.client, s.bucket, object, snap); err != nil {
		return err
	}
	s.cache.Invalidate(object)

	s.logger.Info("Feed snapshot published", zap.String("feed", name), zap.Int("entries", len(snap.Items)))
	return nil
}

// mirrored returns the entries that are mirrored: complete ones, up to MaxItems distinct
// identities. Repeated identities are passed through and counted in duplicates; skipped counts
// the incomplete and over-limit entries that were dropped.
func (s *Service) mirrored(entries []models.Entry) (kept []models.Entry, skipped, duplicates int) {
	kept = make([]models.Entry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if !e.Complete() {
			skipped++
			continue
		}
		if _, dup := seen[e.Key()]; dup {
			duplicates++
		} else {
			if s.cfg.MaxItems > 0 && len(seen) >= s.cfg.MaxItems {
				skipped++
				continue
			}
			seen[e.Key()] = struct{}{}
		}
		kept = append(kept, e)
	}
	return kept, skipped, duplicates
}

// Diff compares the stored items of a feed with its snapshot. The snapshot must not repeat
// an identity.
func (s *Service) Diff(ctx context.Context, name string) (*models.DiffReport, error) {
	if s.store == nil {
		return nil, ErrNoDatabase
	}

	snap, err := s.Snapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	stored, err := s.store.List(ctx, name)
	if err != nil {
		return nil, err
	}

	entries, _, _ := s.mirrored(snap.Items)

	script, err := changes.Build(
		stored, itemKey,
		entries, models.Entry.Key,
		(*models.Item).Differs,
	)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", name, err)
	}

	report := &models.DiffReport{
		Feed:    name,
		Stored:  len(stored),
		Entries: len(entries),
		Script:  script,
		Summary: script.Summary(),
		Steps:   changes.Steps(script),
		Patches: bodyPatches(script, stored, entries),
	}

	s.logger.Debug("Feed diff computed",
		zap.String("feed", name),
		zap.Int("removals", report.Summary.Removals),
		zap.Int("insertions", report.Summary.Insertions),
		zap.Int("moves", report.Summary.Moves),
		zap.Int("updates", report.Summary.Updates),
	)
	return report, nil
}

// Sync mirrors the snapshot of a feed into the store. Existing rows keep their ids.
// With dryRun the outcome is computed but nothing is written.
func (s *Service) Sync(ctx context.Context, name string, dryRun bool) (*models.SyncReport, error) {
	if s.store == nil {
		return nil, ErrNoDatabase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Snapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	items, err := s.store.List(ctx, name)
	if err != nil {
		return nil, err
	}

	// Reconcile keeps the first of repeated identities and drops the rest
	entries, skipped, duplicates := s.mirrored(snap.Items)
	report := &models.SyncReport{Feed: name, DryRun: dryRun, Skipped: skipped, Duplicates: duplicates}

	var removed []*models.Item
	report.Changed = reconcile.Reconcile(&items, entries, reconcile.Mapping[*models.Item, models.Entry, string]{
		ElementID: itemKey,
		SourceID:  models.Entry.Key,
		Transform: func(e models.Entry) (*models.Item, bool) {
			if !e.Complete() {
				return nil, false
			}
			report.Inserted++
			return e.ToItem(name), true
		},
		Update: func(item *models.Item, e models.Entry) bool {
			if item.Apply(e) {
				report.Updated++
				return true
			}
			return false
		},
		Remove: func(item *models.Item) {
			removed = append(removed, item)
		},
	})
	report.Removed = len(removed)
	report.Total = len(items)

	l := s.logger.With(zap.String("feed", name), zap.Bool("dry_run", dryRun))

	if !report.Changed {
		l.Info("Feed already in sync", zap.Int("total", report.Total))
		return report, nil
	}

	if !dryRun {
		if err := s.store.Save(ctx, name, items, removed); err != nil {
			return nil, err
		}
		// The next sync must see a fresh snapshot
		s.cache.Invalidate(s.cfg.ObjectName(name))
	}

	l.Info("Feed synchronized",
		zap.Int("inserted", report.Inserted),
		zap.Int("updated", report.Updated),
		zap.Int("removed", report.Removed),
		zap.Int("skipped", report.Skipped),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("total", report.Total),
	)
	return report, nil
}

func itemKey(item *models.Item) string {
	return item.ItemKey
}

// bodyPatches returns a textual patch for every updated entry whose body changed.
func bodyPatches(script *changes.EditScript, stored []*models.Item, entries []models.Entry) []models.BodyPatch {
	patches := make([]models.BodyPatch, 0, len(script.Updates))
	dmp := diffmatchpatch.New()

	for _, u := range script.Updates {
		before, after := stored[u.OldIndex].Body, entries[u.NewIndex].Body
		if before == after {
			continue
		}
		diffs := dmp.DiffMain(before, after, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		patches = append(patches, models.BodyPatch{
			ID:    stored[u.OldIndex].ItemKey,
			Patch: dmp.PatchToText(dmp.PatchMake(before, diffs)),
		})
	}
	return patches
}
