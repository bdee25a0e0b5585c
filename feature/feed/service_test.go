package feed

import (
	"errors"
	"testing"

	"collection-sync/core/identity"
	"collection-sync/core/storage/mocks"
	"collection-sync/feature/feed/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storedKeys(t *testing.T, svc *Service, name string) []string {
	items, err := svc.store.List(t.Context(), name)
	require.NoError(t, err)
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.ItemKey
	}
	return keys
}

func storedIDs(t *testing.T, svc *Service, name string) map[string]uint {
	items, err := svc.store.List(t.Context(), name)
	require.NoError(t, err)
	ids := make(map[string]uint, len(items))
	for _, item := range items {
		ids[item.ItemKey] = item.ID
	}
	return ids
}

func TestListFeeds(t *testing.T) {
	t.Run("FiltersAndSorts", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, testBucket, zap.NewNop(), nil, testConfig())

		client.On("ListObjects", mock.Anything, testBucket, minio.ListObjectsOptions{Prefix: "feeds/"}).Return([]minio.ObjectInfo{
			{Key: "feeds/news.json"},
			{Key: "feeds/readme.txt"},
			{Key: "feeds/Bad Name.json"},
			{Key: "feeds/alpha.json"},
		})

		names, err := svc.ListFeeds(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "news"}, names)
	})

	t.Run("ListingError", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, testBucket, zap.NewNop(), nil, testConfig())

		client.On("ListObjects", mock.Anything, testBucket, mock.Anything).Return([]minio.ObjectInfo{
			{Err: errors.New("access denied")},
		})

		_, err := svc.ListFeeds(t.Context())
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestSnapshotErrors(t *testing.T) {
	svc, client := setupService(t, testConfig())

	_, err := svc.Snapshot(t.Context(), "../secrets")
	assert.ErrorIs(t, err, ErrInvalidName)

	unpublished(client, "missing")
	_, err = svc.Snapshot(t.Context(), "missing")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSync(t *testing.T) {
	svc, client := setupService(t, testConfig())
	ctx := t.Context()

	// Initial mirror: the untitled entry is skipped
	publish(client, "news", `{"items":[
		{"id": 1, "title": "A"},
		{"id": "b", "title": "B", "body": "first"},
		{"id": 3, "title": ""}
	]}`)
	report, err := svc.Sync(ctx, "news", false)
	require.NoError(t, err)
	assert.Equal(t, &models.SyncReport{Feed: "news", Changed: true, Inserted: 2, Skipped: 1, Total: 2}, report)
	assert.Equal(t, []string{"1", "b"}, storedKeys(t, svc, "news"))
	before := storedIDs(t, svc, "news")

	// Reorder, edit and insert: existing rows keep their ids
	publish(client, "news", `{"items":[
		{"id": "b", "title": "B", "body": "second", "pinned": 1},
		{"id": 4, "title": "D"},
		{"id": 1, "title": "A"}
	]}`)
	report, err = svc.Sync(ctx, "news", false)
	require.NoError(t, err)
	assert.Equal(t, &models.SyncReport{Feed: "news", Changed: true, Inserted: 1, Updated: 1, Total: 3}, report)
	assert.Equal(t, []string{"b", "4", "1"}, storedKeys(t, svc, "news"))
	after := storedIDs(t, svc, "news")
	assert.Equal(t, before["1"], after["1"])
	assert.Equal(t, before["b"], after["b"])

	items, err := svc.store.List(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, "second", items[0].Body)
	assert.True(t, items[0].Pinned)

	// Nothing to do
	publish(client, "news", `{"items":[
		{"id": "b", "title": "B", "body": "second", "pinned": true},
		{"id": 4, "title": "D"},
		{"id": 1, "title": "A"}
	]}`)
	report, err = svc.Sync(ctx, "news", false)
	require.NoError(t, err)
	assert.False(t, report.Changed)
	assert.Equal(t, 3, report.Total)

	// Dry run of an emptied feed reports but keeps the rows
	publish(client, "news", `{"items":[]}`)
	report, err = svc.Sync(ctx, "news", true)
	require.NoError(t, err)
	assert.True(t, report.Changed)
	assert.True(t, report.DryRun)
	assert.Equal(t, 3, report.Removed)
	assert.Equal(t, 0, report.Total)
	assert.Len(t, storedKeys(t, svc, "news"), 3)

	// Real removal
	publish(client, "news", `{"items":[{"id": 1, "title": "A"}]}`)
	report, err = svc.Sync(ctx, "news", false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Removed)
	assert.Equal(t, []string{"1"}, storedKeys(t, svc, "news"))
	assert.Equal(t, before["1"], storedIDs(t, svc, "news")["1"])

	client.AssertExpectations(t)
}

func TestSyncToleratesDuplicates(t *testing.T) {
	svc, client := setupService(t, testConfig())

	publish(client, "news", `{"items":[
		{"id": "a", "title": "first"},
		{"id": "b", "title": "B"},
		{"id": "a", "title": "second"}
	]}`)
	report, err := svc.Sync(t.Context(), "news", false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 2, report.Inserted)

	items, err := svc.store.List(t.Context(), "news")
	require.NoError(t, err)
	assert.Equal(t, "first", items[0].Title)
}

func TestSyncMaxItems(t *testing.T) {
	cfg := testConfig()
	cfg.MaxItems = 2
	svc, client := setupService(t, cfg)

	publish(client, "news", `{"items":[
		{"id": 1, "title": "A"},
		{"id": 2, "title": ""},
		{"id": 3, "title": "C"},
		{"id": 4, "title": "D"}
	]}`)
	report, err := svc.Sync(t.Context(), "news", false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, []string{"1", "3"}, storedKeys(t, svc, "news"))
}

func TestSyncWithoutDatabase(t *testing.T) {
	svc := NewService(new(mocks.Client), testBucket, zap.NewNop(), nil, testConfig())

	_, err := svc.Sync(t.Context(), "news", false)
	assert.ErrorIs(t, err, ErrNoDatabase)
	_, err = svc.Diff(t.Context(), "news")
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestDiff(t *testing.T) {
	svc, client := setupService(t, testConfig())
	ctx := t.Context()

	publish(client, "news", `{"items":[
		{"id": 1, "title": "A"},
		{"id": "b", "title": "B", "body": "hello world"}
	]}`)
	_, err := svc.Sync(ctx, "news", false)
	require.NoError(t, err)

	publish(client, "news", `{"items":[
		{"id": "b", "title": "B", "body": "hello brave world"},
		{"id": 1, "title": "A"},
		{"id": 5, "title": "E"}
	]}`)
	report, err := svc.Diff(ctx, "news")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Stored)
	assert.Equal(t, 3, report.Entries)
	assert.Empty(t, report.Script.Removals)
	assert.Equal(t, 2, report.Script.Insertions[0].Index)
	require.Len(t, report.Script.Moves, 1)
	assert.Equal(t, 1, report.Script.Moves[0].OldIndex)
	assert.Equal(t, 0, report.Script.Moves[0].NewIndex)
	require.Len(t, report.Script.Updates, 1)
	assert.Equal(t, 1, report.Script.Updates[0].OldIndex)
	assert.Equal(t, 0, report.Script.Updates[0].NewIndex)

	require.Len(t, report.Patches, 1)
	assert.Equal(t, "b", report.Patches[0].ID)
	assert.Contains(t, report.Patches[0].Patch, "brave")

	// Diff never writes
	assert.Equal(t, []string{"1", "b"}, storedKeys(t, svc, "news"))
}

func TestDiffRejectsDuplicates(t *testing.T) {
	svc, client := setupService(t, testConfig())

	publish(client, "news", `{"items":[{"id": 1, "title": "A"}, {"id": "1", "title": "again"}]}`)
	_, err := svc.Diff(t.Context(), "news")

	require.Error(t, err)
	assert.True(t, errors.Is(err, identity.ErrDuplicateIdentity))
	var dup *identity.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 1, dup.Index)
}

func TestPublish(t *testing.T) {
	cfg := testConfig()
	cfg.CacheTTLSeconds = 60
	svc, client := setupService(t, cfg)

	publish(client, "news", `{"items":[{"id": 1, "title": "Old"}]}`)
	snap, err := svc.Snapshot(t.Context(), "news")
	require.NoError(t, err)
	assert.Equal(t, "Old", snap.Items[0].Title)

	client.On("PutObject", mock.Anything, testBucket, "feeds/news.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	require.NoError(t, svc.Publish(t.Context(), "news", &models.Snapshot{Items: []models.Entry{{ID: 1, Title: "New"}}}))

	// The cached copy is dropped
	publish(client, "news", `{"items":[{"id": 1, "title": "New"}]}`)
	snap, err = svc.Snapshot(t.Context(), "news")
	require.NoError(t, err)
	assert.Equal(t, "New", snap.Items[0].Title)

	assert.ErrorIs(t, svc.Publish(t.Context(), "Bad/Name", &models.Snapshot{}), ErrInvalidName)
	client.AssertExpectations(t)
}
