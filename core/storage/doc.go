// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations the
// application needs: checking and creating buckets, uploading, downloading and listing
// objects. This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier to mock
// storage interactions for unit testing (see core/storage/mocks).
//
// # JSON Objects
//
// Feed snapshots are JSON documents. ReadJSON and WriteJSON decode and encode them, and
// ReadJSON maps a missing key or bucket to ErrObjectNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	var snap models.Snapshot
//	err = storage.ReadJSON(ctx, client, "collections", "feeds/news.json", &snap)
package storage
