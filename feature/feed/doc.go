// Package feed mirrors ordered collections published in object storage into the database.
//
// A feed is a JSON snapshot stored at <prefix>/<name><extension> in the bucket:
//
//	{"items": [{"id": 1, "title": "Launch", "body": "...", "revision": 2, "pinned": true}]}
//
// Ids may be numbers or strings. Entries without an id or a title are not mirrored.
//
// # Operations
//
//   - ListFeeds: names of the published snapshots.
//   - Publish: uploads a new snapshot.
//   - Diff: the changes.EditScript turning the stored rows into the snapshot, with a patch for
//     every changed body. A snapshot that repeats an id is rejected.
//   - Sync: reconciles the stored rows with the snapshot, keeping rows (and their ids) for
//     entries that still exist, and writes the outcome in one transaction.
//
// Snapshots are cached for Config.CacheTTLSeconds. Concurrent requests for the same snapshot
// share a single download.
//
// # HTTP
//
//	GET  /feeds
//	GET  /feeds/:name/diff
//	POST /feeds/:name/sync?dry_run=true
package feed
