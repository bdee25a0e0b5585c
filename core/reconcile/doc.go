// Package reconcile updates a persistent sequence in place from a source sequence.
//
// Unlike package changes it does not produce an edit script. It keeps elements whose identity is
// still present in the source, creates elements for new identities, drops the rest and reports
// whether anything changed. It is meant for live collections refreshed from a backend, where
// keeping element instances stable matters more than a replayable script.
//
// # Fast Paths
//
// Reconcile checks three cheap cases before the general algorithm:
//   - The existing sequence is empty: the source is transformed as a whole.
//   - The source is empty: every existing element is removed.
//   - Both hold the same identities in the same order: elements are only updated.
//
// # Tombstones
//
// The general path indexes the existing elements by identity. A matched entry is replaced by a
// tombstone instead of being deleted from the map, so each source element is handled in O(1) on
// average and the whole reconciliation in O(n).
//
// # Duplicates
//
// Repeated identities are tolerated: the first occurrence wins on both sides. Later source
// duplicates are ignored and later existing duplicates are removed. Nothing is reported.
//
// # Concurrency
//
// Reconcile performs no locking. Callers serialize access to the existing sequence; callbacks
// must not re-enter Reconcile on the same sequence.
//
// # Usage
//
//	changed := reconcile.Reconcile(&rows, entries, reconcile.Mapping[*Row, Entry, string]{
//	    ElementID: func(r *Row) string { return r.Key },
//	    SourceID:  func(e Entry) string { return e.ID },
//	    Transform: func(e Entry) (*Row, bool) { return newRow(e), e.Title != "" },
//	    Update:    func(r *Row, e Entry) bool { return r.apply(e) },
//	    Remove:    func(r *Row) { deleted = append(deleted, r) },
//	})
package reconcile
