// Package changes computes edit scripts between two ordered sequences of identity-bearing items.
//
// The old and new sequences may hold different element types as long as both produce identities
// from the same identity space. The result, an EditScript, lists Removals, Insertions, Moves and
// Updates with indices that can be replayed as one animated batch update of a list view.
//
// # Index Spaces
//
//   - Removal.Index and Move.OldIndex point into the old sequence.
//   - Insertion.Index and Move.NewIndex point into the new sequence.
//   - Move.IntermediateSourceIndex and Move.IntermediateTargetIndex point into the intermediate
//     sequence: the old sequence with all removals applied and no insertions yet, including the
//     effect of the moves listed before the current one.
//
// Removals are listed in descending order and insertions in ascending order, so applying
// removals, then moves, then insertions to a live slice (see Apply) reproduces the new sequence.
//
// Updates must be replayed separately from the structural changes: many list views cannot reload
// a row in the same batch that moves, inserts or deletes rows. Steps splits a script into these
// two batches.
//
// # Complexity
//
// The common case of an unchanged order is detected in O(n). Otherwise locating a moved element
// scans the remaining intermediate sequence, giving O(n²) in the worst case. The script is not a
// minimal edit distance and the number of moves is not guaranteed to be minimal.
//
// # Usage
//
//	script, err := changes.Build(
//	    rows, func(r *Row) string { return r.ID },
//	    fetched, func(e Entry) string { return e.ID },
//	    func(r *Row, e Entry) bool { return r.Title != e.Title },
//	)
//	if err != nil {
//	    return err // duplicate identity in one of the sequences
//	}
//	changes.Apply(script, &rows, fetched, changes.ApplyFuncs[*Row, Entry]{New: newRow})
package changes
