// Package identity indexes ordered sequences by the identity of their elements.
//
// Every element of a sequence is expected to carry an identity that is unique within that
// sequence. The package offers two policies for sequences that break this rule:
//
//   - Strict: a duplicate is a caller bug. Strict returns a *DuplicateError (matching
//     ErrDuplicateIdentity) and no index at all.
//   - Tolerant: the first occurrence wins. Later duplicates are left out of the index and their
//     positions are returned so the caller can account for them.
//
// # Tombstones
//
// Entries of a tolerant index can be marked consumed with Index.Consume. The key stays in the
// map and only the entry is replaced by a tombstone, keeping each lookup and each consume O(1).
//
// # Usage
//
//	idx, err := identity.Strict(items, func(it Item) string { return it.ID })
//	if errors.Is(err, identity.ErrDuplicateIdentity) {
//	    // caller contract violated
//	}
package identity
