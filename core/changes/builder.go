package changes

import (
	"fmt"
	"slices"

	"collection-sync/core/identity"
)

// Build computes the EditScript turning oldItems into newItems.
//
// oldID and newID extract identities; identities must be unique within each sequence and
// comparable across them. changed is called for elements present in both sequences and reports
// whether their contents differ. It may be nil, in which case no Updates are produced.
//
// A repeated identity in either sequence is a caller bug: Build returns an error matching
// identity.ErrDuplicateIdentity and no script.
func Build[O, N any, K comparable](
	oldItems []O,
	oldID func(O) K,
	newItems []N,
	newID func(N) K,
	changed func(O, N) bool,
) (*EditScript, error) {
	script := newScript()

	// Fast path: same identities in the same order, only contents can differ.
	if sameOrder(oldItems, oldID, newItems, newID) {
		// Both sides hold the same identities, checking one of them is enough.
		if _, err := identity.Strict(oldItems, oldID); err != nil {
			return nil, fmt.Errorf("old and new sequences: %w", err)
		}
		if changed != nil {
			for i := range oldItems {
				if changed(oldItems[i], newItems[i]) {
					script.Updates = append(script.Updates, Update{OldIndex: i, NewIndex: i})
				}
			}
		}
		return script, nil
	}

	oldIndex, err := identity.Strict(oldItems, oldID)
	if err != nil {
		return nil, fmt.Errorf("old sequence: %w", err)
	}
	newIndex, err := identity.Strict(newItems, newID)
	if err != nil {
		return nil, fmt.Errorf("new sequence: %w", err)
	}

	// Removals, from the end so that earlier indices stay valid while replaying.
	for i := len(oldItems) - 1; i >= 0; i-- {
		if _, ok := newIndex[oldID(oldItems[i])]; !ok {
			script.Removals = append(script.Removals, Removal{Index: i})
		}
	}

	// The intermediate sequence holds old indices of the surviving elements.
	intermediate := make([]int, 0, len(oldItems)-len(script.Removals))
	for i, item := range oldItems {
		if _, ok := newIndex[oldID(item)]; ok {
			intermediate = append(intermediate, i)
		}
	}

	for j, item := range newItems {
		if _, ok := oldIndex[newID(item)]; !ok {
			script.Insertions = append(script.Insertions, Insertion{Index: j})
		}
	}

	cursor := 0
	for j, item := range newItems {
		entry, ok := oldIndex[newID(item)]
		if !ok {
			// Insertions don't advance the cursor.
			continue
		}

		if intermediate[cursor] != entry.Index {
			// First match in intermediate order; everything before the cursor is already placed.
			found := cursor + 1 + slices.Index(intermediate[cursor+1:], entry.Index)
			script.Moves = append(script.Moves, Move{
				OldIndex:                entry.Index,
				NewIndex:                j,
				IntermediateSourceIndex: found,
				IntermediateTargetIndex: cursor,
			})
			copy(intermediate[cursor+1:found+1], intermediate[cursor:found])
			intermediate[cursor] = entry.Index
		}

		if changed != nil && changed(entry.Item, item) {
			script.Updates = append(script.Updates, Update{OldIndex: entry.Index, NewIndex: j})
		}

		cursor++
	}

	return script, nil
}

// BuildComparable is a shortcut for sequences of the same comparable type where every value is
// its own identity. No Updates are produced.
func BuildComparable[T comparable](oldItems, newItems []T) (*EditScript, error) {
	self := func(v T) T { return v }
	return Build(oldItems, self, newItems, self, nil)
}

func newScript() *EditScript {
	return &EditScript{
		Removals:   []Removal{},
		Insertions: []Insertion{},
		Moves:      []Move{},
		Updates:    []Update{},
	}
}

// sameOrder reports whether both sequences have pairwise equal identities.
func sameOrder[O, N any, K comparable](oldItems []O, oldID func(O) K, newItems []N, newID func(N) K) bool {
	if len(oldItems) != len(newItems) {
		return false
	}
	for i := range oldItems {
		if oldID(oldItems[i]) != newID(newItems[i]) {
			return false
		}
	}
	return true
}
