package changes

import (
	"errors"
	"fmt"
	"slices"
)

// ErrScriptMismatch is returned by Apply when a script does not fit the given sequences.
var ErrScriptMismatch = errors.New("edit script does not match sequences")

// ApplyFuncs holds the callbacks used by Apply.
type ApplyFuncs[O, N any] struct {
	// New creates an element of the old sequence from an element of the new one.
	// Required when the script has insertions.
	New func(N) O

	// Update is called for every Update with the old element and its new counterpart.
	Update func(O, N)

	// Remove is called for every removed element after it has been dropped from the slice,
	// before any moves or insertions are made.
	Remove func(O)
}

// Apply replays script onto items so that it mirrors newItems.
//
// Updates are delivered first, while old indices are still valid, then removals, moves (using
// intermediate indices) and insertions. items is replaced by a newly allocated slice; elements
// that survive are the same values that were in items.
func Apply[O, N any](script *EditScript, items *[]O, newItems []N, fn ApplyFuncs[O, N]) error {
	old := *items

	if len(old)-len(script.Removals)+len(script.Insertions) != len(newItems) {
		return fmt.Errorf("%w: %d old, %d removals, %d insertions, %d new",
			ErrScriptMismatch, len(old), len(script.Removals), len(script.Insertions), len(newItems))
	}
	if len(script.Insertions) > 0 && fn.New == nil {
		return fmt.Errorf("%w: insertions require a New func", ErrScriptMismatch)
	}
	if err := checkBounds(script, len(old), len(newItems)); err != nil {
		return err
	}

	if fn.Update != nil {
		for _, u := range script.Updates {
			fn.Update(old[u.OldIndex], newItems[u.NewIndex])
		}
	}

	result := slices.Clone(old)

	removed := make([]O, 0, len(script.Removals))
	for _, r := range script.Removals {
		removed = append(removed, result[r.Index])
		result = slices.Delete(result, r.Index, r.Index+1)
	}
	if fn.Remove != nil {
		for _, item := range removed {
			fn.Remove(item)
		}
	}

	for _, m := range script.Moves {
		item := result[m.IntermediateSourceIndex]
		result = slices.Delete(result, m.IntermediateSourceIndex, m.IntermediateSourceIndex+1)
		result = slices.Insert(result, m.IntermediateTargetIndex, item)
	}

	for _, ins := range script.Insertions {
		result = slices.Insert(result, ins.Index, fn.New(newItems[ins.Index]))
	}

	*items = result
	return nil
}

// checkBounds verifies that every index of script is valid at the point it is replayed.
func checkBounds(script *EditScript, oldLen, newLen int) error {
	for _, u := range script.Updates {
		if u.OldIndex < 0 || u.OldIndex >= oldLen || u.NewIndex < 0 || u.NewIndex >= newLen {
			return fmt.Errorf("%w: update %d -> %d out of range", ErrScriptMismatch, u.OldIndex, u.NewIndex)
		}
	}

	prev := oldLen
	for _, r := range script.Removals {
		if r.Index < 0 || r.Index >= prev {
			return fmt.Errorf("%w: removal at %d out of range or not descending", ErrScriptMismatch, r.Index)
		}
		prev = r.Index
	}

	intermediate := oldLen - len(script.Removals)
	for _, m := range script.Moves {
		if m.IntermediateSourceIndex < 0 || m.IntermediateSourceIndex >= intermediate ||
			m.IntermediateTargetIndex < 0 || m.IntermediateTargetIndex >= intermediate {
			return fmt.Errorf("%w: move %d -> %d out of range", ErrScriptMismatch,
				m.IntermediateSourceIndex, m.IntermediateTargetIndex)
		}
	}

	prev = -1
	for k, ins := range script.Insertions {
		if ins.Index <= prev || ins.Index >= newLen || ins.Index > intermediate+k {
			return fmt.Errorf("%w: insertion at %d out of range or not ascending", ErrScriptMismatch, ins.Index)
		}
		prev = ins.Index
	}
	return nil
}
