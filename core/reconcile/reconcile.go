package reconcile

import "collection-sync/core/identity"

// Mapping describes how elements of an existing sequence relate to elements of a source sequence.
type Mapping[E, S any, K comparable] struct {
	// ElementID returns the identity of an existing element.
	ElementID func(E) K

	// SourceID returns the identity of a source element.
	// Identities from both sides must come from the same identity space.
	SourceID func(S) K

	// Transform creates an element for a source element that has no existing counterpart.
	// Returning false skips the source element, e.g. when it is still incomplete.
	Transform func(S) (E, bool)

	// Update refreshes an existing element from its source counterpart and reports whether
	// anything observable changed. Optional.
	Update func(E, S) bool

	// Remove is called once for every existing element that is dropped. Optional.
	Remove func(E)
}

func (m Mapping[E, S, K]) update(e E, s S) bool {
	if m.Update == nil {
		return false
	}
	return m.Update(e, s)
}

func (m Mapping[E, S, K]) remove(e E) {
	if m.Remove != nil {
		m.Remove(e)
	}
}

// Reconcile updates existing in place so that it holds, for each source element, either the
// matching existing element (refreshed through Update) or a new one made by Transform.
//
// It reports whether anything changed: an element was added, removed or updated, or the order
// differs. When nothing changed existing is left untouched, otherwise it is replaced by a newly
// allocated slice in source order and Remove is called for the dropped elements. The backing
// array of the original slice is never written to.
//
// Repeated identities are tolerated on both sides: the first occurrence wins and later ones are
// dropped.
func Reconcile[E, S any, K comparable](existing *[]E, source []S, m Mapping[E, S, K]) bool {
	items := *existing

	if len(items) == 0 {
		return populate(existing, source, m)
	}

	if len(source) == 0 {
		for _, e := range items {
			m.remove(e)
		}
		*existing = make([]E, 0)
		return true
	}

	if sameOrder(items, source, m) {
		changed := false
		for i := range items {
			if m.update(items[i], source[i]) {
				changed = true
			}
		}
		return changed
	}

	source = identity.Dedupe(source, m.SourceID)
	index, duplicates := identity.Tolerant(items, m.ElementID)

	changed := len(duplicates) > 0
	result := make([]E, 0, len(source))

	for _, s := range source {
		key := m.SourceID(s)

		if entry, ok := index.Live(key); ok {
			result = append(result, entry.Item)
			if m.update(entry.Item, s) {
				changed = true
			}
			// Tombstone rather than delete, keeping every step O(1).
			index.Consume(key)
			continue
		}

		if _, matched := index[key]; matched {
			// Already claimed by an earlier source element.
			continue
		}

		if e, ok := m.Transform(s); ok {
			result = append(result, e)
			changed = true
		}
	}

	// Existing elements left live in the index (and dropped duplicates) are gone from source.
	// Walking items keeps the callbacks in original order.
	var removed []E
	next := 0
	for i, e := range items {
		if next < len(duplicates) && duplicates[next] == i {
			next++
			removed = append(removed, e)
			continue
		}
		if entry, ok := index.Live(m.ElementID(e)); ok && entry.Index == i {
			removed = append(removed, e)
		}
	}
	if len(removed) > 0 {
		changed = true
	}

	// Same elements, same contents: only the order can still differ.
	if !changed {
		changed = len(result) != len(items)
		for i := 0; !changed && i < len(result); i++ {
			changed = m.ElementID(items[i]) != m.ElementID(result[i])
		}
	}

	if !changed {
		return false
	}

	*existing = result
	for _, e := range removed {
		m.remove(e)
	}
	return true
}

// populate fills an empty sequence from source.
func populate[E, S any, K comparable](existing *[]E, source []S, m Mapping[E, S, K]) bool {
	source = identity.Dedupe(source, m.SourceID)

	result := make([]E, 0, len(source))
	for _, s := range source {
		if e, ok := m.Transform(s); ok {
			result = append(result, e)
		}
	}
	if len(result) == 0 {
		return false
	}

	*existing = result
	return true
}

func sameOrder[E, S any, K comparable](items []E, source []S, m Mapping[E, S, K]) bool {
	if len(items) != len(source) {
		return false
	}
	for i := range items {
		if m.ElementID(items[i]) != m.SourceID(source[i]) {
			return false
		}
	}
	return true
}
