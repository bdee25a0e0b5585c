package identity

// Tombstone is the Index of an entry that has been consumed.
const Tombstone = -1

// Entry is an element together with its position in the indexed sequence.
type Entry[T any] struct {
	Item  T
	Index int
}

// Consumed reports whether the entry has been replaced by a tombstone.
func (e Entry[T]) Consumed() bool {
	return e.Index == Tombstone
}

// Index maps identities to entries.
type Index[K comparable, T any] map[K]Entry[T]

// Live returns the entry for key if it is present and not consumed.
func (idx Index[K, T]) Live(key K) (Entry[T], bool) {
	e, ok := idx[key]
	if !ok || e.Consumed() {
		return Entry[T]{}, false
	}
	return e, true
}

// Consume replaces the entry for key with a tombstone.
// The key is kept so that later lookups can tell "already matched" from "never present".
func (idx Index[K, T]) Consume(key K) {
	if _, ok := idx[key]; ok {
		idx[key] = Entry[T]{Index: Tombstone}
	}
}

// Strict indexes items and fails on the first repeated identity.
func Strict[T any, K comparable](items []T, id func(T) K) (Index[K, T], error) {
	idx := make(Index[K, T], len(items))
	for i, item := range items {
		key := id(item)
		if prev, ok := idx[key]; ok {
			return nil, &DuplicateError{Identity: key, First: prev.Index, Index: i}
		}
		idx[key] = Entry[T]{Item: item, Index: i}
	}
	return idx, nil
}

// Tolerant indexes items keeping the first occurrence of every identity.
// The positions of the discarded later occurrences are returned in ascending order.
func Tolerant[T any, K comparable](items []T, id func(T) K) (Index[K, T], []int) {
	idx := make(Index[K, T], len(items))
	var dropped []int
	for i, item := range items {
		key := id(item)
		if _, ok := idx[key]; ok {
			dropped = append(dropped, i)
			continue
		}
		idx[key] = Entry[T]{Item: item, Index: i}
	}
	return idx, dropped
}

// Dedupe returns items without the later occurrences of repeated identities.
// When there are no duplicates the input slice itself is returned.
func Dedupe[T any, K comparable](items []T, id func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	for i, item := range items {
		key := id(item)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			continue
		}

		// First duplicate found: copy what we have and filter the rest.
		out := make([]T, i, len(items)-1)
		copy(out, items[:i])
		for _, rest := range items[i+1:] {
			k := id(rest)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, rest)
		}
		return out
	}
	return items
}
