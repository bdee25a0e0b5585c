package changes

// Removal is the removal of an element of the old sequence.
type Removal struct {
	// Index is the position of the removed element in the old sequence.
	Index int `json:"index"`
}

// Insertion is the insertion of an element of the new sequence.
type Insertion struct {
	// Index is the position of the inserted element in the new sequence.
	Index int `json:"index"`
}

// Move is an element that survives but changes its relative position.
type Move struct {
	// OldIndex is the position of the element in the old sequence.
	OldIndex int `json:"old_index"`

	// NewIndex is the position of the element in the new sequence.
	NewIndex int `json:"new_index"`

	// IntermediateSourceIndex and IntermediateTargetIndex are positions in the intermediate
	// sequence and account for the moves listed before this one. They are what a replay onto
	// a plain slice needs.
	IntermediateSourceIndex int `json:"intermediate_source_index"`
	IntermediateTargetIndex int `json:"intermediate_target_index"`
}

// Update is an element whose identity is unchanged but whose contents changed.
type Update struct {
	// OldIndex is the position of the element in the old sequence.
	OldIndex int `json:"old_index"`

	// NewIndex is the position of the element in the new sequence.
	NewIndex int `json:"new_index"`
}

// EditScript describes how to turn an old sequence into a new one.
// It is created fresh by Build and owned by the caller.
type EditScript struct {
	// Removals, in strictly descending order of Index.
	Removals []Removal `json:"removals"`

	// Insertions, in ascending order of Index.
	Insertions []Insertion `json:"insertions"`

	// Moves, in the order they have to be replayed.
	Moves []Move `json:"moves"`

	// Updates, in ascending order of NewIndex.
	Updates []Update `json:"updates"`
}

// IsEmpty returns true if there is no difference between the sequences.
func (s *EditScript) IsEmpty() bool {
	return len(s.Removals) == 0 && len(s.Insertions) == 0 && len(s.Moves) == 0 && len(s.Updates) == 0
}

// Summary provides aggregate counts of an EditScript.
type Summary struct {
	Removals   int `json:"removals"`
	Insertions int `json:"insertions"`
	Moves      int `json:"moves"`
	Updates    int `json:"updates"`
}

// Summary returns the number of changes per category.
func (s *EditScript) Summary() Summary {
	return Summary{
		Removals:   len(s.Removals),
		Insertions: len(s.Insertions),
		Moves:      len(s.Moves),
		Updates:    len(s.Updates),
	}
}
