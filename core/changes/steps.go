package changes

// StepKind is the kind of a single list view operation.
type StepKind string

const (
	// StepDelete deletes the row at From (old sequence).
	StepDelete StepKind = "delete"
	// StepInsert inserts a row at To (new sequence).
	StepInsert StepKind = "insert"
	// StepMove moves the row at From (old sequence) to To (new sequence).
	StepMove StepKind = "move"
)

// Step is one operation of a batched list view update.
type Step struct {
	Kind StepKind `json:"kind"`
	From int      `json:"from"`
	To   int      `json:"to"`
}

// Batches splits an EditScript into what a list view applies in separate atomic batches.
type Batches struct {
	// Structural holds deletes, then inserts, then moves. All of them belong in one batch.
	Structural []Step `json:"structural"`

	// ReloadBefore lists old-sequence rows to reload in a batch preceding Structural.
	ReloadBefore []int `json:"reload_before"`

	// ReloadAfter lists new-sequence rows to reload in a batch following Structural.
	// A consumer uses either ReloadBefore or ReloadAfter, not both.
	ReloadAfter []int `json:"reload_after"`
}

// Steps flattens script into view batches.
// Unused fields of a Step are set to -1.
func Steps(script *EditScript) Batches {
	b := Batches{
		Structural:   make([]Step, 0, len(script.Removals)+len(script.Insertions)+len(script.Moves)),
		ReloadBefore: make([]int, 0, len(script.Updates)),
		ReloadAfter:  make([]int, 0, len(script.Updates)),
	}

	for _, r := range script.Removals {
		b.Structural = append(b.Structural, Step{Kind: StepDelete, From: r.Index, To: -1})
	}
	for _, ins := range script.Insertions {
		b.Structural = append(b.Structural, Step{Kind: StepInsert, From: -1, To: ins.Index})
	}
	for _, m := range script.Moves {
		b.Structural = append(b.Structural, Step{Kind: StepMove, From: m.OldIndex, To: m.NewIndex})
	}

	for _, u := range script.Updates {
		b.ReloadBefore = append(b.ReloadBefore, u.OldIndex)
		b.ReloadAfter = append(b.ReloadAfter, u.NewIndex)
	}

	return b
}
