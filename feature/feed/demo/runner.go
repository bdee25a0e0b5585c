package demo

import (
	"context"
	"fmt"
	"slices"

	"collection-sync/core/changes"
	"collection-sync/core/reconcile"

	"go.uber.org/zap"
)

// Row is a displayed item. Rows are shared by pointer so that updates land in place.
type Row struct {
	ID      string
	Label   string
	Version int
}

func newRow(item Item) *Row {
	return &Row{ID: item.ID, Label: item.Label, Version: item.Version}
}

func rowID(r *Row) string { return r.ID }

func itemID(i Item) string { return i.ID }

func rowChanged(r *Row, i Item) bool {
	return r.Label != i.Label || r.Version != i.Version
}

func refresh(r *Row, i Item) bool {
	if !rowChanged(r, i) {
		return false
	}
	r.Label, r.Version = i.Label, i.Version
	return true
}

// Result describes one round.
type Result struct {
	Round      int             `json:"round"`
	Size       int             `json:"size"`
	Summary    changes.Summary `json:"summary"`
	Reconciled bool            `json:"reconciled"`
}

// Runner keeps two copies of a collection in step with a mutating source: a view updated by
// replaying edit scripts and a model updated by reconciliation.
type Runner struct {
	gen    *Generator
	logger *zap.Logger
	source []Item
	view   []*Row
	model  []*Row
	round  int
}

// NewRunner creates a runner over a sample collection of size items.
func NewRunner(seed int64, size int, logger *zap.Logger) *Runner {
	gen := NewGenerator(seed)
	source := gen.Sample(size)

	r := &Runner{gen: gen, logger: logger, source: source}
	for _, item := range source {
		r.view = append(r.view, newRow(item))
		r.model = append(r.model, newRow(item))
	}
	return r
}

// Step mutates the source once and brings both copies up to date.
func (r *Runner) Step() (Result, error) {
	r.round++
	next := r.gen.Mutate(r.source)

	script, err := changes.Build(r.view, rowID, next, itemID, rowChanged)
	if err != nil {
		return Result{}, fmt.Errorf("round %d: %w", r.round, err)
	}
	err = changes.Apply(script, &r.view, next, changes.ApplyFuncs[*Row, Item]{
		New:    newRow,
		Update: func(row *Row, item Item) { refresh(row, item) },
	})
	if err != nil {
		return Result{}, fmt.Errorf("round %d: %w", r.round, err)
	}

	reconciled := reconcile.Reconcile(&r.model, next, reconcile.Mapping[*Row, Item, string]{
		ElementID: rowID,
		SourceID:  itemID,
		Transform: func(item Item) (*Row, bool) { return newRow(item), true },
		Update:    refresh,
	})

	if err := verify(r.view, next); err != nil {
		return Result{}, fmt.Errorf("round %d: view: %w", r.round, err)
	}
	if err := verify(r.model, next); err != nil {
		return Result{}, fmt.Errorf("round %d: model: %w", r.round, err)
	}
	if reconciled == script.IsEmpty() {
		return Result{}, fmt.Errorf("round %d: reconcile reported %t for a script of %+v", r.round, reconciled, script.Summary())
	}

	r.source = next
	res := Result{Round: r.round, Size: len(next), Summary: script.Summary(), Reconciled: reconciled}
	r.logger.Debug("Round applied",
		zap.Int("round", res.Round),
		zap.Int("size", res.Size),
		zap.Int("removals", res.Summary.Removals),
		zap.Int("insertions", res.Summary.Insertions),
		zap.Int("moves", res.Summary.Moves),
		zap.Int("updates", res.Summary.Updates),
	)
	return res, nil
}

// Run executes rounds steps, stopping early when ctx is done.
func (r *Runner) Run(ctx context.Context, rounds int) ([]Result, error) {
	results := make([]Result, 0, rounds)
	for range rounds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.Step()
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// verify checks that rows mirror items.
func verify(rows []*Row, items []Item) error {
	if len(rows) != len(items) {
		return fmt.Errorf("%d rows for %d items", len(rows), len(items))
	}
	if i := slices.Index(rows, nil); i >= 0 {
		return fmt.Errorf("row %d is nil", i)
	}
	for i := range rows {
		if rows[i].ID != items[i].ID || rowChanged(rows[i], items[i]) {
			return fmt.Errorf("row %d is %+v, want %+v", i, *rows[i], items[i])
		}
	}
	return nil
}
