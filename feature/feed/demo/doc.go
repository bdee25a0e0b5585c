// Package demo exercises edit scripts and reconciliation on a randomly mutating collection.
//
// A Runner holds a source collection and two copies of it. Every round the source is mutated,
// the view copy is updated by replaying the changes.EditScript and the model copy by
// reconcile.Reconcile. Both must match the mutated source afterwards.
//
//	r := demo.NewRunner(42, 20, logger)
//	results, err := r.Run(ctx, 100)
package demo
