package demo

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Item is a sample collection entry.
type Item struct {
	ID      string
	Label   string
	Version int
}

// Generator produces and mutates sample collections. The same seed yields the same sequence
// of collections, ids included.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) newItem() Item {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))
	return Item{ID: id.String(), Label: fmt.Sprintf("item-%04d", g.rng.Intn(10000))}
}

// Sample returns a collection of n fresh items.
func (g *Generator) Sample(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = g.newItem()
	}
	return items
}

// Mutate returns a copy of items with a random number of removals, insertions, moves and edits.
// items itself is left unchanged.
func (g *Generator) Mutate(items []Item) []Item {
	next := make([]Item, len(items))
	copy(next, items)

	if len(next) > 0 {
		for n := g.rng.Intn(len(next)/4 + 1); n > 0 && len(next) > 0; n-- {
			i := g.rng.Intn(len(next))
			next = append(next[:i], next[i+1:]...)
		}
	}

	for n := g.rng.Intn(len(items)/4 + 2); n > 0; n-- {
		i := g.rng.Intn(len(next) + 1)
		next = append(next[:i], append([]Item{g.newItem()}, next[i:]...)...)
	}

	if len(next) > 1 {
		for n := g.rng.Intn(len(next)/4 + 1); n > 0; n-- {
			from, to := g.rng.Intn(len(next)), g.rng.Intn(len(next))
			item := next[from]
			next = append(next[:from], next[from+1:]...)
			next = append(next[:to], append([]Item{item}, next[to:]...)...)
		}

		for n := g.rng.Intn(len(next)/4 + 1); n > 0; n-- {
			i := g.rng.Intn(len(next))
			next[i].Version++
			next[i].Label = fmt.Sprintf("%s*", next[i].Label)
		}
	}

	return next
}
