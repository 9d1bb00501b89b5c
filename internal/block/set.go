package block

import (
	"math/rand"
	"time"

	"github.com/bethropolis/stepsort/internal/item"
)

// Set owns the blocks of one run, in creation order.
type Set struct {
	blocks []*Block
}

// Options controls how a Set is spawned.
type Options struct {
	Speed float64
	// Jitter drops every block slightly off its slot and above the floor.
	Jitter bool
	Rand   *rand.Rand
}

// NewSet creates one block per value, each in the slot matching its index.
func NewSet(values []int, opts Options) *Set {
	s := &Set{blocks: make([]*Block, len(values))}
	rng := opts.Rand
	if opts.Jitter && rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i, v := range values {
		b := New(v, i, opts.Speed)
		if opts.Jitter {
			// Up to a tenth of a slot sideways, and 4-5 rows up
			b.Drop((rng.Float64()-0.5)*0.2, 4+rng.Float64())
		}
		s.blocks[i] = b
	}
	return s
}

// Items returns the blocks as engine items, in creation order.
func (s *Set) Items() []item.Item {
	out := make([]item.Item, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = b
	}
	return out
}

// Blocks returns the blocks in creation order.
func (s *Set) Blocks() []*Block { return s.blocks }

// Len is the number of blocks.
func (s *Set) Len() int { return len(s.blocks) }

// Tick advances every block and reports whether any is still moving.
func (s *Set) Tick(dt time.Duration) bool {
	moving := false
	for _, b := range s.blocks {
		b.Tick(dt)
		if b.IsAnimating() {
			moving = true
		}
	}
	return moving
}

// Moving reports whether any block is still animating.
func (s *Set) Moving() bool {
	for _, b := range s.blocks {
		if b.IsAnimating() {
			return true
		}
	}
	return false
}

// Snap stops every block at its target.
func (s *Set) Snap() {
	for _, b := range s.blocks {
		b.Snap()
	}
}

// MaxValue is the largest value in the set, or 0 when empty.
func (s *Set) MaxValue() int {
	max := 0
	for i, b := range s.blocks {
		if i == 0 || b.value > max {
			max = b.value
		}
	}
	return max
}

// MinValue is the smallest value in the set, or 0 when empty.
func (s *Set) MinValue() int {
	min := 0
	for i, b := range s.blocks {
		if i == 0 || b.value < min {
			min = b.value
		}
	}
	return min
}
