// Package history provides undo via a stack of engine snapshots.
package history

import (
	"github.com/bethropolis/stepsort/internal/core/algorithm"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// Snapshot is an immutable capture of engine-visible state taken right before
// a forward micro-step. The algorithm selection travels inside State.
type Snapshot struct {
	state    algorithm.State
	order    []item.Item
	emphasis []types.Emphasis
}

// NewSnapshot copies order and emphasis so later mutation of the live
// sequence cannot leak into the capture.
func NewSnapshot(state algorithm.State, order []item.Item, emphasis []types.Emphasis) Snapshot {
	s := Snapshot{
		state:    state,
		order:    make([]item.Item, len(order)),
		emphasis: make([]types.Emphasis, len(emphasis)),
	}
	copy(s.order, order)
	copy(s.emphasis, emphasis)
	return s
}

// State returns the captured cursor.
func (s Snapshot) State() algorithm.State { return s.state }

// Order returns a copy of the captured item order.
func (s Snapshot) Order() []item.Item {
	out := make([]item.Item, len(s.order))
	copy(out, s.order)
	return out
}

// Emphasis returns a copy of the captured per-item emphasis, by slot.
func (s Snapshot) Emphasis() []types.Emphasis {
	out := make([]types.Emphasis, len(s.emphasis))
	copy(out, s.emphasis)
	return out
}

// Len is the number of items captured.
func (s Snapshot) Len() int { return len(s.order) }
