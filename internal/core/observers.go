package core

import (
	"github.com/bethropolis/stepsort/internal/core/algorithm"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// IsComplete reports whether the sequence is sorted. Sequences shorter than
// two items are always complete.
func (e *Engine) IsComplete() bool { return e.state.Complete || len(e.seq) < 2 }

// ComparisonCount is the number of highlights since the last reset.
func (e *Engine) ComparisonCount() int { return e.state.Comparisons }

// SwapCount is the number of swaps since the last reset.
func (e *Engine) SwapCount() int { return e.state.Swaps }

// HasHistory reports whether Undo would do anything.
func (e *Engine) HasHistory() bool { return e.history.CanUndo() }

// HistoryDepth is the number of steps that can be undone.
func (e *Engine) HistoryDepth() int { return e.history.Len() }

// Algorithm is the active algorithm.
func (e *Engine) Algorithm() types.Algorithm { return e.state.Algorithm }

// Phase is the sub-step the next Step will run.
func (e *Engine) Phase() types.Phase { return e.state.Phase }

// SwapPending reports whether the engine is waiting on a swap animation.
func (e *Engine) SwapPending() bool { return e.state.SwapPending }

// State returns a copy of the cursor.
func (e *Engine) State() algorithm.State { return e.state }

// Len is the number of items in the sequence.
func (e *Engine) Len() int { return len(e.seq) }

// Items returns the caller's items in their current order.
func (e *Engine) Items() []item.Item {
	out := make([]item.Item, len(e.seq))
	for i, it := range e.seq {
		out[i] = unwrap(it)
	}
	return out
}

// Values returns the current order by value.
func (e *Engine) Values() []int { return item.Values(e.seq) }

// Emphasis returns the emphasis the engine last applied, by slot.
func (e *Engine) Emphasis() []types.Emphasis {
	out := make([]types.Emphasis, len(e.seq))
	for i, it := range e.seq {
		if h, ok := it.(*handle); ok {
			out[i] = h.emphasis
		}
	}
	return out
}

// Settled reports whether no item is animating.
func (e *Engine) Settled() bool { return item.Settled(e.seq) }
