// Package algorithm holds the per-algorithm cursor state and the step functions
// that advance bubble, insertion and selection sort one micro-step at a time.
//
// A step function never blocks and never waits on animation. It mutates the
// sequence and the cursor, and reports visible transitions through a Notify
// callback. Gating on animation is the engine's job.
package algorithm

import "github.com/bethropolis/stepsort/internal/types"

// BubbleState is the cursor of bubble sort.
type BubbleState struct {
	Current    int // Left index of the pair under comparison
	SortedTail int // Number of elements already fixed at the tail
}

// InsertionState is the cursor of insertion sort.
type InsertionState struct {
	Outer int // Element currently being inserted
	Inner int // Its current position while it sinks left
}

// SelectionState is the cursor of selection sort.
type SelectionState struct {
	Current    int // Candidate being compared against Min
	Min        int // Index of the smallest value seen this pass
	SortedHead int // Number of elements already fixed at the head
}

// State is the full cursor of the engine: an algorithm tag, the payload for
// that algorithm, and the counters shared by all of them. Only the payload
// matching Algorithm is meaningful.
type State struct {
	Algorithm types.Algorithm
	Phase     types.Phase

	Bubble    BubbleState
	Insertion InsertionState
	Selection SelectionState

	Complete    bool
	SwapPending bool // A swap was issued and its animation has not settled yet

	Comparisons int
	Swaps       int
}

// NewState returns the initial cursor for an algorithm.
func NewState(a types.Algorithm) State {
	st := State{Algorithm: a, Phase: types.PhaseHighlight}
	switch a {
	case types.Insertion:
		st.Insertion = InsertionState{Outer: 1, Inner: 1}
	case types.Selection:
		st.Selection = SelectionState{Current: 1, Min: 0, SortedHead: 0}
	}
	return st
}

// Fixed reports how many elements the cursor already treats as final.
func (s State) Fixed() int {
	switch s.Algorithm {
	case types.Bubble:
		return s.Bubble.SortedTail
	case types.Insertion:
		// Insertion keeps a sorted prefix, not a final one
		return 0
	case types.Selection:
		return s.Selection.SortedHead
	}
	return 0
}
