package algorithm

import (
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// Notify receives the visible transitions a step produced. It may be nil.
type Notify func(t event.Type, data interface{})

type stepFunc func(st *State, seq []item.Item, notify Notify) bool

var stepFuncs = map[types.Algorithm]stepFunc{
	types.Bubble:    stepBubble,
	types.Insertion: stepInsertion,
	types.Selection: stepSelection,
}

// Step advances st by exactly one phase over seq. It returns false when this
// call completed the sort, true otherwise. Sequences shorter than two are
// already complete. Step does not check SwapPending; callers gate on it.
func Step(st *State, seq []item.Item, notify Notify) bool {
	if notify == nil {
		notify = func(event.Type, interface{}) {}
	}
	if st.Complete {
		return false
	}
	if len(seq) < 2 {
		st.Complete = true
		return false
	}
	fn, ok := stepFuncs[st.Algorithm]
	if !ok {
		panic(InvariantError{Op: "dispatch " + st.Algorithm.String(), Index: int(st.Algorithm), Len: len(stepFuncs)})
	}
	return fn(st, seq, notify)
}

// highlight clears the previous comparison and marks the new pair active.
func highlight(st *State, seq []item.Item, notify Notify, i, j int) {
	n := len(seq)
	checkIndex("highlight", i, n)
	checkIndex("highlight", j, n)

	item.SetAll(seq, types.EmphasisNone)
	seq[i].SetEmphasis(types.EmphasisActive)
	seq[j].SetEmphasis(types.EmphasisActive)
	st.Comparisons++
	st.Phase = types.PhaseAction

	notify(event.TypeComparison, event.ComparisonData{
		Algorithm:  st.Algorithm,
		Left:       i,
		Right:      j,
		LeftValue:  seq[i].Value(),
		RightValue: seq[j].Value(),
	})
}

// swap exchanges two slots and sends both items to their new positions.
func swap(st *State, seq []item.Item, notify Notify, i, j int) {
	n := len(seq)
	checkIndex("swap", i, n)
	checkIndex("swap", j, n)

	seq[i], seq[j] = seq[j], seq[i]
	seq[i].MoveTo(i)
	seq[j].MoveTo(j)
	st.Swaps++
	st.SwapPending = true

	notify(event.TypeSwap, event.SwapData{
		Algorithm:  st.Algorithm,
		Left:       i,
		Right:      j,
		LeftValue:  seq[i].Value(),
		RightValue: seq[j].Value(),
	})
}

// complete is shared by every algorithm: mark everything sorted and snap
// each item to its index-aligned slot to absorb animation drift.
func complete(st *State, seq []item.Item, notify Notify) bool {
	st.Complete = true
	item.SetAll(seq, types.EmphasisSorted)
	item.Align(seq)

	notify(event.TypeSortComplete, event.SortCompleteData{
		Algorithm:   st.Algorithm,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
	})
	return false
}

func passComplete(st *State, notify Notify, fixed int) {
	notify(event.TypePassComplete, event.PassCompleteData{Algorithm: st.Algorithm, Fixed: fixed})
}
