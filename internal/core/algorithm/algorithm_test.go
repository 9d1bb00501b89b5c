package algorithm

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// run drives Step to completion. Static items settle instantly so SwapPending
// is simply cleared between calls, as the engine would do.
func run(t *testing.T, a types.Algorithm, values ...int) (State, []item.Item) {
	t.Helper()
	st := NewState(a)
	seq := item.StaticSeq(values...)
	limit := 4*len(values)*len(values) + 10
	for i := 0; i < limit; i++ {
		st.SwapPending = false
		if !Step(&st, seq, nil) {
			return st, seq
		}
	}
	t.Fatalf("%s did not complete within %d steps", a, limit)
	return st, seq
}

func TestBubbleScenario(t *testing.T) {
	st, seq := run(t, types.Bubble, 5, 3, 8, 1, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, item.Values(seq))
	assert.Equal(t, 10, st.Comparisons)
	assert.Equal(t, 6, st.Swaps)
	assert.True(t, st.Complete)
}

func TestSelectionScenario(t *testing.T) {
	st, seq := run(t, types.Selection, 5, 3, 8, 1, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, item.Values(seq))
	assert.Equal(t, 10, st.Comparisons)
	assert.Equal(t, 2, st.Swaps)
}

func TestSelectionAllEqual(t *testing.T) {
	st, seq := run(t, types.Selection, 3, 3, 3)
	assert.Equal(t, 3, st.Comparisons)
	assert.Zero(t, st.Swaps)
	for _, it := range seq {
		assert.Equal(t, types.EmphasisSorted, it.(*item.Static).Emphasis())
	}
}

func TestInsertionSingleElement(t *testing.T) {
	st := NewState(types.Insertion)
	seq := item.StaticSeq(1)
	assert.False(t, Step(&st, seq, nil))
	assert.Zero(t, st.Comparisons)
	assert.Zero(t, st.Swaps)
}

func TestInsertionAlreadySorted(t *testing.T) {
	st, seq := run(t, types.Insertion, 1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, item.Values(seq))
	assert.Zero(t, st.Swaps)
	assert.LessOrEqual(t, st.Comparisons, 6)
}

func TestSortednessAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := rng.Intn(9)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(10)
		}
		want := make([]int, n)
		copy(want, values)
		sort.Ints(want)
		maxPairs := n * (n - 1) / 2

		for _, a := range types.Algorithms {
			st, seq := run(t, a, values...)
			require.Equal(t, want, item.Values(seq), "%s on %v", a, values)
			switch a {
			case types.Selection:
				if n >= 2 {
					assert.Equal(t, maxPairs, st.Comparisons, "%s on %v", a, values)
				}
			default:
				assert.LessOrEqual(t, st.Comparisons, maxPairs, "%s on %v", a, values)
			}
			assert.LessOrEqual(t, st.Swaps, maxPairs, "%s on %v", a, values)
		}
	}
}

func TestHighlightThenAction(t *testing.T) {
	st := NewState(types.Bubble)
	seq := item.StaticSeq(2, 1, 3)

	require.True(t, Step(&st, seq, nil))
	assert.Equal(t, types.PhaseAction, st.Phase)
	assert.Equal(t, 1, st.Comparisons)
	assert.Zero(t, st.Swaps)
	assert.Equal(t, types.EmphasisActive, seq[0].(*item.Static).Emphasis())
	assert.Equal(t, types.EmphasisActive, seq[1].(*item.Static).Emphasis())
	assert.Equal(t, types.EmphasisNone, seq[2].(*item.Static).Emphasis())

	require.True(t, Step(&st, seq, nil))
	assert.Equal(t, types.PhaseHighlight, st.Phase)
	assert.Equal(t, 1, st.Swaps)
	assert.True(t, st.SwapPending)
	assert.Equal(t, []int{1, 2, 3}, item.Values(seq))
	assert.Equal(t, 0, seq[0].(*item.Static).Slot())
	assert.Equal(t, 1, seq[1].(*item.Static).Slot())
}

func TestNotifications(t *testing.T) {
	var got []event.Type
	notify := func(tp event.Type, _ interface{}) { got = append(got, tp) }

	st := NewState(types.Selection)
	seq := item.StaticSeq(2, 1)
	for Step(&st, seq, notify) {
		st.SwapPending = false
	}

	assert.Equal(t, []event.Type{
		event.TypeComparison,
		event.TypeNewMinimum,
		event.TypeSwap,
		event.TypePassComplete,
		event.TypeSortComplete,
	}, got)
}

func TestCompletionAlignsEveryItem(t *testing.T) {
	_, seq := run(t, types.Insertion, 3, 1, 2)
	for i, it := range seq {
		s := it.(*item.Static)
		assert.Equal(t, i, s.Slot())
		assert.Equal(t, types.EmphasisSorted, s.Emphasis())
	}
}

func TestStepAfterCompleteIsNoop(t *testing.T) {
	st, seq := run(t, types.Bubble, 2, 1)
	before := st
	assert.False(t, Step(&st, seq, nil))
	assert.Equal(t, before, st)
}

func TestInvariantViolationPanics(t *testing.T) {
	st := NewState(types.Bubble)
	st.Phase = types.PhaseAction
	st.Bubble.Current = 5
	seq := item.StaticSeq(1, 2)

	assert.PanicsWithValue(t, InvariantError{Op: "bubble", Index: 6, Len: 2}, func() {
		Step(&st, seq, nil)
	})
}

func TestActiveIndices(t *testing.T) {
	tests := []struct {
		name string
		st   State
		n    int
		want []int
	}{
		{"bubble start", NewState(types.Bubble), 4, []int{0, 1}},
		{"bubble past tail", State{Algorithm: types.Bubble, Bubble: BubbleState{Current: 2, SortedTail: 1}}, 4, nil},
		{"insertion start", NewState(types.Insertion), 3, []int{0, 1}},
		{"insertion at zero", State{Algorithm: types.Insertion, Insertion: InsertionState{Outer: 2, Inner: 0}}, 3, nil},
		{"selection", State{Algorithm: types.Selection, Selection: SelectionState{Current: 3, Min: 1}}, 4, []int{3, 1}},
		{"selection exhausted", State{Algorithm: types.Selection, Selection: SelectionState{Current: 4, Min: 1}}, 4, nil},
		{"complete", State{Algorithm: types.Bubble, Complete: true}, 4, nil},
		{"too short", NewState(types.Bubble), 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveIndices(tt.st, tt.n))
		})
	}
}

func TestEmphasisComplete(t *testing.T) {
	got := Emphasis(State{Complete: true}, 3)
	assert.Equal(t, []types.Emphasis{types.EmphasisSorted, types.EmphasisSorted, types.EmphasisSorted}, got)
}
