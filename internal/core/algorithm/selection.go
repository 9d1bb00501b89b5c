package algorithm

import (
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

func stepSelection(st *State, seq []item.Item, notify Notify) bool {
	s := &st.Selection
	n := len(seq)

	if st.Phase == types.PhaseHighlight {
		if s.Current < n {
			highlight(st, seq, notify, s.Current, s.Min)
			return true
		}

		// Pass exhausted: move the minimum into the head slot.
		if s.Min != s.SortedHead {
			swap(st, seq, notify, s.Min, s.SortedHead)
		}
		s.SortedHead++
		passComplete(st, notify, s.SortedHead)
		if s.SortedHead >= n-1 {
			return complete(st, seq, notify)
		}
		s.Current = s.SortedHead + 1
		s.Min = s.SortedHead
		return true
	}

	checkIndex("selection", s.Current, n)
	checkIndex("selection", s.Min, n)
	if seq[s.Current].Value() < seq[s.Min].Value() {
		s.Min = s.Current
		notify(event.TypeNewMinimum, event.NewMinimumData{Index: s.Min, Value: seq[s.Min].Value()})
	}
	s.Current++
	st.Phase = types.PhaseHighlight
	return true
}
