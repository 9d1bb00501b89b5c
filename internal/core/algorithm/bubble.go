package algorithm

import (
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

func stepBubble(st *State, seq []item.Item, notify Notify) bool {
	b := &st.Bubble
	n := len(seq)

	if st.Phase == types.PhaseHighlight {
		if b.Current+1 >= n-b.SortedTail {
			b.SortedTail++
			b.Current = 0
			passComplete(st, notify, b.SortedTail)
		}
		if b.SortedTail >= n-1 {
			return complete(st, seq, notify)
		}
		highlight(st, seq, notify, b.Current, b.Current+1)
		return true
	}

	checkIndex("bubble", b.Current+1, n)
	if seq[b.Current].Value() > seq[b.Current+1].Value() {
		swap(st, seq, notify, b.Current, b.Current+1)
	}
	b.Current++
	st.Phase = types.PhaseHighlight
	return true
}
