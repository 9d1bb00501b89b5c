package algorithm

import (
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// placed reports whether the element at inner no longer needs to sink.
func placed(seq []item.Item, inner int) bool {
	return inner == 0 || seq[inner-1].Value() <= seq[inner].Value()
}

func stepInsertion(st *State, seq []item.Item, notify Notify) bool {
	in := &st.Insertion
	n := len(seq)

	if st.Phase == types.PhaseHighlight {
		checkIndex("insertion", in.Inner, n)
		if placed(seq, in.Inner) {
			in.Outer++
			passComplete(st, notify, in.Outer)
			if in.Outer >= n {
				return complete(st, seq, notify)
			}
			in.Inner = in.Outer
		}
		highlight(st, seq, notify, in.Inner-1, in.Inner)
		return true
	}

	checkIndex("insertion", in.Inner, n)
	if in.Inner > 0 && seq[in.Inner-1].Value() > seq[in.Inner].Value() {
		swap(st, seq, notify, in.Inner-1, in.Inner)
	}
	if in.Inner > 0 {
		in.Inner--
	}
	st.Phase = types.PhaseHighlight
	return true
}
