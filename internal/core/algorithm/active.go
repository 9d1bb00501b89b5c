package algorithm

import "github.com/bethropolis/stepsort/internal/types"

// ActiveIndices re-derives which slots carry Active emphasis for a cursor,
// using the same index rules each algorithm's highlight phase uses. Pairs
// that would fall outside the unsorted region yield nil.
func ActiveIndices(st State, n int) []int {
	if st.Complete || n < 2 {
		return nil
	}
	var i, j int
	switch st.Algorithm {
	case types.Bubble:
		i, j = st.Bubble.Current, st.Bubble.Current+1
		if j >= n-st.Bubble.SortedTail {
			return nil
		}
	case types.Insertion:
		i, j = st.Insertion.Inner-1, st.Insertion.Inner
	case types.Selection:
		i, j = st.Selection.Current, st.Selection.Min
	default:
		return nil
	}
	if i < 0 || j < 0 || i >= n || j >= n {
		return nil
	}
	return []int{i, j}
}

// Emphasis returns the full emphasis vector a cursor implies.
func Emphasis(st State, n int) []types.Emphasis {
	out := make([]types.Emphasis, n)
	if st.Complete {
		for i := range out {
			out[i] = types.EmphasisSorted
		}
		return out
	}
	for _, idx := range ActiveIndices(st, n) {
		out[idx] = types.EmphasisActive
	}
	return out
}
