// Package item defines the contract the step engine needs from the things it sorts.
//
// The engine never owns items. It only reorders handles, asks them to move to a
// slot, and changes their emphasis. Motion is asynchronous: after MoveTo an item
// reports IsAnimating until it has visually settled. Implementations must always
// settle eventually; the engine waits on them without a timeout.
package item

import "github.com/bethropolis/stepsort/internal/types"

// Item is one sortable value as seen by the engine.
type Item interface {
	Value() int
	IsAnimating() bool
	MoveTo(slot int)
	SetEmphasis(e types.Emphasis)
}

// Settled reports whether no item in seq is still animating.
func Settled(seq []Item) bool {
	for _, it := range seq {
		if it.IsAnimating() {
			return false
		}
	}
	return true
}

// Values returns the values of seq in order.
func Values(seq []Item) []int {
	out := make([]int, len(seq))
	for i, it := range seq {
		out[i] = it.Value()
	}
	return out
}

// SetAll applies the same emphasis to every item.
func SetAll(seq []Item, e types.Emphasis) {
	for _, it := range seq {
		it.SetEmphasis(e)
	}
}

// Align asks every item to move to the slot matching its index.
func Align(seq []Item) {
	for i, it := range seq {
		it.MoveTo(i)
	}
}
