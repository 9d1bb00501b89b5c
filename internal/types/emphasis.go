// Package types holds small value types shared across the engine and the UI.
package types

// Emphasis is the cosmetic state of an item. It has no bearing on sort order.
type Emphasis int

const (
	EmphasisNone   Emphasis = iota
	EmphasisActive          // Item takes part in the current comparison
	EmphasisSorted          // Item is in its final slot
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisActive:
		return "active"
	case EmphasisSorted:
		return "sorted"
	default:
		return "none"
	}
}
