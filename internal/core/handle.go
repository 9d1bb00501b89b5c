package core

import (
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
)

// handle wraps a caller's item so the engine can read back the emphasis it
// last applied. Snapshots need that; the Item contract only lets us set it.
type handle struct {
	item.Item
	emphasis types.Emphasis
}

func (h *handle) SetEmphasis(e types.Emphasis) {
	h.emphasis = e
	h.Item.SetEmphasis(e)
}

func unwrap(it item.Item) item.Item {
	if h, ok := it.(*handle); ok {
		return h.Item
	}
	return it
}
