package item

import "github.com/bethropolis/stepsort/internal/types"

// Static is an Item whose moves complete instantly. It backs headless runs and tests.
type Static struct {
	value    int
	slot     int
	emphasis types.Emphasis
	moves    int

	// Busy, when positive, is the number of IsAnimating polls that still report
	// true after a MoveTo. It simulates a slow animation.
	Busy    int
	pending int

	// Stuck keeps the item animating until cleared.
	Stuck bool
}

// NewStatic creates a settled item at the given slot.
func NewStatic(value, slot int) *Static {
	return &Static{value: value, slot: slot}
}

// StaticSeq builds a sequence of Static items from values, each at its own index.
func StaticSeq(values ...int) []Item {
	seq := make([]Item, len(values))
	for i, v := range values {
		seq[i] = NewStatic(v, i)
	}
	return seq
}

// Value returns the fixed value.
func (s *Static) Value() int { return s.value }

// IsAnimating is true while Stuck or for Busy polls after a move.
func (s *Static) IsAnimating() bool {
	if s.Stuck {
		return true
	}
	if s.pending > 0 {
		s.pending--
		return true
	}
	return false
}

// MoveTo records slot and arms the Busy countdown.
func (s *Static) MoveTo(slot int) {
	s.slot = slot
	s.moves++
	s.pending = s.Busy
}

// SetEmphasis records e.
func (s *Static) SetEmphasis(e types.Emphasis) { s.emphasis = e }

// Slot is the last slot the item was asked to move to.
func (s *Static) Slot() int { return s.slot }

// Emphasis is the current emphasis.
func (s *Static) Emphasis() types.Emphasis { return s.emphasis }

// Moves counts MoveTo calls.
func (s *Static) Moves() int { return s.moves }
