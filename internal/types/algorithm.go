package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects which step function drives the engine.
type Algorithm int

const (
	Bubble Algorithm = iota
	Insertion
	Selection
)

// Algorithms lists every selectable algorithm in menu order.
var Algorithms = []Algorithm{Bubble, Insertion, Selection}

func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Title is the capitalised display name.
func (a Algorithm) Title() string {
	s := a.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseAlgorithm accepts the lowercase name or a short prefix ("bub", "ins", "sel").
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Bubble, fmt.Errorf("%w: empty name", ErrUnknownAlgorithm)
	}
	for _, a := range Algorithms {
		if strings.HasPrefix(a.String(), name) {
			return a, nil
		}
	}
	return Bubble, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Phase is the sub-step a cursor is in. One Step call advances one phase.
type Phase int

const (
	PhaseHighlight Phase = iota // Pick the next pair and mark it active
	PhaseAction                 // Evaluate the pair, swap if out of order
)

func (p Phase) String() string {
	if p == PhaseAction {
		return "action"
	}
	return "highlight"
}
