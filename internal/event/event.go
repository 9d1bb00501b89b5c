// internal/event/event.go
package event

import "github.com/bethropolis/stepsort/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Engine events, fired from inside Step/Undo/Configure
	TypeComparison       // A pair was selected for comparison
	TypeSwap             // Two items exchanged slots
	TypeNewMinimum       // Selection sort found a smaller value
	TypePassComplete     // A bubble/selection pass or an insertion outer step finished
	TypeSortComplete     // The sequence is sorted
	TypeUndo             // A snapshot was restored
	TypeReset            // Configure or SetAlgorithm cleared the engine
	TypeAlgorithmChanged // The active algorithm changed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeComparison:       "comparison",
	TypeSwap:             "swap",
	TypeNewMinimum:       "new_minimum",
	TypePassComplete:     "pass_complete",
	TypeSortComplete:     "sort_complete",
	TypeUndo:             "undo",
	TypeReset:            "reset",
	TypeAlgorithmChanged: "algorithm_changed",
	TypeAppReady:         "app_ready",
	TypeAppQuit:          "app_quit",
	TypeThemeChanged:     "theme_changed",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ComparisonData names the pair about to be compared.
type ComparisonData struct {
	Algorithm   types.Algorithm
	Left, Right int // Indices
	LeftValue   int
	RightValue  int
}

// SwapData names the slots that were exchanged. Values are post-swap.
type SwapData struct {
	Algorithm   types.Algorithm
	Left, Right int
	LeftValue   int
	RightValue  int
}

// NewMinimumData is the new running minimum of a selection pass.
type NewMinimumData struct {
	Index int
	Value int
}

// PassCompleteData reports how many elements are now fixed.
type PassCompleteData struct {
	Algorithm types.Algorithm
	Fixed     int
}

// SortCompleteData carries the final counters.
type SortCompleteData struct {
	Algorithm   types.Algorithm
	Comparisons int
	Swaps       int
}

// UndoData reports the history depth left after an undo.
type UndoData struct {
	Depth       int
	Comparisons int
	Swaps       int
}

// ResetData describes the engine after a reset.
type ResetData struct {
	Algorithm types.Algorithm
	Count     int
}

// AlgorithmChangedData carries the new and previous selection.
type AlgorithmChangedData struct {
	From, To types.Algorithm
}

// ThemeChangedData carries the name of the new theme.
type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}
