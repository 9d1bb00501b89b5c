// Package narration turns engine events into short human-readable lines.
package narration

import (
	"fmt"

	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/types"
)

// Narrator receives one line of progress text per meaningful transition.
// It is purely observational.
type Narrator interface {
	Narrate(msg string)
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(msg string)

func (f NarratorFunc) Narrate(msg string) { f(msg) }

// Describe renders an event as text. ok is false for events that carry no
// narration (for example lifecycle events).
func Describe(t event.Type, data interface{}) (msg string, ok bool) {
	switch d := data.(type) {
	case event.ComparisonData:
		return fmt.Sprintf("Comparing %d and %d (positions %d and %d)", d.LeftValue, d.RightValue, d.Left, d.Right), true
	case event.SwapData:
		return fmt.Sprintf("Swapped positions %d and %d: now %d, %d", d.Left, d.Right, d.LeftValue, d.RightValue), true
	case event.NewMinimumData:
		return fmt.Sprintf("New minimum %d at position %d", d.Value, d.Index), true
	case event.PassCompleteData:
		return describePass(d), true
	case event.SortCompleteData:
		return fmt.Sprintf("%s sort complete: %d comparisons, %d swaps", d.Algorithm.Title(), d.Comparisons, d.Swaps), true
	case event.UndoData:
		return fmt.Sprintf("Undo: %d comparisons, %d swaps (%d steps left to undo)", d.Comparisons, d.Swaps, d.Depth), true
	case event.AlgorithmChangedData:
		return fmt.Sprintf("Algorithm: %s", d.To.Title()), true
	case event.ResetData:
		return fmt.Sprintf("Ready: %s sort on %d items", d.Algorithm.Title(), d.Count), true
	}
	return "", false
}

func describePass(d event.PassCompleteData) string {
	switch d.Algorithm {
	case types.Insertion:
		return fmt.Sprintf("Prefix of %d sorted, inserting next element", d.Fixed)
	case types.Selection:
		return fmt.Sprintf("Pass complete: %d smallest in place", d.Fixed)
	default:
		return fmt.Sprintf("Pass complete: %d largest in place", d.Fixed)
	}
}

// Recorder is a Narrator that keeps the last N lines. The headless runner
// uses it to print only the tail of a run.
type Recorder struct {
	lines []string
	limit int
}

// NewRecorder keeps up to limit lines; limit <= 0 keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Narrate(msg string) {
	r.lines = append(r.lines, msg)
	if r.limit > 0 && len(r.lines) > r.limit {
		r.lines = r.lines[len(r.lines)-r.limit:]
	}
}

// Lines returns a copy of the recorded lines, oldest first.
func (r *Recorder) Lines() []string {
	return append([]string(nil), r.lines...)
}

// Last returns the most recent line, or "".
func (r *Recorder) Last() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}
