// Package core holds the step engine: it drives one sorting algorithm a
// micro-step at a time, waits for swap animations to settle between steps,
// and keeps an undo history of every forward step.
package core

import (
	"github.com/bethropolis/stepsort/internal/core/algorithm"
	"github.com/bethropolis/stepsort/internal/core/history"
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/narration"
	"github.com/bethropolis/stepsort/internal/types"
)

// Config holds construction-time settings for an Engine.
type Config struct {
	Algorithm    types.Algorithm
	HistoryLimit int // Max undo depth; 0 means unbounded
}

// Engine is the step-synchronized sorting engine. It is not safe for
// concurrent use: the driver must serialize every call.
type Engine struct {
	seq     []item.Item // *handle values, reordered in place
	state   algorithm.State
	history *history.Manager

	eventManager *event.Manager
	narrator     narration.Narrator
}

// NewEngine creates an engine with an empty sequence.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		state:   algorithm.NewState(cfg.Algorithm),
		history: history.NewManager(cfg.HistoryLimit),
	}
	return e
}

// SetEventManager attaches the bus structured events are dispatched on.
func (e *Engine) SetEventManager(m *event.Manager) { e.eventManager = m }

// SetNarrator attaches the text sink. nil detaches it.
func (e *Engine) SetNarrator(n narration.Narrator) { e.narrator = n }

// Configure adopts items as the sequence to sort. The engine takes the order,
// not the items. Cursor, counters, history and emphasis are all cleared.
func (e *Engine) Configure(items []item.Item) {
	e.seq = make([]item.Item, len(items))
	for i, it := range items {
		e.seq[i] = &handle{Item: it}
	}
	e.reset()
	logger.DebugTagf("engine", "Engine: configured %d items for %s", len(e.seq), e.state.Algorithm)
}

// SetAlgorithm switches the active algorithm and resets like Configure,
// keeping the current order. Any pending swap animation is abandoned.
func (e *Engine) SetAlgorithm(a types.Algorithm) {
	prev := e.state.Algorithm
	e.state.Algorithm = a
	e.reset()
	logger.DebugTagf("engine", "Engine: algorithm %s -> %s", prev, a)
	e.notify(event.TypeAlgorithmChanged, event.AlgorithmChangedData{From: prev, To: a})
}

// Reset rewinds the current algorithm on the current order.
func (e *Engine) Reset() {
	e.reset()
}

func (e *Engine) reset() {
	e.state = algorithm.NewState(e.state.Algorithm)
	e.history.Clear()
	item.SetAll(e.seq, types.EmphasisNone)
	e.notify(event.TypeReset, event.ResetData{Algorithm: e.state.Algorithm, Count: len(e.seq)})
}

// Step advances exactly one micro-step. It returns false when this call
// completes the sort or the sort was already complete, and true otherwise,
// including when progress is blocked on a swap that has not settled.
func (e *Engine) Step() bool {
	if len(e.seq) < 2 || e.state.Complete {
		return false
	}

	if e.state.SwapPending {
		if !item.Settled(e.seq) {
			return true
		}
		e.state.SwapPending = false
		item.SetAll(e.seq, types.EmphasisNone)
	}

	e.history.Push(e.snapshot())
	more := algorithm.Step(&e.state, e.seq, e.notify)
	logger.DebugTagf("engine", "Engine: %s %s step -> comparisons=%d swaps=%d complete=%v",
		e.state.Algorithm, e.state.Phase, e.state.Comparisons, e.state.Swaps, e.state.Complete)
	return more
}

// Undo restores the most recent snapshot and asks every item to move to its
// restored slot. It returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}

	e.state = snap.State()
	copy(e.seq, snap.Order())

	if e.history.Len() == 0 {
		item.SetAll(e.seq, types.EmphasisNone)
	} else {
		for i, emph := range algorithm.Emphasis(e.state, len(e.seq)) {
			e.seq[i].SetEmphasis(emph)
		}
	}
	item.Align(e.seq)

	logger.DebugTagf("engine", "Engine: undo -> comparisons=%d swaps=%d depth=%d",
		e.state.Comparisons, e.state.Swaps, e.history.Len())
	e.notify(event.TypeUndo, event.UndoData{
		Depth:       e.history.Len(),
		Comparisons: e.state.Comparisons,
		Swaps:       e.state.Swaps,
	})
	return true
}

func (e *Engine) snapshot() history.Snapshot {
	return history.NewSnapshot(e.state, e.seq, e.Emphasis())
}

// notify fans a transition out to the event bus and the narrator. Neither
// may affect engine state: a panicking narrator is logged and ignored.
func (e *Engine) notify(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
	if e.narrator == nil {
		return
	}
	msg, ok := narration.Describe(t, data)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Engine: narrator panicked on %v: %v", t, r)
		}
	}()
	e.narrator.Narrate(msg)
}
