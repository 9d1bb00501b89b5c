// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/stepsort/internal/logger"
)

// Handler is a subscriber callback. The return value reports whether the
// event was consumed; dispatch currently ignores it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// SubscribeMany registers one handler for several event types.
func (m *Manager) SubscribeMany(handler Handler, eventTypes ...Type) {
	for _, t := range eventTypes {
		m.Subscribe(t, handler)
	}
}

// Dispatch sends an event to all registered handlers for its type, synchronously.
// A panicking handler is logged and skipped; the remaining handlers still run.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	ev := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	// Copy so a handler may subscribe during dispatch
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	if len(handlersCopy) == 0 {
		return
	}

	for _, handler := range handlersCopy {
		callHandler(handler, ev)
	}
}

func callHandler(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Event Manager: handler for %v panicked: %v", ev.Type, r)
		}
	}()
	h(ev)
}
