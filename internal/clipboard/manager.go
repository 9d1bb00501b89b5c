// Package clipboard copies text to the system clipboard, keeping an
// internal register as the fallback and as the source of truth for Contents.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/stepsort/internal/logger"
)

// Manager handles clipboard operations.
type Manager struct {
	mu        sync.Mutex
	useSystem bool
	register  string

	writeSystem func(string) error
}

// NewManager creates a manager. useSystem also requires a working system
// clipboard; without one, copies land in the internal register only.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem:   useSystem && !clipboard.Unsupported,
		writeSystem: clipboard.WriteAll,
	}
}

// Copy stores text and reports whether it also reached the system clipboard.
func (m *Manager) Copy(text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = text
	if !m.useSystem {
		logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes to register", len(text))
		return false
	}
	if err := m.writeSystem(text); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed, kept internal copy: %v", err)
		return false
	}
	logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes to system clipboard", len(text))
	return true
}

// Contents returns the last copied text.
func (m *Manager) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.register
}
