package history

import "github.com/bethropolis/stepsort/internal/logger"

// Manager is the undo stack. It is unbounded unless a max depth is set, in
// which case the oldest snapshot is evicted first. It carries no lock: the
// engine that owns it is driven from a single goroutine.
type Manager struct {
	snapshots []Snapshot
	maxDepth  int // 0 means unbounded
}

// NewManager creates a history manager. maxDepth <= 0 means unbounded.
func NewManager(maxDepth int) *Manager {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Manager{maxDepth: maxDepth}
}

// Push records a snapshot on top of the stack.
func (m *Manager) Push(s Snapshot) {
	m.snapshots = append(m.snapshots, s)
	if m.maxDepth > 0 && len(m.snapshots) > m.maxDepth {
		evicted := len(m.snapshots) - m.maxDepth
		// Shift down so the backing array does not keep evicted entries alive
		n := copy(m.snapshots, m.snapshots[evicted:])
		clear(m.snapshots[n:])
		m.snapshots = m.snapshots[:n]
		logger.DebugTagf("history", "History: evicted %d snapshot(s), depth capped at %d", evicted, m.maxDepth)
	}
	logger.DebugTagf("history", "History: pushed snapshot. Depth: %d", len(m.snapshots))
}

// Pop removes and returns the most recent snapshot.
func (m *Manager) Pop() (Snapshot, bool) {
	if len(m.snapshots) == 0 {
		logger.DebugTagf("history", "History: nothing to undo.")
		return Snapshot{}, false
	}
	last := len(m.snapshots) - 1
	s := m.snapshots[last]
	m.snapshots[last] = Snapshot{}
	m.snapshots = m.snapshots[:last]
	logger.DebugTagf("history", "History: popped snapshot. Depth: %d", len(m.snapshots))
	return s, true
}

// Peek returns the most recent snapshot without removing it.
func (m *Manager) Peek() (Snapshot, bool) {
	if len(m.snapshots) == 0 {
		return Snapshot{}, false
	}
	return m.snapshots[len(m.snapshots)-1], true
}

// Clear drops every snapshot, keeping allocated capacity.
func (m *Manager) Clear() {
	clear(m.snapshots)
	m.snapshots = m.snapshots[:0]
	logger.DebugTagf("history", "History: cleared.")
}

// Len is the current depth.
func (m *Manager) Len() int { return len(m.snapshots) }

// CanUndo reports whether Pop would return a snapshot.
func (m *Manager) CanUndo() bool { return len(m.snapshots) > 0 }

// MaxDepth is the configured cap, 0 when unbounded.
func (m *Manager) MaxDepth() int { return m.maxDepth }
