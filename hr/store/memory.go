// Package store provides Backend implementations.
package store

import (
	"sync"

	"github.com/emsdesk/hr-engine/hr"
)

// =============================================================================
// MEMORY BACKEND - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps the persisted snapshot in process memory. Load and Save both
// deep-copy so the backend never shares state with the store.
type Memory struct {
	mu   sync.Mutex
	snap *hr.Snapshot

	// Saves counts successful Save calls; tests assert write-through.
	Saves int
}

func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the last saved snapshot, or (nil, nil) when nothing has been
// saved yet.
func (m *Memory) Load() (*hr.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, nil
	}
	return m.snap.Clone(), nil
}

// Save replaces the persisted snapshot in full.
func (m *Memory) Save(s *hr.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s.Clone()
	m.Saves++
	return nil
}

// Seed pre-populates the backend, as if a previous process had persisted s.
func (m *Memory) Seed(s *hr.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s.Clone()
}
