/*
store.go - Snapshot-owning record store with write-through persistence

PURPOSE:
  Owns the current Snapshot and serializes all writes. Each mutation reads
  the current snapshot, computes a whole new one, persists it through the
  Backend, and only then installs it as current. A failed persist leaves the
  prior snapshot in place: operations fully succeed or change nothing.

LOAD-OR-SEED:
  Open() asks the Backend for a previously persisted snapshot. Absent,
  unreadable, or structurally invalid snapshots are discarded in favor of
  SeedSnapshot() — never surfaced as an error. The worst outcome of a bad
  persisted state is a fresh demo dataset.

CONCURRENCY:
  Single-writer critical section around mutations (sync.Mutex). Readers get
  a deep copy of the latest completed snapshot; they never observe a
  partially-updated collection.

IMPLEMENTATIONS OF Backend:
  - hr/store/memory.go:   In-memory (tests, dev)
  - store/sqlite/:        SQLite single-row snapshot document

SEE ALSO:
  - mutations.go: The five write operations built on mutate()
*/
package hr

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SnapshotKey versions the persisted snapshot layout. Backends store exactly
// one snapshot under this key; bumping it orphans old layouts, which then
// fall back to seed data.
const SnapshotKey = "ems.hr.v1"

const reviewedAtLayout = time.RFC3339

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Backend persists snapshots. Load returns (nil, nil) when no snapshot has
// ever been saved.
type Backend interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// Clock supplies the current time. Mutations default dates and times from
// it, so tests can pin "today".
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// =============================================================================
// STORE
// =============================================================================

// Store is the process-local owner of the record collections.
type Store struct {
	backend Backend
	clock   Clock

	mu      sync.Mutex
	current *Snapshot
}

// Open loads the persisted snapshot from backend, falling back to seed data
// when none exists or the persisted value is structurally invalid. The seed
// fallback is written through immediately so the next boot is a clean load.
func Open(backend Backend, clock Clock) (*Store, error) {
	if clock == nil {
		clock = SystemClock{}
	}

	snap, err := backend.Load()
	if err != nil || !validSnapshot(snap) {
		snap = SeedSnapshot(clock)
		if err := backend.Save(snap); err != nil {
			return nil, fmt.Errorf("persist seed snapshot: %w", err)
		}
	}

	return &Store{backend: backend, clock: clock, current: snap}, nil
}

// validSnapshot rejects persisted values missing a required collection.
// A nil employees slice means the snapshot predates this layout (or was
// corrupted); everything else may legitimately be empty.
func validSnapshot(s *Snapshot) bool {
	return s != nil && s.Employees != nil
}

// Today returns the store clock's current day key. Handlers use it so
// date defaults agree with the mutations'.
func (s *Store) Today() string {
	return s.clock.Now().Format("2006-01-02")
}

// Snapshot returns a deep copy of the latest completed snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// mutate runs fn over a copy of the current snapshot, persists the result,
// and installs it. fn returning false signals a no-op: nothing is persisted
// and the current snapshot is untouched.
func (s *Store) mutate(fn func(next *Snapshot) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if !fn(next) {
		return nil
	}
	if err := s.backend.Save(next); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.current = next
	return nil
}

// =============================================================================
// ID GENERATION
// =============================================================================

// newID mints a collision-free identifier with a readable prefix, e.g.
// "leave_1f4c...". UUIDv4 gives the random component; the prefix keeps
// seeded and generated ids distinguishable in persisted snapshots.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
