package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/cakes/internal/cakes"
)

// Phase is the screen-level state of the catalogue load.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCheckingConnectivity
	PhaseFetching
	PhaseParsing
	PhaseDisplaying
	PhaseNoConnection
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCheckingConnectivity:
		return "checking connectivity"
	case PhaseFetching:
		return "fetching"
	case PhaseParsing:
		return "parsing"
	case PhaseDisplaying:
		return "displaying"
	case PhaseNoConnection:
		return "no connection"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Busy reports whether a load is in flight.
func (p Phase) Busy() bool {
	return p == PhaseCheckingConnectivity || p == PhaseFetching || p == PhaseParsing
}

// Snapshot is an immutable view of the store.
type Snapshot struct {
	Records     []cakes.Record
	Phase       Phase
	LastError   error
	LastUpdated time.Time
}

// Store owns the backing list shown by the UI. Writers replace the list
// wholesale; every change is signalled on Changed.
type Store struct {
	mu       sync.RWMutex
	records  []cakes.Record
	phase    Phase
	lastErr  error
	updated  time.Time
	initOnce sync.Once
	changed  chan struct{}
}

// Changed returns a channel that receives after each change. Signals
// coalesce: a reader that falls behind sees a single pending signal.
func (s *Store) Changed() <-chan struct{} {
	s.init()
	return s.changed
}

// Count returns the number of records in the backing list.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ItemAt returns the record at index i.
func (s *Store) ItemAt(i int) (cakes.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.records) {
		return cakes.Record{}, false
	}
	return s.records[i], true
}

// Records returns a copy of the backing list.
func (s *Store) Records() []cakes.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// ReplaceAll swaps the backing list for records and moves to
// PhaseDisplaying. A nil slice is treated as empty.
func (s *Store) ReplaceAll(records []cakes.Record) {
	s.mu.Lock()
	s.records = cloneRecords(records)
	s.phase = PhaseDisplaying
	s.lastErr = nil
	s.updated = time.Now()
	s.mu.Unlock()

	s.notify()
}

// SetPhase records a phase transition.
func (s *Store) SetPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.updated = time.Now()
	s.mu.Unlock()

	s.notify()
}

// Fail empties the backing list and records err.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	s.records = nil
	s.phase = PhaseFailed
	s.lastErr = err
	s.updated = time.Now()
	s.mu.Unlock()

	s.notify()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Records:     cloneRecords(s.records),
		Phase:       s.phase,
		LastUpdated: s.updated,
	}
	if s.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return snap
}

func (s *Store) init() {
	s.initOnce.Do(func() {
		s.changed = make(chan struct{}, 1)
	})
}

func (s *Store) notify() {
	s.init()
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

func cloneRecords(records []cakes.Record) []cakes.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]cakes.Record, len(records))
	copy(dup, records)
	return dup
}
