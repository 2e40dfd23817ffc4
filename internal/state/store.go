package state

import (
	"sync"
	"time"
)

// LogSummary describes one log in the collection listing.
type LogSummary struct {
	Name    string
	Entries int
}

// Snapshot represents the latest log-collection data available to the UI.
type Snapshot struct {
	Logs        []LogSummary
	LastUpdated time.Time
	LastError   error
}

// Store coordinates updates to the snapshot. Bubble Tea commands run
// on their own goroutines, so access is guarded.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// listing is kept but the error is recorded for visibility.
func (s *Store) Update(logs []LogSummary, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}
	s.snapshot.Logs = cloneLogs(logs)
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Logs = cloneLogs(s.snapshot.Logs)
	return snap
}

func cloneLogs(logs []LogSummary) []LogSummary {
	if len(logs) == 0 {
		return nil
	}
	dup := make([]LogSummary, len(logs))
	copy(dup, logs)
	return dup
}
