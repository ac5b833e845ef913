// Package status keeps the tracker's observable run state in memory: the
// latest sample, the alarm state and the line counters the periodic status
// log reports.
package status

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the run state.
type Snapshot struct {
	Threshold    float64
	Price        float64
	ChangePct    float64
	HasSample    bool
	Alerting     bool
	Acknowledged bool

	LinesTotal   int
	LinesValid   int
	LinesInvalid int
	AlertsTotal  int

	LastSampleAt time.Time
}

// Store is a mutex-guarded Snapshot shared between the feed loop and the
// status logger.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewStore(threshold float64) *Store {
	return &Store{snap: Snapshot{Threshold: threshold}}
}

// RecordValid notes one well-formed line and the sample it carried.
func (s *Store) RecordValid(price, change float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LinesTotal++
	s.snap.LinesValid++
	s.snap.Price = price
	s.snap.ChangePct = change
	s.snap.HasSample = true
	s.snap.LastSampleAt = at
}

// RecordInvalid notes one line that failed to parse.
func (s *Store) RecordInvalid() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LinesTotal++
	s.snap.LinesInvalid++
}

// RecordAlert notes one finished alert session.
func (s *Store) RecordAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.AlertsTotal++
}

// SetAlarm mirrors the alarm machine's externally visible state.
func (s *Store) SetAlarm(alerting, acknowledged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Alerting = alerting
	s.snap.Acknowledged = acknowledged
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
