package storage

import (
	"context"
	"sync"
)

// MemoryRecorder keeps everything in process memory. Tests use it to assert
// on what the tracker recorded.
type MemoryRecorder struct {
	mu      sync.Mutex
	samples []Sample
	alerts  []Alert
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		samples: make([]Sample, 0),
		alerts:  make([]Alert, 0),
	}
}

func (m *MemoryRecorder) RecordSample(_ context.Context, s Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, s)
	return nil
}

func (m *MemoryRecorder) RecordAlert(_ context.Context, a Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, a)
	return nil
}

func (m *MemoryRecorder) Samples() []Sample {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to avoid race
	out := make([]Sample, len(m.samples))
	copy(out, m.samples)
	return out
}

func (m *MemoryRecorder) Alerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to avoid race
	out := make([]Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

func (m *MemoryRecorder) Close() error { return nil }
