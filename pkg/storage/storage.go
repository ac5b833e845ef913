// Package storage defines where parsed samples and finished alert sessions
// go once the panel has consumed them. Recording is strictly an observer:
// the tracker behaves identically with a failing or disabled recorder.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sample is one successfully parsed feed message.
type Sample struct {
	Price     float64
	ChangePct float64
	Raw       string
	At        time.Time
}

// Alert is one alarm session, bracketed by its entry and exit.
type Alert struct {
	ID         uuid.UUID
	Threshold  int
	EntryPrice float64
	ExitPrice  float64
	Reason     string // "price" or "button"
	StartedAt  time.Time
	EndedAt    time.Time
}

// Recorder persists samples and alert sessions.
type Recorder interface {
	RecordSample(ctx context.Context, s Sample) error
	RecordAlert(ctx context.Context, a Alert) error
	Close() error
}
