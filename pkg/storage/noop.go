package storage

import "context"

// NoopRecorder drops everything. It stands in when recording is disabled or
// the database is unreachable at startup.
type NoopRecorder struct{}

func (NoopRecorder) RecordSample(context.Context, Sample) error { return nil }
func (NoopRecorder) RecordAlert(context.Context, Alert) error   { return nil }
func (NoopRecorder) Close() error                               { return nil }
