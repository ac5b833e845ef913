package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage/postgres"
)

func TestToSampleRecord(t *testing.T) {
	at := time.Now()
	s := storage.Sample{
		Price:     45230.50,
		ChangePct: 1.25,
		Raw:       "BTC Price: $45230.50, 24h Change: 1.25%",
		At:        at,
	}

	rec := postgres.ToSampleRecord(s)
	if rec.Price != 45230.50 || rec.ChangePct != 1.25 {
		t.Errorf("unexpected record values: %+v", rec)
	}
	if rec.Raw != s.Raw || !rec.At.Equal(at) {
		t.Errorf("raw/at not preserved: %+v", rec)
	}
}

func TestToAlertRecord(t *testing.T) {
	id := uuid.New()
	started := time.Now().Add(-3 * time.Second)
	ended := time.Now()
	a := storage.Alert{
		ID:         id,
		Threshold:  70000,
		EntryPrice: 65000,
		ExitPrice:  70100,
		Reason:     "price",
		StartedAt:  started,
		EndedAt:    ended,
	}

	rec := postgres.ToAlertRecord(a)
	if rec.SessionID != id.String() {
		t.Errorf("session id not preserved: got %s", rec.SessionID)
	}
	if rec.Threshold != 70000 || rec.EntryPrice != 65000 || rec.ExitPrice != 70100 {
		t.Errorf("unexpected record values: %+v", rec)
	}
	if rec.Reason != "price" || !rec.StartedAt.Equal(started) || !rec.EndedAt.Equal(ended) {
		t.Errorf("session bracket not preserved: %+v", rec)
	}
}

// go test -v --run ^TestRecorderCRUD$
func TestRecorderCRUD(t *testing.T) {
	client := liveClient(t)
	defer client.Close()

	ctx := context.Background()

	if err := client.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	// Create
	now := time.Now()
	sample := storage.Sample{
		Price:     45230.50,
		ChangePct: 1.25,
		Raw:       "BTC Price: $45230.50, 24h Change: 1.25%",
		At:        now,
	}
	if err := client.RecordSample(ctx, sample); err != nil {
		t.Fatalf("record sample failed: %v", err)
	}

	// Read
	recent, err := client.RecentSamples(ctx, 10)
	if err != nil {
		t.Fatalf("recent samples failed: %v", err)
	}
	if len(recent) == 0 {
		t.Fatal("expected at least one sample")
	}

	// Alert insert and duplicate rejection
	a := storage.Alert{
		ID:         uuid.New(),
		Threshold:  70000,
		EntryPrice: 68000,
		ExitPrice:  70500,
		Reason:     "price",
		StartedAt:  now,
		EndedAt:    now.Add(3 * time.Second),
	}
	if err := client.RecordAlert(ctx, a); err != nil {
		t.Fatalf("record alert failed: %v", err)
	}
	if err := client.RecordAlert(ctx, a); err == nil {
		t.Error("expected duplicate alert to be rejected")
	}

	got, err := client.GetAlert(ctx, a.ID.String())
	if err != nil {
		t.Fatalf("get alert failed: %v", err)
	}
	if got.Threshold != 70000 || got.Reason != "price" {
		t.Errorf("unexpected alert: %+v", got)
	}

	// Prune
	if err := client.PruneSamplesBefore(ctx, time.Now().Add(time.Hour)); err != nil {
		t.Errorf("prune failed: %v", err)
	}
}
