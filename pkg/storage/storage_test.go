package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
)

func TestMemoryRecorderKeepsOrder(t *testing.T) {
	rec := storage.NewMemoryRecorder()
	ctx := context.Background()

	require.NoError(t, rec.RecordSample(ctx, storage.Sample{Price: 45230.50, ChangePct: 1.25}))
	require.NoError(t, rec.RecordSample(ctx, storage.Sample{Price: 44980.00, ChangePct: -0.30}))

	samples := rec.Samples()
	require.Len(t, samples, 2)
	assert.Equal(t, 45230.50, samples[0].Price)
	assert.Equal(t, 44980.00, samples[1].Price)

	a := storage.Alert{
		ID:         uuid.New(),
		Threshold:  70000,
		EntryPrice: 65000,
		ExitPrice:  70200,
		Reason:     "price",
		StartedAt:  time.Now(),
		EndedAt:    time.Now(),
	}
	require.NoError(t, rec.RecordAlert(ctx, a))

	alerts := rec.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, a.ID, alerts[0].ID)
	assert.Equal(t, 70000, alerts[0].Threshold)

	require.NoError(t, rec.Close())
}

func TestMemoryRecorderReturnsCopies(t *testing.T) {
	rec := storage.NewMemoryRecorder()
	require.NoError(t, rec.RecordSample(context.Background(), storage.Sample{Price: 100}))

	got := rec.Samples()
	got[0].Price = 999

	assert.Equal(t, 100.0, rec.Samples()[0].Price)
}

func TestNoopRecorderAcceptsEverything(t *testing.T) {
	var rec storage.NoopRecorder
	ctx := context.Background()

	assert.NoError(t, rec.RecordSample(ctx, storage.Sample{}))
	assert.NoError(t, rec.RecordAlert(ctx, storage.Alert{}))
	assert.NoError(t, rec.Close())
}
