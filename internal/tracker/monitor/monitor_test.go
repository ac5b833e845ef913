package monitor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/indicator"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/monitor"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/render"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/device/devicetest"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
)

type fixture struct {
	clock    *devicetest.VirtualClock
	frames   *devicetest.FrameRecorder
	commands *devicetest.CommandRecorder
	recorder *storage.MemoryRecorder
}

// runMonitor drives a full monitor run on virtual time against a scripted
// feed and button, with a real-time guard against a stuck loop.
func runMonitor(t *testing.T, presses []time.Duration, feed string) (*fixture, error) {
	t.Helper()

	f := &fixture{
		clock:    devicetest.NewVirtualClock(time.Unix(0, 0)),
		frames:   &devicetest.FrameRecorder{},
		commands: &devicetest.CommandRecorder{},
		recorder: storage.NewMemoryRecorder(),
	}
	button := devicetest.NewScriptedButton(f.clock, presses...)

	m := monitor.New(f.frames, button, f.commands, f.clock, f.recorder, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx, strings.NewReader(feed))
	}()

	select {
	case err := <-done:
		return f, err
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not finish")
		return nil, nil
	}
}

// Full pass: six presses pick $70,000, a below-threshold sample opens an
// alert that the button stops after one tick, and the next sample recovers.
func TestRunFullScenario(t *testing.T) {
	presses := []time.Duration{
		500 * time.Millisecond,
		1000 * time.Millisecond,
		1500 * time.Millisecond,
		2000 * time.Millisecond,
		2500 * time.Millisecond,
		3000 * time.Millisecond,
		// Stops the alert one tick into the session.
		10400 * time.Millisecond,
	}
	feed := "BTC Price: $65000.00, 24h Change: -2.50%\n" +
		"BTC Price: $72000.00, 24h Change: 1.10%\n"

	f, err := runMonitor(t, presses, feed)
	require.NoError(t, err)

	wantFrames := []device.Frame{
		render.SelectPrompt(10000),
		render.SelectPrompt(20000),
		render.SelectPrompt(30000),
		render.SelectPrompt(40000),
		render.SelectPrompt(50000),
		render.SelectPrompt(60000),
		render.SelectPrompt(70000),
		render.Saved(),
		{},
		render.Alert(65000),
		render.Normal(65000, -2.50),
		render.Normal(72000, 1.10),
	}
	assert.Equal(t, wantFrames, f.frames.Frames())

	wantCommands := []device.Command{
		indicator.Off(),
		indicator.Alert(0),
		indicator.Normal(-2.50),
		indicator.Normal(1.10),
	}
	assert.Equal(t, wantCommands, f.commands.Commands())

	samples := f.recorder.Samples()
	require.Len(t, samples, 2)
	assert.Equal(t, 65000.0, samples[0].Price)
	assert.Equal(t, 72000.0, samples[1].Price)

	alerts := f.recorder.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "button", alerts[0].Reason)
	assert.Equal(t, 70000, alerts[0].Threshold)
	assert.Equal(t, 65000.0, alerts[0].EntryPrice)
	assert.Equal(t, 150*time.Millisecond, alerts[0].EndedAt.Sub(alerts[0].StartedAt))
}

// A malformed line shows Loading with everything dark, and the next valid
// line recovers the quote display.
func TestRunMalformedLineShowsLoading(t *testing.T) {
	feed := "hello\n" +
		"BTC Price: $45230.50, 24h Change: 1.25%\n"

	f, err := runMonitor(t, nil, feed)
	require.NoError(t, err)

	wantFrames := []device.Frame{
		render.SelectPrompt(10000),
		render.Saved(),
		{},
		render.Loading(),
		render.Normal(45230.50, 1.25),
	}
	assert.Equal(t, wantFrames, f.frames.Frames())

	wantCommands := []device.Command{
		indicator.Off(),
		indicator.Off(),
		indicator.Normal(1.25),
	}
	assert.Equal(t, wantCommands, f.commands.Commands())

	require.Len(t, f.recorder.Samples(), 1)
	assert.Empty(t, f.recorder.Alerts())
}

// A press latched before the session's first tick ends it immediately: no
// alert frame is drawn and the buzzer never sounds, but the session is
// still recorded as button-stopped.
func TestRunPendingPressEndsSessionBeforeFirstTick(t *testing.T) {
	presses := []time.Duration{5000 * time.Millisecond} // during the confirm hold
	feed := "BTC Price: $8500.00, 24h Change: -5.00%\n"

	f, err := runMonitor(t, presses, feed)
	require.NoError(t, err)

	assert.NotContains(t, f.frames.Frames(), render.Alert(8500))
	for _, cmd := range f.commands.Commands() {
		assert.False(t, cmd.Buzzer, "buzzer must never sound in a zero-tick session")
	}

	alerts := f.recorder.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "button", alerts[0].Reason)
	assert.Equal(t, alerts[0].StartedAt, alerts[0].EndedAt)

	assert.Equal(t, render.Normal(8500, -5.00), f.frames.Last())
}

type failingRecorder struct{}

func (failingRecorder) RecordSample(context.Context, storage.Sample) error {
	return errors.New("db down")
}
func (failingRecorder) RecordAlert(context.Context, storage.Alert) error {
	return errors.New("db down")
}
func (failingRecorder) Close() error { return nil }

// Recorder failures are observed and dropped; the panel keeps updating.
func TestRunRecorderFailureDoesNotStopTheLoop(t *testing.T) {
	clock := devicetest.NewVirtualClock(time.Unix(0, 0))
	frames := &devicetest.FrameRecorder{}
	m := monitor.New(frames, devicetest.NewScriptedButton(clock), &devicetest.CommandRecorder{},
		clock, failingRecorder{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := m.Run(ctx, strings.NewReader("BTC Price: $45230.50, 24h Change: 1.25%\n"))
	require.NoError(t, err)
	assert.Contains(t, frames.Frames(), render.Normal(45230.50, 1.25))
}

func TestRunStopsOnCancel(t *testing.T) {
	clock := devicetest.NewVirtualClock(time.Unix(0, 0))
	m := monitor.New(&devicetest.FrameRecorder{}, devicetest.NewScriptedButton(clock),
		&devicetest.CommandRecorder{}, clock, storage.NewMemoryRecorder(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, strings.NewReader(""))
	assert.Error(t, err)
}
