// Package monitor wires the tracker together: it runs the boot-time
// threshold selection, then consumes the feed byte stream, parses lines,
// drives the alarm and keeps the panel, indicator and recorder in sync.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/alarm"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/indicator"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/render"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/status"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/threshold"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/wire"
)

// statusInterval is the cadence of the periodic run-state log line.
const statusInterval = 5 * time.Second

// Monitor owns the full panel lifecycle for one feed connection.
type Monitor struct {
	display   device.Display
	button    device.Button
	indicator device.Indicator
	clock     device.Clock
	recorder  storage.Recorder
	logger    *zap.Logger

	machine *alarm.Machine
	store   *status.Store
}

// New assembles a monitor around the given peripherals. The recorder may be
// a NoopRecorder but must not be nil.
func New(display device.Display, button device.Button, ind device.Indicator,
	clock device.Clock, recorder storage.Recorder, logger *zap.Logger) *Monitor {
	return &Monitor{
		display:   display,
		button:    button,
		indicator: ind,
		clock:     clock,
		recorder:  recorder,
		logger:    logger,
	}
}

// Run executes the boot sequence and then consumes the feed until it ends
// or ctx is canceled. A closed feed is a clean shutdown; unblocking a
// blocked read after cancel is the caller's job (close the stream).
func (m *Monitor) Run(ctx context.Context, feed io.Reader) error {
	sel := threshold.NewSelector(m.button, m.clock)
	locked, err := sel.Run(ctx, func(candidate int) {
		m.show(render.SelectPrompt(candidate))
	})
	if err != nil {
		return err
	}

	m.machine = alarm.NewMachine(float64(locked))
	m.store = status.NewStore(float64(locked))
	m.logger.Info("threshold locked", zap.Int("threshold", locked))

	m.show(render.Saved())
	if err := m.clock.Sleep(ctx, threshold.ConfirmHold); err != nil {
		return err
	}

	// Blank panel until the first line arrives
	m.show(device.Frame{})
	m.indicator.Apply(indicator.Off())

	go m.logStatus(ctx)

	return m.consume(ctx, feed)
}

func (m *Monitor) consume(ctx context.Context, feed io.Reader) error {
	reader := bufio.NewReader(feed)
	var acc wire.Accumulator

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.logger.Info("feed closed")
				return nil
			}
			return fmt.Errorf("read feed: %w", err)
		}

		line, complete := acc.Feed(b)
		if !complete {
			continue
		}

		m.handleLine(ctx, line)
	}
}

func (m *Monitor) handleLine(ctx context.Context, line string) {
	sample := wire.ParseLine(line)
	if !sample.Valid {
		m.store.RecordInvalid()
		m.logger.Debug("unparseable line", zap.String("line", line))
		m.show(render.Loading())
		m.indicator.Apply(indicator.Off())
		return
	}

	m.store.RecordValid(sample.Price, sample.Change, m.clock.Now())

	if err := m.recorder.RecordSample(ctx, storage.Sample{
		Price:     sample.Price,
		ChangePct: sample.Change,
		Raw:       line,
		At:        m.clock.Now(),
	}); err != nil {
		m.logger.Warn("failed to record sample", zap.Error(err))
	}

	if m.machine.Observe(sample.Price) == alarm.StateAlerting {
		if done := m.runAlertSession(ctx, sample); !done {
			return
		}
	}

	// Every valid sample resolves to the normal presentation, alert or not.
	// The indicator command carries Buzzer false, so the buzzer cannot stay
	// on past a session.
	m.show(render.Normal(sample.Price, sample.Change))
	m.indicator.Apply(indicator.Normal(sample.Change))
	m.store.SetAlarm(false, m.machine.Acknowledged())
}

// runAlertSession drives the panel through one alert: frame, LED phase and
// buzzer advance together on the alarm cadence until a stop condition
// fires. No feed bytes are consumed during a session, so the price under
// evaluation stays the one that entered it. Returns false when the session
// was abandoned by cancellation.
func (m *Monitor) runAlertSession(ctx context.Context, sample wire.Sample) bool {
	started := m.clock.Now()
	m.store.SetAlarm(true, m.machine.Acknowledged())
	m.logger.Info("alert entered",
		zap.Float64("price", sample.Price),
		zap.Float64("threshold", m.machine.Threshold()))

	frame := render.Alert(sample.Price)

	var (
		phase  int
		reason alarm.StopReason
	)
	for {
		stop, stopped := m.machine.CheckStop(sample.Price, m.button.Pressed())
		if stopped {
			reason = stop
			break
		}

		m.show(frame)
		m.indicator.Apply(indicator.Alert(phase))
		phase++

		if err := m.clock.Sleep(ctx, alarm.TickInterval); err != nil {
			// Shutdown mid-session: silence everything and bail out.
			m.indicator.Apply(indicator.Off())
			return false
		}
	}

	ended := m.clock.Now()
	m.store.RecordAlert()
	m.store.SetAlarm(false, m.machine.Acknowledged())
	m.logger.Info("alert stopped",
		zap.String("reason", reason.String()),
		zap.Int("ticks", phase),
		zap.Duration("duration", ended.Sub(started)))

	if err := m.recorder.RecordAlert(ctx, storage.Alert{
		ID:         uuid.New(),
		Threshold:  int(m.machine.Threshold()),
		EntryPrice: sample.Price,
		ExitPrice:  sample.Price,
		Reason:     reason.String(),
		StartedAt:  started,
		EndedAt:    ended,
	}); err != nil {
		m.logger.Warn("failed to record alert", zap.Error(err))
	}

	return true
}

func (m *Monitor) logStatus(ctx context.Context) {
	t := time.NewTicker(statusInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			snap := m.store.Snapshot()
			m.logger.Info("tracker status",
				zap.Float64("threshold", snap.Threshold),
				zap.Float64("price", snap.Price),
				zap.Bool("alerting", snap.Alerting),
				zap.Bool("acknowledged", snap.Acknowledged),
				zap.Int("lines", snap.LinesTotal),
				zap.Int("valid", snap.LinesValid),
				zap.Int("invalid", snap.LinesInvalid),
				zap.Int("alerts", snap.AlertsTotal))
		}
	}
}

func (m *Monitor) show(f device.Frame) {
	if err := m.display.Show(f); err != nil {
		m.logger.Warn("display write failed", zap.Error(err))
	}
}
