// Package feeder produces the price line stream the tracker consumes. A
// Source delivers quotes on a channel; the Feeder keeps only the most
// recent one and writes it out at a fixed cadence, so a fast source never
// floods the 9600-baud link.
package feeder

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/wire"
)

// Quote is one price observation from a source.
type Quote struct {
	Price     float64
	ChangePct float64
	At        time.Time
}

// Source delivers quotes until stopped. Implementations must make Stop safe
// to call more than once and must never block on the quotes channel.
type Source interface {
	Start(ctx context.Context) error
	Quotes() <-chan Quote
	Stop()
}

// Feeder bridges a quote source to a line-oriented writer.
type Feeder struct {
	source   Source
	out      io.Writer
	interval time.Duration
	logger   *zap.Logger
}

func New(source Source, out io.Writer, interval time.Duration, logger *zap.Logger) *Feeder {
	return &Feeder{
		source:   source,
		out:      out,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the source and emits the latest quote once per interval until
// ctx is canceled or the source closes its channel. Intervals with no quote
// yet emit nothing. A write failure ends the run; the link is gone and the
// caller decides whether to redial.
func (f *Feeder) Run(ctx context.Context) error {
	if err := f.source.Start(ctx); err != nil {
		return fmt.Errorf("start source: %w", err)
	}
	defer f.source.Stop()

	f.logger.Info("feeder started", zap.Duration("interval", f.interval))

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	var latest Quote
	var seen bool
	var emitted uint64

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("feeder stopped", zap.Uint64("emitted", emitted))
			return ctx.Err()

		case q, ok := <-f.source.Quotes():
			if !ok {
				f.logger.Info("source closed", zap.Uint64("emitted", emitted))
				return nil
			}
			latest = q
			seen = true

		case <-ticker.C:
			if !seen {
				continue
			}
			line := wire.FormatLine(latest.Price, latest.ChangePct)
			if _, err := io.WriteString(f.out, line+"\n"); err != nil {
				return fmt.Errorf("write line: %w", err)
			}
			emitted++
			f.logger.Debug("line emitted",
				zap.Float64("price", latest.Price),
				zap.Float64("change_pct", latest.ChangePct))
		}
	}
}
