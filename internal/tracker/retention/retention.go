// Package retention ages out recorded samples so an always-on tracker does
// not grow its table without bound. Alert sessions are few and are kept.
package retention

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pruner deletes samples recorded before the cutoff.
type Pruner interface {
	PruneSamplesBefore(ctx context.Context, cutoff time.Time) error
}

// Job runs one prune at startup and then once at every UTC midnight.
type Job struct {
	pruner Pruner
	keep   time.Duration
	logger *zap.Logger
}

func NewJob(pruner Pruner, keep time.Duration, logger *zap.Logger) *Job {
	return &Job{
		pruner: pruner,
		keep:   keep,
		logger: logger,
	}
}

// Start schedules the job until ctx is canceled. Prune failures are logged
// and retried at the next slot; the tracker never stops over housekeeping.
func (j *Job) Start(ctx context.Context) {
	go func() {
		j.runOnce(ctx)

		// Wait until next UTC midnight
		now := time.Now().UTC()
		nextMidnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(nextMidnight)):
		}

		// Then run once every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			j.runOnce(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (j *Job) runOnce(ctx context.Context) {
	cutoff := time.Now().Add(-j.keep)
	if err := j.pruner.PruneSamplesBefore(ctx, cutoff); err != nil {
		j.logger.Warn("sample prune failed", zap.Error(err))
		return
	}
	j.logger.Info("old samples pruned", zap.Time("cutoff", cutoff))
}
