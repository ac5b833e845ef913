package device

import (
	"context"
	"time"
)

// Clock is the delay primitive all core timing goes through. Substituting a
// virtual clock keeps the selector and alarm tests free of real waits.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock implements Clock with the host's real time.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// Sleep waits for d or until ctx is done, whichever comes first.
func (WallClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
