// Package threshold owns the boot-time selection of the alert floor: a
// fixed menu of round price levels stepped through with the push button and
// locked in by inactivity.
package threshold

import (
	"context"
	"time"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
)

// Domain is the fixed menu of selectable alert floors.
var Domain = []int{
	10000, 20000, 30000, 40000, 50000, 60000,
	70000, 80000, 90000, 100000, 110000, 120000,
}

// Selection timing. The debounce hold after an accepted press is real time
// but does not count as inactivity; only full poll intervals do.
const (
	PollInterval = 100 * time.Millisecond
	DebounceHold = 300 * time.Millisecond
	IdleTimeout  = 4000 * time.Millisecond
	ConfirmHold  = 3000 * time.Millisecond
)

// Selector steps through Domain on button presses and locks the candidate
// in after IdleTimeout without one.
type Selector struct {
	button device.Button
	clock  device.Clock

	index int
}

func NewSelector(button device.Button, clock device.Clock) *Selector {
	return &Selector{button: button, clock: clock}
}

// Candidate returns the currently highlighted domain value.
func (s *Selector) Candidate() int { return Domain[s.index] }

// Advance moves the candidate to the next domain value, wrapping at the end.
func (s *Selector) Advance() int {
	s.index = (s.index + 1) % len(Domain)
	return Domain[s.index]
}

// Run polls the button until the candidate has been idle for IdleTimeout
// and returns the locked-in threshold. onChange is called with the initial
// candidate and after every advance so the caller can redraw the panel.
func (s *Selector) Run(ctx context.Context, onChange func(int)) (int, error) {
	if onChange != nil {
		onChange(s.Candidate())
	}

	var elapsed time.Duration
	for elapsed < IdleTimeout {
		if s.button.Pressed() {
			next := s.Advance()
			if onChange != nil {
				onChange(next)
			}
			elapsed = 0
			// Presses latched during the hold register on the next poll.
			if err := s.clock.Sleep(ctx, DebounceHold); err != nil {
				return 0, err
			}
		}
		if err := s.clock.Sleep(ctx, PollInterval); err != nil {
			return 0, err
		}
		elapsed += PollInterval
	}

	return s.Candidate(), nil
}
