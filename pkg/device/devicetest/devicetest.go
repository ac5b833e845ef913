// Package devicetest provides in-memory peripheral doubles for exercising
// the tracker core without hardware and without real waits.
package devicetest

import (
	"context"
	"sync"
	"time"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
)

// VirtualClock advances instantly on Sleep and tracks elapsed virtual time.
type VirtualClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{start: start, now: start}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return nil
}

// Elapsed reports how much virtual time has passed since the clock started.
func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.start)
}

// ScriptedButton replays presses at fixed offsets of virtual time. Presses
// whose offsets have passed collapse into a single pending flag, the same
// way a debounced hardware button latches between polls.
type ScriptedButton struct {
	clock *VirtualClock
	mu    sync.Mutex
	at    []time.Duration
	next  int
}

// NewScriptedButton schedules one press per offset. Offsets must be in
// ascending order.
func NewScriptedButton(clock *VirtualClock, at ...time.Duration) *ScriptedButton {
	return &ScriptedButton{clock: clock, at: at}
}

func (b *ScriptedButton) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	elapsed := b.clock.Elapsed()
	due := false
	for b.next < len(b.at) && elapsed >= b.at[b.next] {
		b.next++
		due = true
	}
	return due
}

// FrameRecorder captures every frame shown on it.
type FrameRecorder struct {
	mu     sync.Mutex
	frames []device.Frame
}

func (r *FrameRecorder) Show(f device.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *FrameRecorder) Frames() []device.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]device.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Last returns the most recent frame, or the zero Frame if none was shown.
func (r *FrameRecorder) Last() device.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return device.Frame{}
	}
	return r.frames[len(r.frames)-1]
}

// CommandRecorder captures every indicator command applied to it.
type CommandRecorder struct {
	mu   sync.Mutex
	cmds []device.Command
}

func (r *CommandRecorder) Apply(c device.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, c)
}

func (r *CommandRecorder) Commands() []device.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]device.Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

// Last returns the most recent command, or the zero Command if none was
// applied.
func (r *CommandRecorder) Last() device.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cmds) == 0 {
		return device.Command{}
	}
	return r.cmds[len(r.cmds)-1]
}
