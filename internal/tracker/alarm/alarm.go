// Package alarm holds the two-state alert machine driven by parsed samples.
package alarm

import "time"

// TickInterval is the cadence of one alert phase: frame redraw, LED
// alternation and buzzer toggle all advance together.
const TickInterval = 150 * time.Millisecond

// State of the machine.
type State int

const (
	StateNormal State = iota
	StateAlerting
)

func (s State) String() string {
	if s == StateAlerting {
		return "alerting"
	}
	return "normal"
}

// StopReason says what ended an alert session.
type StopReason int

const (
	StopNone StopReason = iota
	StopPrice
	StopButton
)

func (r StopReason) String() string {
	switch r {
	case StopPrice:
		return "price"
	case StopButton:
		return "button"
	default:
		return "none"
	}
}

// Machine decides when the tracker is alerting. A below-threshold sample
// always enters Alerting: the acknowledged flag records that the button
// silenced the previous session, but it does not suppress the next one.
// Only an at-or-above-threshold sample clears it.
type Machine struct {
	threshold    float64
	state        State
	acknowledged bool
}

func NewMachine(threshold float64) *Machine {
	return &Machine{threshold: threshold}
}

func (m *Machine) Threshold() float64 { return m.threshold }
func (m *Machine) State() State       { return m.state }

// Acknowledged reports whether the last session was silenced by the button
// and no at-or-above-threshold sample has been seen since.
func (m *Machine) Acknowledged() bool { return m.acknowledged }

// Observe feeds one valid sample through the transition table and returns
// the resulting state.
func (m *Machine) Observe(price float64) State {
	if price < m.threshold {
		m.state = StateAlerting
	} else {
		m.state = StateNormal
		m.acknowledged = false
	}
	return m.state
}

// CheckStop evaluates the stop conditions for one alert tick: the session
// ends when the price is back at or above the threshold, or on a button
// press. A button stop marks the session acknowledged.
func (m *Machine) CheckStop(latest float64, pressed bool) (StopReason, bool) {
	if latest >= m.threshold {
		m.state = StateNormal
		m.acknowledged = false
		return StopPrice, true
	}
	if pressed {
		m.state = StateNormal
		m.acknowledged = true
		return StopButton, true
	}
	return StopNone, false
}
