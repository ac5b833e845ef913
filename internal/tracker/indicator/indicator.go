// Package indicator maps tracker state to LED and buzzer outputs.
package indicator

import "github.com/Christian123002/Bitcoin-Tracker/pkg/device"

// nearZero is the band treated as no movement: changes that would render as
// +0.00% or -0.00% keep the LED dark.
const nearZero = 0.005

// Off turns everything off, matching the blank panel before the first
// parsed quote.
func Off() device.Command {
	return device.Command{Color: device.ColorOff}
}

// Normal maps the 24h change sign to the steady LED: green for up, red for
// down, off when flat. The buzzer is never driven outside an alert.
func Normal(change float64) device.Command {
	switch {
	case change > nearZero:
		return device.Command{Color: device.ColorGreen}
	case change < -nearZero:
		return device.Command{Color: device.ColorRed}
	default:
		return device.Command{Color: device.ColorOff}
	}
}

// Alert returns the output for one alert phase: the red half drives the
// buzzer, the green half is silent, so the panel flashes and beeps on the
// shared cadence.
func Alert(phase int) device.Command {
	if phase%2 == 0 {
		return device.Command{Color: device.ColorRed, Buzzer: true}
	}
	return device.Command{Color: device.ColorGreen}
}
