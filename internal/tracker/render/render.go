// Package render builds every frame the tracker shows: boot, threshold
// selection, normal quote and alert.
package render

import (
	"fmt"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
)

// Loading is shown until the first well-formed message arrives, and again
// whenever a line fails to parse.
func Loading() device.Frame {
	return device.NewFrame("Loading...", "")
}

// SelectPrompt shows the threshold menu with the current candidate. The
// candidate is left-justified in a fixed field so a shorter value fully
// overwrites a longer one.
func SelectPrompt(candidate int) device.Frame {
	return device.NewFrame("Set min val:", fmt.Sprintf("$%-7d", candidate))
}

// Saved confirms the locked-in threshold.
func Saved() device.Frame {
	return device.NewFrame("Threshold Saved", "")
}

// Normal shows the market quote: static label on top, price and signed
// change below.
func Normal(price, change float64) device.Frame {
	return device.NewFrame("BTC Price:",
		fmt.Sprintf("%s  %+.2f%%", formatPrice(price), change))
}

// Alert shows the buy prompt for an active session.
func Alert(price float64) device.Frame {
	return device.NewFrame(formatPrice(price), "BUY NOW")
}

// formatPrice renders a dollar amount with a thousands comma and the
// remainder zero-padded to three digits ("$8,713", "$45,230"). Amounts
// under a thousand keep the pattern and show as "$0,713".
func formatPrice(price float64) string {
	intPrice := int(price)
	return fmt.Sprintf("$%d,%03d", intPrice/1000, intPrice%1000)
}
