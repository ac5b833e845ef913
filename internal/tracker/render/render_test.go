package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/render"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
)

func TestNormalFrame(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		change float64
		line2  string
	}{
		{"mid five digits", 45230.50, 1.25, "$45,230  +1.25%"},
		{"negative change", 8713.99, -3.40, "$8,713  -3.40%"},
		{"zero change", 45030.00, 0, "$45,030  +0.00%"},
		{"zero padded remainder", 45007.12, 0.30, "$45,007  +0.30%"},
		{"under a thousand", 713.99, 2.00, "$0,713  +2.00%"},
		{"six digit price", 120000.00, 5.75, "$120,000  +5.75%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := render.Normal(tt.price, tt.change)
			assert.Equal(t, "BTC Price:", f.Line1)
			assert.Equal(t, tt.line2, f.Line2)
		})
	}
}

func TestNormalFrameClipsAtWidth(t *testing.T) {
	// "$123,456  -12.34%" is 17 chars; the trailing percent sign falls off.
	f := render.Normal(123456.78, -12.34)
	assert.Equal(t, "$123,456  -12.34", f.Line2)
	assert.Len(t, f.Line2, device.Width)
}

func TestAlertFrame(t *testing.T) {
	f := render.Alert(8713.45)
	assert.Equal(t, "$8,713", f.Line1)
	assert.Equal(t, "BUY NOW", f.Line2)

	f = render.Alert(713.00)
	assert.Equal(t, "$0,713", f.Line1)
}

func TestSelectPrompt(t *testing.T) {
	f := render.SelectPrompt(70000)
	assert.Equal(t, "Set min val:", f.Line1)
	assert.Equal(t, "$70000  ", f.Line2)

	// The fixed field keeps a shorter candidate from leaving stale digits.
	f = render.SelectPrompt(120000)
	assert.Equal(t, "$120000 ", f.Line2)
}

func TestLoadingAndSaved(t *testing.T) {
	f := render.Loading()
	assert.Equal(t, "Loading...", f.Line1)
	assert.Empty(t, f.Line2)

	f = render.Saved()
	assert.Equal(t, "Threshold Saved", f.Line1)
	assert.Empty(t, f.Line2)
}
