package device

// Width is the number of visible character cells per display line.
const Width = 16

// Frame is one full two-line display image.
type Frame struct {
	Line1 string
	Line2 string
}

// NewFrame builds a Frame, clipping each line to the display width so that
// no renderer can push characters past the visible field.
func NewFrame(line1, line2 string) Frame {
	return Frame{Line1: clip(line1), Line2: clip(line2)}
}

func clip(s string) string {
	if len(s) > Width {
		return s[:Width]
	}
	return s
}
