// Package device defines the peripheral contracts the tracker core runs
// against: a two-line text display, a debounced push button, a two-channel
// LED indicator with a buzzer, and a monotonic clock. Host implementations
// here emulate the board peripherals on a terminal; the real LCD, GPIO and
// buzzer drivers live outside this repository and only need to satisfy these
// interfaces.
package device

// Display is a two-line text sink. Writes are full-frame replacements; there
// are no partial in-place edits.
type Display interface {
	Show(Frame) error
}

// Button reports whether a press has been registered since the last poll.
// Implementations own edge detection and debouncing; the core only polls.
type Button interface {
	Pressed() bool
}

// Color names the states the two-channel (red+green) indicator can express.
type Color int

const (
	ColorOff Color = iota
	ColorRed
	ColorGreen
	ColorYellow // both channels driven; the steady form of the alert flash
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "off"
	}
}

// Command is one resolved indicator output: a color plus the buzzer state.
type Command struct {
	Color  Color
	Buzzer bool
}

// Indicator drives the LED channels and the buzzer.
type Indicator interface {
	Apply(Command)
}
