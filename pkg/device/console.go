package device

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// ConsoleDisplay draws frames as a bordered box on a terminal. The alert loop
// re-shows its frame on every tick, so consecutive identical frames are
// skipped to keep the output readable.
type ConsoleDisplay struct {
	mu   sync.Mutex
	w    io.Writer
	last Frame
	seen bool
}

func NewConsoleDisplay(w io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{w: w}
}

func (d *ConsoleDisplay) Show(f Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen && f == d.last {
		return nil
	}
	d.last = f
	d.seen = true
	_, err := fmt.Fprintf(d.w, "+----------------+\n|%-*s|\n|%-*s|\n+----------------+\n",
		Width, f.Line1, Width, f.Line2)
	return err
}

// ConsoleIndicator prints one line per indicator change: a colored dot for
// the LED and a marker when the buzzer is driven.
type ConsoleIndicator struct {
	mu   sync.Mutex
	w    io.Writer
	last Command
	seen bool
}

func NewConsoleIndicator(w io.Writer) *ConsoleIndicator {
	return &ConsoleIndicator{w: w}
}

func (i *ConsoleIndicator) Apply(c Command) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.seen && c == i.last {
		return
	}
	i.last = c
	i.seen = true
	buzzer := "     "
	if c.Buzzer {
		buzzer = " BUZZ"
	}
	fmt.Fprintf(i.w, "%s %-6s%s\n", dot(c.Color), c.Color, buzzer)
}

func dot(c Color) string {
	switch c {
	case ColorRed:
		return "\x1b[31m●\x1b[0m"
	case ColorGreen:
		return "\x1b[32m●\x1b[0m"
	case ColorYellow:
		return "\x1b[33m●\x1b[0m"
	default:
		return "○"
	}
}

// StdinButton turns terminal input into button presses: each line of input
// registers one press. Presses between polls collapse into a single pending
// flag, matching the edge-triggered behavior of a debounced push button.
type StdinButton struct {
	pressed atomic.Bool
}

func NewStdinButton(r io.Reader) *StdinButton {
	b := &StdinButton{}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			b.pressed.Store(true)
		}
	}()
	return b
}

// Pressed reports and clears the pending press.
func (b *StdinButton) Pressed() bool { return b.pressed.Swap(false) }

// NopButton never reports a press. On headless rigs this lets threshold
// selection fall through to the first domain value after the idle window.
type NopButton struct{}

func (NopButton) Pressed() bool { return false }
