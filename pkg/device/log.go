package device

import "go.uber.org/zap"

// LogDisplay routes frames into the structured log instead of a terminal.
// Useful when the tracker runs unattended and the panel output should land
// in the same place as everything else.
type LogDisplay struct {
	log *zap.Logger
}

func NewLogDisplay(log *zap.Logger) *LogDisplay {
	return &LogDisplay{log: log}
}

func (d *LogDisplay) Show(f Frame) error {
	d.log.Info("display",
		zap.String("line1", f.Line1),
		zap.String("line2", f.Line2))
	return nil
}

// LogIndicator routes indicator changes into the structured log.
type LogIndicator struct {
	log  *zap.Logger
	last Command
	seen bool
}

func NewLogIndicator(log *zap.Logger) *LogIndicator {
	return &LogIndicator{log: log}
}

func (i *LogIndicator) Apply(c Command) {
	if i.seen && c == i.last {
		return
	}
	i.last = c
	i.seen = true
	i.log.Info("indicator",
		zap.String("color", c.Color.String()),
		zap.Bool("buzzer", c.Buzzer))
}
