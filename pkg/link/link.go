// Package link opens the byte transports that carry price lines between the
// feeder and the tracker: a serial device when a real board is wired up, or
// a TCP socket for bench runs without hardware.
package link

import (
	"fmt"
	"io"
	"net"
	"time"

	"go.bug.st/serial"
)

// Transport modes accepted by Open.
const (
	ModeSerial = "serial"
	ModeTCP    = "tcp"
)

const dialTimeout = 5 * time.Second

// Open returns the byte stream for the configured transport. For ModeSerial
// it opens the device at the given baud rate; for ModeTCP it dials the
// address once and fails fast if the far side is not up.
func Open(mode, addr string, baud int) (io.ReadWriteCloser, error) {
	switch mode {
	case ModeSerial:
		return openSerial(addr, baud)
	case ModeTCP:
		conn, err := net.DialTimeout("tcp", addr, dialTimeout)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", addr, err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown link mode %q", mode)
	}
}

func openSerial(device string, baud int) (io.ReadWriteCloser, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", device, err)
	}
	return port, nil
}

// Listener awaits a single inbound peer. The feeder listens so the tracker
// can dial in the way a board plugs in.
type Listener struct {
	l net.Listener
}

func NewListener(addr string) (*Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Listener{l: l}, nil
}

// Addr reports the bound address, useful when the configured port was 0.
func (s *Listener) Addr() string { return s.l.Addr().String() }

// AcceptOne returns the first inbound connection and stops listening.
func (s *Listener) AcceptOne() (io.ReadWriteCloser, error) {
	defer s.l.Close()
	conn, err := s.l.Accept()
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}
	return conn, nil
}

// Close stops listening. A blocked AcceptOne returns with an error.
func (s *Listener) Close() error { return s.l.Close() }
