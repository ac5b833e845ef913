package wire

// BufferSize is the fixed capacity of the line buffer. Content longer than
// BufferSize-1 bytes is force-emitted as a line rather than growing unbounded.
const BufferSize = 64

// Accumulator gathers stream bytes into discrete lines. The zero value is
// ready to use.
type Accumulator struct {
	buf []byte
}

// Feed consumes one byte and returns a completed line plus true when the byte
// is a terminator ('\n' or '\r') or the buffer already holds BufferSize-1
// bytes. The terminator is excluded from the line; on a forced flush the
// triggering byte is discarded, not carried into the next line. Overflow is
// silent truncation, never an error. NUL bytes are never buffered, so emitted
// lines are always null-free.
func (a *Accumulator) Feed(b byte) (string, bool) {
	if b == 0 {
		return "", false
	}
	if b == '\n' || b == '\r' || len(a.buf) >= BufferSize-1 {
		line := string(a.buf)
		a.buf = a.buf[:0]
		return line, true
	}
	if a.buf == nil {
		a.buf = make([]byte, 0, BufferSize)
	}
	a.buf = append(a.buf, b)
	return "", false
}
