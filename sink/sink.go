// Package sink provides byte destinations for the wire encoder.
//
// A Sink is owned by the caller and borrowed by the encoder for the
// duration of a message. Appends are all-or-nothing: a write that does
// not fit commits zero bytes and reports ErrCapacityExceeded, so a sink
// never holds a half-written token.
package sink

import (
	"math"

	"github.com/pkg/errors"
)

var ErrCapacityExceeded = errors.New("sink capacity exceeded")

type Sink interface {
	// Remaining reports how many bytes the sink can currently accept.
	Remaining() uint

	// Append commits p in full or not at all.
	Append(p []byte) error
	AppendByte(c byte) error

	// Len is the current write cursor.
	Len() uint

	// Bytes is the written prefix. A growable sink may invalidate
	// previously returned slices on growth, so callers must not hold
	// one across further appends.
	Bytes() []byte

	// Truncate moves the write cursor back to n. It panics if n
	// exceeds Len.
	Truncate(n uint)
}

// Fixed writes into a caller-owned buffer and never allocates.
// Capacity is len(buf) and overflow is reported, not grown past.
type Fixed struct {
	buf []byte
	n   uint
}

var _ Sink = (*Fixed)(nil)

func NewFixed(buf []byte) *Fixed {
	return &Fixed{buf: buf}
}

func (f *Fixed) Remaining() uint { return uint(len(f.buf)) - f.n }

func (f *Fixed) Append(p []byte) error {
	if f.Remaining() < uint(len(p)) {
		return ErrCapacityExceeded
	}

	copy(f.buf[f.n:], p)
	f.n += uint(len(p))

	return nil
}

func (f *Fixed) AppendByte(c byte) error {
	if f.Remaining() < 1 {
		return ErrCapacityExceeded
	}

	f.buf[f.n] = c
	f.n++

	return nil
}

func (f *Fixed) Len() uint { return f.n }

func (f *Fixed) Bytes() []byte { return f.buf[:f.n] }

func (f *Fixed) Truncate(n uint) {
	if n > f.n {
		panic("sink: truncate beyond write cursor")
	}
	f.n = n
}

// Reset rewinds the cursor so the buffer can carry another message.
func (f *Fixed) Reset() { f.n = 0 }

// Growable reallocates as needed and never reports capacity failure.
type Growable struct {
	buf []byte
}

var _ Sink = (*Growable)(nil)

func NewGrowable(initialCap uint) *Growable {
	return &Growable{buf: make([]byte, 0, initialCap)}
}

func (g *Growable) Remaining() uint { return math.MaxUint }

func (g *Growable) Append(p []byte) error {
	g.buf = append(g.buf, p...)
	return nil
}

func (g *Growable) AppendByte(c byte) error {
	g.buf = append(g.buf, c)
	return nil
}

func (g *Growable) Len() uint { return uint(len(g.buf)) }

func (g *Growable) Bytes() []byte { return g.buf }

func (g *Growable) Truncate(n uint) {
	if n > uint(len(g.buf)) {
		panic("sink: truncate beyond write cursor")
	}
	g.buf = g.buf[:n]
}

func (g *Growable) Reset() { g.buf = g.buf[:0] }
