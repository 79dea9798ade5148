package formatter

import (
	"io"
	"strconv"
)

// DefaultBufferSize is the initial capacity of a Buffer, sized for a
// typical short console line. Longer lines trigger transparent growth.
const DefaultBufferSize = 1024

// Buffer is a growable byte buffer that accumulates one rendered log
// line. Unlike bytes.Buffer it exposes its capacity and uses a single,
// predictable growth rule: when a pending append does not fit, capacity
// doubles until it does and the already-written prefix is copied over.
//
// A Buffer is owned by exactly one caller at a time and is not safe for
// concurrent use.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a Buffer with the default initial capacity.
func NewBuffer() *Buffer {
	return NewBufferSize(DefaultBufferSize)
}

// NewBufferSize creates a Buffer with the given initial capacity.
// Capacities below 1 are raised to 1.
func NewBufferSize(n int) *Buffer {
	if n < 1 {
		n = 1
	}
	return &Buffer{buf: make([]byte, 0, n)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Bytes returns the written bytes. The slice is only valid until the
// next append or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Reset discards the content but keeps the allocated capacity.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Grow ensures capacity for at least n more bytes. Capacity doubles
// until the pending append fits; existing content is copied into the
// new storage before any subsequent append proceeds.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		panic("formatter.Buffer.Grow: negative count")
	}
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < need {
		newCap *= 2
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.Grow(1)
	b.buf = append(b.buf, c)
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	b.Grow(len(s))
	b.buf = append(b.buf, s...)
}

// AppendBytes appends p.
func (b *Buffer) AppendBytes(p []byte) {
	b.Grow(len(p))
	b.buf = append(b.buf, p...)
}

// AppendInt appends v in plain base-10 decimal form.
func (b *Buffer) AppendInt(v int64) {
	// 20 bytes covers any int64 including the sign
	b.Grow(20)
	b.buf = strconv.AppendInt(b.buf, v, 10)
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteTo writes the buffered content to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}
