package bitstream

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest single read supported by ReadBits.
const MaxWidth = 64

var (
	// ErrExhausted indicates a read past the end of the buffer.
	ErrExhausted = errors.New("bitstream: buffer exhausted")
	// ErrWidth indicates a read wider than MaxWidth bits.
	ErrWidth = errors.New("bitstream: read width exceeds 64 bits")
)

// Reader is an MSB-first bit cursor over a byte slice.
// The buffer is not copied and must not change while the Reader is in use.
type Reader struct {
	buf []byte
	pos int // bits consumed
}

// NewReader returns a Reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int { return r.pos }

// Len returns the total number of bits in the buffer.
func (r *Reader) Len() int { return len(r.buf) * 8 }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.Len() - r.pos }

// ReadBits consumes n bits and returns them as an unsigned integer whose most
// significant bit is the first bit read. ReadBits(0) returns 0.
func (r *Reader) ReadBits(n uint) (uint64, error) {
	if n > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrWidth, n)
	}
	if int(n) > r.Remaining() {
		return 0, fmt.Errorf("%w: want %d bits at offset %d, have %d", ErrExhausted, n, r.pos, r.Remaining())
	}

	var v uint64
	pos := r.pos
	for rem := int(n); rem > 0; {
		// take as many bits as the current byte still holds
		used := pos % 8
		take := min(8-used, rem)
		b := r.buf[pos/8] >> (8 - used - take) & (1<<take - 1)
		v = v<<take | uint64(b)
		pos += take
		rem -= take
	}
	r.pos = pos

	return v, nil
}

// ReadBool consumes one bit and reports whether it is set.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadBits(1)
	if err != nil {
		return false, err
	}
	return b == 1, nil
}
