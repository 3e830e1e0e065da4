// Package bitstream reads unsigned integers of arbitrary width from a byte
// buffer, most significant bit first.
//
// A Reader keeps a cursor measured in bits. Every read either consumes exactly
// the requested number of bits or fails without moving the cursor:
//
//	r := bitstream.NewReader([]byte{0xD2, 0xFE, 0x28})
//	v, _ := r.ReadBits(3) // 6
//	t, _ := r.ReadBits(3) // 4
//
// Reads wider than 64 bits return ErrWidth; reads past the end of the buffer
// return ErrExhausted.
package bitstream
