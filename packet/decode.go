package packet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc/bitstream"
)

// Field widths of the wire format.
const (
	versionBits     = 3
	typeBits        = 3
	groupBits       = 4
	bitLengthBits   = 15
	childCountBits  = 11
	maxLiteralWidth = 64
)

// DecodeHex decodes the outermost packet of a hexadecimal transmission.
// Surrounding whitespace is ignored, as are padding bits after the packet.
func DecodeHex(s string) (Packet, error) {
	buf, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHex, err)
	}
	return Decode(bitstream.NewReader(buf))
}

// Decode reads one packet, including all of its descendants, from r.
// On error the cursor position of r is unspecified.
func Decode(r *bitstream.Reader) (Packet, error) {
	version, err := r.ReadBits(versionBits)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	typ, err := r.ReadBits(typeBits)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	h := Header{Version: uint8(version), Type: Type(typ)}

	if h.Type == LiteralType {
		v, err := decodeLiteral(r)
		if err != nil {
			return nil, err
		}
		return &Literal{Header: h, Value: v}, nil
	}

	children, err := decodeChildren(r)
	if err != nil {
		return nil, fmt.Errorf("%s packet at v%d: %w", h.Type, h.Version, err)
	}
	return &Operator{Header: h, Children: children}, nil
}

// decodeLiteral accumulates nibbles until a group with a clear continuation bit.
func decodeLiteral(r *bitstream.Reader) (uint64, error) {
	var v uint64
	width := 0
	for {
		more, err := r.ReadBool()
		if err != nil {
			return 0, fmt.Errorf("literal: %w", err)
		}
		nibble, err := r.ReadBits(groupBits)
		if err != nil {
			return 0, fmt.Errorf("literal: %w", err)
		}
		// leading zero groups do not count towards the width
		if width > 0 || nibble != 0 {
			width += groupBits
		}
		if width > maxLiteralWidth {
			return 0, ErrLiteralOverflow
		}
		v = v<<groupBits | nibble
		if !more {
			return v, nil
		}
	}
}

// decodeChildren reads the length-type bit and the children it frames.
func decodeChildren(r *bitstream.Reader) ([]Packet, error) {
	byCount, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("length type: %w", err)
	}

	if byCount {
		n, err := r.ReadBits(childCountBits)
		if err != nil {
			return nil, fmt.Errorf("child count: %w", err)
		}
		children := make([]Packet, 0, n)
		for i := uint64(0); i < n; i++ {
			c, err := Decode(r)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return children, nil
	}

	length, err := r.ReadBits(bitLengthBits)
	if err != nil {
		return nil, fmt.Errorf("payload length: %w", err)
	}
	start := r.Position()
	end := start + int(length)
	var children []Packet
	for r.Position() < end {
		c, err := Decode(r)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if r.Position() != end {
		return nil, fmt.Errorf("%w: declared %d bits, consumed %d", ErrLengthMismatch, length, r.Position()-start)
	}
	return children, nil
}
