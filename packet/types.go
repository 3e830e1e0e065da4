package packet

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the decoder and evaluator.
var (
	// ErrHex indicates input that is not valid hexadecimal.
	ErrHex = errors.New("packet: invalid hex input")
	// ErrLengthMismatch indicates children that overrun their declared bit length.
	ErrLengthMismatch = errors.New("packet: sub-packets overrun declared length")
	// ErrLiteralOverflow indicates a literal wider than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")
	// ErrArity indicates an operator with the wrong number of children.
	ErrArity = errors.New("packet: wrong number of operands")
	// ErrType indicates an operator node carrying the literal type id.
	ErrType = errors.New("packet: invalid operator type")
)

// Type is the 3-bit packet type id.
type Type uint8

// Type ids.
const (
	Sum Type = iota
	Product
	Minimum
	Maximum
	LiteralType
	GreaterThan
	LessThan
	EqualTo
)

var typeNames = [...]string{"sum", "product", "min", "max", "literal", "gt", "lt", "eq"}

// String returns a short lower-case name such as "sum" or "gt".
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Header holds the fields common to every packet.
type Header struct {
	Version uint8
	Type    Type
}

// Packet is a decoded node, either *Literal or *Operator.
type Packet interface {
	// Head returns the version and type id of the node.
	Head() Header
	String() string
	sealed()
}

// Literal is a packet carrying an unsigned value.
type Literal struct {
	Header
	Value uint64
}

// Operator is a packet combining the values of its children.
type Operator struct {
	Header
	Children []Packet
}

// Head returns the literal's header.
func (l *Literal) Head() Header { return l.Header }

// Head returns the operator's header.
func (o *Operator) Head() Header { return o.Header }

func (*Literal) sealed() {}

func (*Operator) sealed() {}

// String renders the literal value in decimal.
func (l *Literal) String() string {
	return fmt.Sprint(l.Value)
}

// String renders the operator as "name(child, ...)".
func (o *Operator) String() string {
	var sb strings.Builder
	sb.WriteString(o.Type.String())
	sb.WriteByte('(')
	for i, c := range o.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
