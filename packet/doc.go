// Package packet decodes and evaluates the BITS transmission format: a tree of
// packets packed MSB-first into a hexadecimal string.
//
// Every packet starts with a 3-bit version and a 3-bit type id. Type id 4 is a
// literal whose value follows as 5-bit groups (one continuation bit plus a
// nibble). Every other type id is an operator whose children follow one of two
// framings, selected by a single length-type bit:
//
//	0: a 15-bit count of payload bits; children are decoded until exactly
//	   that many bits have been consumed.
//	1: an 11-bit count of children.
//
// The decoded tree is a sum type: Packet is implemented only by *Literal and
// *Operator, and Eval and VersionSum switch over both exhaustively.
//
//	p, err := packet.DecodeHex("C200B40A82")
//	v, err := packet.Eval(p) // 3
package packet
