package bits

import (
	"strconv"
	"strings"
)

// TypeID is the 3-bit packet type tag.
type TypeID uint8

const (
	TypeSum     TypeID = 0
	TypeProduct TypeID = 1
	TypeMinimum TypeID = 2
	TypeMaximum TypeID = 3
	TypeLiteral TypeID = 4
	TypeGreater TypeID = 5
	TypeLess    TypeID = 6
	TypeEqual   TypeID = 7
)

var typeNames = [...]string{
	TypeSum:     "sum",
	TypeProduct: "product",
	TypeMinimum: "min",
	TypeMaximum: "max",
	TypeLiteral: "literal",
	TypeGreater: "gt",
	TypeLess:    "lt",
	TypeEqual:   "eq",
}

func (t TypeID) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// IsComparison reports whether t is one of the binary comparison operators.
func (t TypeID) IsComparison() bool {
	return t == TypeGreater || t == TypeLess || t == TypeEqual
}

// Packet is one decoded node. A literal packet (TypeLiteral) carries Value
// and no sub-packets; every other type is an operator over SubPackets in
// encoded order. Packets produced by the decoder are never mutated or
// shared between parents.
type Packet struct {
	Version    uint8
	TypeID     TypeID
	Value      int64
	SubPackets []*Packet
}

// IsLiteral reports whether p is a leaf literal packet.
func (p *Packet) IsLiteral() bool { return p.TypeID == TypeLiteral }

// Count returns the number of packets in the tree rooted at p.
func (p *Packet) Count() int {
	n := 1
	for _, sub := range p.SubPackets {
		n += sub.Count()
	}
	return n
}

// VersionSum is shorthand for VersionSum(p).
func (p *Packet) VersionSum() uint64 { return VersionSum(p) }

// Evaluate is shorthand for Evaluate(p).
func (p *Packet) Evaluate() (int64, error) { return Evaluate(p) }

// String renders the tree as an s-expression, e.g.
// "(lt v1 (literal v6 10) (literal v2 20))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

func (p *Packet) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(p.TypeID.String())
	sb.WriteString(" v")
	sb.WriteString(strconv.Itoa(int(p.Version)))
	if p.IsLiteral() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(p.Value, 10))
	}
	for _, sub := range p.SubPackets {
		sb.WriteByte(' ')
		sub.writeTo(sb)
	}
	sb.WriteByte(')')
}
