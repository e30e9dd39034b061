package bits

import "fmt"

// VersionSum returns the sum of the version field of every packet in the
// tree rooted at p.
func VersionSum(p *Packet) uint64 {
	if p == nil {
		return 0
	}
	sum := uint64(p.Version)
	for _, sub := range p.SubPackets {
		sum += VersionSum(sub)
	}
	return sum
}

// Evaluate computes the expression value of the tree rooted at p.
// Arithmetic wraps on int64 overflow.
func Evaluate(p *Packet) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: nil packet", ErrUnknownOperator)
	}
	if p.IsLiteral() {
		return p.Value, nil
	}
	switch p.TypeID {
	case TypeSum, TypeProduct, TypeMinimum, TypeMaximum:
		return evaluateFold(p)
	case TypeGreater, TypeLess, TypeEqual:
		return evaluateComparison(p)
	default:
		return 0, fmt.Errorf("%w: type id %d", ErrUnknownOperator, uint8(p.TypeID))
	}
}

func evaluateFold(p *Packet) (int64, error) {
	if len(p.SubPackets) == 0 {
		return 0, &ArityError{Type: p.TypeID, Got: 0}
	}
	acc, err := Evaluate(p.SubPackets[0])
	if err != nil {
		return 0, err
	}
	for _, sub := range p.SubPackets[1:] {
		v, err := Evaluate(sub)
		if err != nil {
			return 0, err
		}
		switch p.TypeID {
		case TypeSum:
			acc += v
		case TypeProduct:
			acc *= v
		case TypeMinimum:
			acc = min(acc, v)
		case TypeMaximum:
			acc = max(acc, v)
		}
	}
	return acc, nil
}

func evaluateComparison(p *Packet) (int64, error) {
	if len(p.SubPackets) != 2 {
		return 0, &ArityError{Type: p.TypeID, Got: len(p.SubPackets)}
	}
	lhs, err := Evaluate(p.SubPackets[0])
	if err != nil {
		return 0, err
	}
	rhs, err := Evaluate(p.SubPackets[1])
	if err != nil {
		return 0, err
	}
	var ok bool
	switch p.TypeID {
	case TypeGreater:
		ok = lhs > rhs
	case TypeLess:
		ok = lhs < rhs
	case TypeEqual:
		ok = lhs == rhs
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}
