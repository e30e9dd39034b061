package bits

import (
	"errors"
	"fmt"
)

const (
	lengthTypeTotalBits = 0

	totalLengthBits = 15
	countBits       = 11
)

// decodeOperator reads the length-type flag and the sub-packets it delimits.
func (d *Decoder) decodeOperator(r *reader, depth int) ([]*Packet, error) {
	lengthType, err := r.readUint(1)
	if err != nil {
		return nil, err
	}
	if lengthType == lengthTypeTotalBits {
		return d.decodeByTotalLength(r, depth)
	}
	return d.decodeByCount(r, depth)
}

// decodeByTotalLength parses sub-packets until exactly the declared number
// of bits is consumed. Reads are confined to the declared region, so a
// sub-packet that would run past it fails instead of borrowing bits from
// whatever follows.
func (d *Decoder) decodeByTotalLength(r *reader, depth int) ([]*Packet, error) {
	total, err := r.readUint(totalLengthBits)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: empty sub-packet region", ErrMalformedLength)
	}
	if int(total) > r.remaining() {
		return nil, ErrUnexpectedEndOfBits
	}

	outer := r.limit
	end := r.pos + int(total)
	r.limit = end
	defer func() { r.limit = outer }()

	subs := make([]*Packet, 0, 2)
	for r.pos < end {
		sub, err := d.parsePacket(r, depth+1)
		if err != nil {
			if end < outer && errors.Is(err, ErrUnexpectedEndOfBits) {
				return nil, fmt.Errorf("%w: sub-packet overruns declared %d bits", ErrMalformedLength, total)
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (d *Decoder) decodeByCount(r *reader, depth int) ([]*Packet, error) {
	count, err := r.readUint(countBits)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: zero sub-packet count", ErrMalformedLength)
	}
	subs := make([]*Packet, 0, count)
	for i := uint64(0); i < count; i++ {
		sub, err := d.parsePacket(r, depth+1)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
