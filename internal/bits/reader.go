package bits

// reader is the parse cursor. limit bounds reads to the region the caller
// is allowed to consume, which may end before the buffer does.
type reader struct {
	bits  Bits
	pos   int
	limit int
}

func (r *reader) remaining() int { return r.limit - r.pos }

// readUint reads width bits (at most 64) as an unsigned big-endian integer.
func (r *reader) readUint(width int) (uint64, error) {
	if width > r.remaining() {
		return 0, ErrUnexpectedEndOfBits
	}
	var v uint64
	for i := 0; i < width; i++ {
		v <<= 1
		if r.bits.Bit(r.pos + i) {
			v |= 1
		}
	}
	r.pos += width
	return v, nil
}
