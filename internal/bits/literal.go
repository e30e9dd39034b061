package bits

const (
	literalGroupBits = 5
	literalMoreFlag  = 0x10
	literalNibble    = 0x0f
)

// decodeLiteral reads 5-bit groups until one has a clear continuation flag.
// The value is accumulated as value*16+nibble and reinterpreted as int64,
// so a full 64-bit payload keeps its two's-complement bit pattern.
func decodeLiteral(r *reader) (int64, error) {
	var v uint64
	for {
		group, err := r.readUint(literalGroupBits)
		if err != nil {
			return 0, err
		}
		if v>>60 != 0 {
			return 0, ErrLiteralOverflow
		}
		v = v<<4 | group&literalNibble
		if group&literalMoreFlag == 0 {
			return int64(v), nil
		}
	}
}
