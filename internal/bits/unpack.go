package bits

// Bits is an immutable, MSB-first bit sequence unpacked from hex digits.
// The zero value is an empty sequence.
type Bits struct {
	data []byte
	n    int
}

// Unpack expands each hex digit of s into four bits, most significant bit
// first, left to right. Both upper and lower case digits are accepted.
func Unpack(s string) (Bits, error) {
	data := make([]byte, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		nibble, ok := hexNibble(s[i])
		if !ok {
			return Bits{}, &HexDigitError{Offset: i, Char: s[i]}
		}
		if i%2 == 0 {
			data[i/2] = nibble << 4
		} else {
			data[i/2] |= nibble
		}
	}
	return Bits{data: data, n: 4 * len(s)}, nil
}

// MustUnpack is like Unpack but panics on invalid input. Intended for
// package-level fixtures.
func MustUnpack(s string) Bits {
	b, err := Unpack(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int { return b.n }

// Bit reports the bit at position i. It panics when i is out of range.
func (b Bits) Bit(i int) bool {
	if i < 0 || i >= b.n {
		panic("bits: index out of range")
	}
	return b.data[i/8]&(0x80>>(i%8)) != 0
}

// String renders the sequence as a string of '0' and '1' characters.
func (b Bits) String() string {
	out := make([]byte, b.n)
	for i := range out {
		out[i] = '0'
		if b.Bit(i) {
			out[i] = '1'
		}
	}
	return string(out)
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
