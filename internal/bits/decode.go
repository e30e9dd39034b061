package bits

import "errors"

const (
	headerBits = 6

	// DefaultMaxDepth bounds packet nesting for decoders built from
	// DefaultDecoderOptions.
	DefaultMaxDepth = 256
)

// DecoderOptions tunes the limits a Decoder enforces.
type DecoderOptions struct {
	// MaxDepth is the deepest packet nesting accepted; the root is depth 1.
	// Values <= 0 select DefaultMaxDepth.
	MaxDepth int
	// MaxInputDigits rejects longer hex inputs in Decode. Zero disables
	// the check.
	MaxInputDigits int
	// RejectNonZeroPadding makes Decode fail when any bit after the root
	// packet is set.
	RejectNonZeroPadding bool
}

// DefaultDecoderOptions returns the options used by the package-level
// Decode and Parse helpers.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{MaxDepth: DefaultMaxDepth}
}

// Decoder parses BITS messages. It holds no per-message state and may be
// used from multiple goroutines.
type Decoder struct {
	opts DecoderOptions
}

// NewDecoder returns a decoder enforcing opts.
func NewDecoder(opts DecoderOptions) *Decoder {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputDigits < 0 {
		opts.MaxInputDigits = 0
	}
	return &Decoder{opts: opts}
}

// Options returns the effective options.
func (d *Decoder) Options() DecoderOptions { return d.opts }

var defaultDecoder = NewDecoder(DefaultDecoderOptions())

// Decode unpacks hex and parses the root packet with default options.
func Decode(hex string) (*Packet, error) {
	p, _, err := defaultDecoder.Decode(hex)
	return p, err
}

// Parse parses one packet starting at offset with default options.
func Parse(b Bits, offset int) (int, *Packet, error) {
	return defaultDecoder.Parse(b, offset)
}

// Decode unpacks hex and parses the root packet. It returns the packet and
// the number of bits it consumed; any remaining bits are padding.
func (d *Decoder) Decode(hex string) (*Packet, int, error) {
	if d.opts.MaxInputDigits > 0 && len(hex) > d.opts.MaxInputDigits {
		return nil, 0, ErrInputTooLarge
	}
	b, err := Unpack(hex)
	if err != nil {
		return nil, 0, err
	}
	next, p, err := d.Parse(b, 0)
	if err != nil {
		return nil, 0, err
	}
	if d.opts.RejectNonZeroPadding {
		for i := next; i < b.Len(); i++ {
			if b.Bit(i) {
				return nil, 0, &DecodeError{Op: "padding", Offset: i, Err: ErrTrailingData}
			}
		}
	}
	return p, next, nil
}

// Parse decodes the packet starting at bit offset and returns the offset
// just past it.
func (d *Decoder) Parse(b Bits, offset int) (int, *Packet, error) {
	if offset < 0 || offset > b.Len() {
		return offset, nil, &DecodeError{Op: "packet", Offset: offset, Err: ErrUnexpectedEndOfBits}
	}
	r := &reader{bits: b, pos: offset, limit: b.Len()}
	p, err := d.parsePacket(r, 1)
	if err != nil {
		return offset, nil, err
	}
	return r.pos, p, nil
}

func (d *Decoder) parsePacket(r *reader, depth int) (*Packet, error) {
	start := r.pos
	if depth > d.opts.MaxDepth {
		return nil, &DecodeError{Op: "packet", Offset: start, Err: ErrRecursionLimitExceeded}
	}
	if r.remaining() < headerBits {
		return nil, &DecodeError{Op: "header", Offset: start, Err: ErrUnexpectedEndOfBits}
	}
	version, _ := r.readUint(3)
	typeID, _ := r.readUint(3)

	p := &Packet{Version: uint8(version), TypeID: TypeID(typeID)}
	if p.TypeID == TypeLiteral {
		v, err := decodeLiteral(r)
		if err != nil {
			return nil, wrapDecode("literal", start, err)
		}
		p.Value = v
		return p, nil
	}
	subs, err := d.decodeOperator(r, depth)
	if err != nil {
		return nil, wrapDecode("operator", start, err)
	}
	p.SubPackets = subs
	return p, nil
}

// wrapDecode tags err with the packet offset unless a nested packet has
// already done so.
func wrapDecode(op string, offset int, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Op: op, Offset: offset, Err: err}
}
