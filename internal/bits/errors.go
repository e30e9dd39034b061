package bits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHexDigit        = errors.New("bits: invalid hex digit")
	ErrUnexpectedEndOfBits    = errors.New("bits: unexpected end of bits")
	ErrMalformedLength        = errors.New("bits: malformed sub-packet length")
	ErrArityMismatch          = errors.New("bits: operator arity mismatch")
	ErrUnknownOperator        = errors.New("bits: unknown operator")
	ErrRecursionLimitExceeded = errors.New("bits: recursion limit exceeded")
	ErrLiteralOverflow        = errors.New("bits: literal overflows 64 bits")
	ErrTrailingData           = errors.New("bits: non-zero trailing data")
	ErrInputTooLarge          = errors.New("bits: input too large")
)

// HexDigitError reports the first character Unpack could not map to a nibble.
type HexDigitError struct {
	Offset int
	Char   byte
}

func (e *HexDigitError) Error() string {
	return fmt.Sprintf("bits: invalid hex digit %q at offset %d", e.Char, e.Offset)
}

func (e *HexDigitError) Unwrap() error { return ErrInvalidHexDigit }

// DecodeError attaches the bit offset of the packet being decoded to the
// underlying failure. Only the innermost failing packet is reported.
type DecodeError struct {
	Op     string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bits: %s at bit %d: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ArityError indicates an operator with an operand count its type does not
// accept.
type ArityError struct {
	Type TypeID
	Got  int
}

func (e *ArityError) Error() string {
	if e.Type.IsComparison() {
		return fmt.Sprintf("bits: %s wants exactly 2 operands, got %d", e.Type, e.Got)
	}
	return fmt.Sprintf("bits: %s wants at least 1 operand, got %d", e.Type, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// Kind maps err to a stable label for logs, metrics and API responses.
// It returns "" for a nil error and "internal" for errors outside the
// package taxonomy.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidHexDigit):
		return "invalid_hex_digit"
	case errors.Is(err, ErrMalformedLength):
		return "malformed_length"
	case errors.Is(err, ErrRecursionLimitExceeded):
		return "recursion_limit_exceeded"
	case errors.Is(err, ErrLiteralOverflow):
		return "literal_overflow"
	case errors.Is(err, ErrUnexpectedEndOfBits):
		return "unexpected_end_of_bits"
	case errors.Is(err, ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, ErrUnknownOperator):
		return "unknown_operator"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	case errors.Is(err, ErrInputTooLarge):
		return "input_too_large"
	default:
		return "internal"
	}
}
