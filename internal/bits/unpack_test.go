package bits

import (
	"errors"
	"testing"

	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func TestUnpackLength(t *testing.T) {
	testlog.Start(t)
	for _, in := range []string{"", "0", "F", "D2FE28", "abcdef0123456789", "620080001611562C8802118E34"} {
		b, err := Unpack(in)
		if err != nil {
			t.Fatalf("unpack %q: %v", in, err)
		}
		if b.Len() != 4*len(in) {
			t.Fatalf("unpack %q: expected %d bits, got %d", in, 4*len(in), b.Len())
		}
	}
}

func TestUnpackBitOrder(t *testing.T) {
	testlog.Start(t)
	b, err := Unpack("D2FE28")
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if got := b.String(); got != "110100101111111000101000" {
		t.Fatalf("unexpected bits: %s", got)
	}
}

func TestUnpackAcceptsBothCases(t *testing.T) {
	testlog.Start(t)
	upper, err := Unpack("ABCDEF")
	if err != nil {
		t.Fatalf("unpack upper: %v", err)
	}
	lower, err := Unpack("abcdef")
	if err != nil {
		t.Fatalf("unpack lower: %v", err)
	}
	if upper.String() != lower.String() {
		t.Fatalf("case mismatch: %s vs %s", upper, lower)
	}
}

func TestUnpackInvalidHexDigit(t *testing.T) {
	testlog.Start(t)
	_, err := Unpack("D2FG28")
	if !errors.Is(err, ErrInvalidHexDigit) {
		t.Fatalf("expected ErrInvalidHexDigit, got %v", err)
	}
	var hexErr *HexDigitError
	if !errors.As(err, &hexErr) {
		t.Fatalf("expected HexDigitError, got %T", err)
	}
	if hexErr.Offset != 3 || hexErr.Char != 'G' {
		t.Fatalf("unexpected error detail: offset=%d char=%q", hexErr.Offset, hexErr.Char)
	}
}

func TestUnpackRejectsWhitespace(t *testing.T) {
	testlog.Start(t)
	if _, err := Unpack("D2FE28\n"); !errors.Is(err, ErrInvalidHexDigit) {
		t.Fatalf("expected ErrInvalidHexDigit, got %v", err)
	}
}
