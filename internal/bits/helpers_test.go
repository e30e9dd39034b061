package bits

import (
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

// Test-only encoder: builds '0'/'1' strings that toHex packs into messages.

func encUint(v uint64, width int) string {
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func encHeader(version uint8, t TypeID) string {
	return encUint(uint64(version), 3) + encUint(uint64(t), 3)
}

func encLiteral(version uint8, v uint64) string {
	nibbles := []uint64{v & 0xf}
	for v >>= 4; v != 0; v >>= 4 {
		nibbles = append([]uint64{v & 0xf}, nibbles...)
	}
	return encHeader(version, TypeLiteral) + encGroups(nibbles)
}

func encGroups(nibbles []uint64) string {
	var sb strings.Builder
	for i, n := range nibbles {
		if i == len(nibbles)-1 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
		sb.WriteString(encUint(n, 4))
	}
	return sb.String()
}

func encTotal(version uint8, t TypeID, subs ...string) string {
	body := strings.Join(subs, "")
	return encHeader(version, t) + "0" + encUint(uint64(len(body)), 15) + body
}

func encCount(version uint8, t TypeID, subs ...string) string {
	return encHeader(version, t) + "1" + encUint(uint64(len(subs)), 11) + strings.Join(subs, "")
}

// toHex pads bits with zeros to a whole number of hex digits.
func toHex(t *testing.T, bits string) string {
	t.Helper()
	for len(bits)%4 != 0 {
		bits += "0"
	}
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(bits); i += 4 {
		var n byte
		for _, c := range bits[i : i+4] {
			n <<= 1
			if c == '1' {
				n |= 1
			}
		}
		sb.WriteByte(digits[n])
	}
	return sb.String()
}

func mustDecode(t *testing.T, hex string) *Packet {
	t.Helper()
	p, err := Decode(hex)
	if err != nil {
		t.Fatalf("decode %s: %v", hex, err)
	}
	return p
}

func TestEncoderHelpersMatchKnownMessage(t *testing.T) {
	testlog.Start(t)
	msg := encTotal(1, TypeLess, encLiteral(6, 10), encLiteral(2, 20))
	if got := toHex(t, msg); got != "38006F4529120" {
		t.Fatalf("unexpected encoding: %s", got)
	}
}
