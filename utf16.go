package base16384

import (
	"fmt"

	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
)

// ByteOrderMark is U+FEFF, written ahead of UTF-16 output when enabled.
const ByteOrderMark = 0xFEFF

// AppendUTF16 appends units to dst as 16-bit words in the order of engine.
func AppendUTF16(dst []byte, units []uint16, engine endian.EndianEngine) []byte {
	dst = growBytes(dst, len(units)*2)
	for _, u := range units {
		dst = engine.AppendUint16(dst, u)
	}

	return dst
}

// ParseUTF16 reads 16-bit words from b in the order of engine. No byte order
// mark is interpreted.
func ParseUTF16(b []byte, engine endian.EndianEngine) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrOddLength, len(b))
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = engine.Uint16(b[2*i:])
	}

	return units, nil
}

// detectBOM returns the byte order announced by a leading U+FEFF in b and the
// input with the mark removed. Without a mark, b is returned with ok false.
func detectBOM(b []byte) (endian.EndianEngine, []byte, bool) {
	if len(b) < 2 {
		return nil, b, false
	}

	switch {
	case b[0] == 0xFE && b[1] == 0xFF:
		return endian.GetBigEndianEngine(), b[2:], true
	case b[0] == 0xFF && b[1] == 0xFE:
		return endian.GetLittleEndianEngine(), b[2:], true
	default:
		return nil, b, false
	}
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}

	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
