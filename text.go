package base16384

import (
	"strings"
	"unicode/utf8"

	"github.com/arloliu/base16384/internal/pool"
)

// EncodeToString returns the base16384 text of src, one character per code unit.
func EncodeToString(src []byte) string {
	units, cleanup := pool.GetUnitSlice(EncodedLen(len(src)))
	defer cleanup()

	encodeInto(units, src)

	return unitsToString(units)
}

// DecodeString returns the bytes encoded in the base16384 text s.
//
// Like Decode it does not validate s. Characters above U+FFFF cannot be code
// units and are truncated to their low 16 bits.
func DecodeString(s string) []byte {
	units, cleanup := stringToUnits(s)
	defer cleanup()

	return Decode(units)
}

// EncodeText encodes the UTF-8 bytes of text.
func EncodeText(text string) string {
	return EncodeToString([]byte(text))
}

// DecodeText decodes s and returns the payload as a string. Payloads that are
// not valid UTF-8 are returned as-is.
func DecodeText(s string) string {
	return string(DecodeString(s))
}

// unitsToString renders code units as runes. Every data and terminator unit is
// a BMP scalar value taking exactly three UTF-8 bytes.
func unitsToString(units []uint16) string {
	var sb strings.Builder
	sb.Grow(len(units) * 3)
	for _, u := range units {
		sb.WriteRune(rune(u))
	}

	return sb.String()
}

// stringToUnits converts s into pooled code units. The returned cleanup must be
// called once the units are no longer referenced.
func stringToUnits(s string) ([]uint16, func()) {
	units, cleanup := pool.GetUnitSlice(utf8.RuneCountInString(s))

	i := 0
	for _, r := range s {
		units[i] = uint16(r) //nolint:gosec // truncation is the documented behavior
		i++
	}

	return units, cleanup
}
