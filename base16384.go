// Package base16384 implements a binary-to-text encoding that packs 14 bits into
// every character.
//
// Input bytes are regrouped into 14-bit code units and shifted into the CJK
// Unified Ideographs block starting at U+4E00, so every 7 bytes become 4
// characters. One extra terminator unit in the range U+3D00..U+3D06 records the
// input length modulo 7, which lets the decoder drop the padding bits of the
// last group and recover the exact payload.
//
// # Basic Usage
//
// Encoding bytes into code units and back:
//
//	units := base16384.Encode([]byte("Example"))
//	data := base16384.Decode(units)
//
// Working with text:
//
//	s := base16384.EncodeText("Example") // "彞吖菁穥㴀"
//	orig := base16384.DecodeText(s)      // "Example"
//
// # Lenient and strict decoding
//
// The package-level Decode functions never fail. Input that was not produced
// by Encode decodes to unspecified bytes. Use Validate, or an Encoding created
// with NewEncoding (strict by default), to reject malformed input with an error
// from the errs package.
//
// # Encodings
//
// An Encoding bundles optional behavior on top of the core codec: payload
// compression before encoding, strict validation, and UTF-16 serialization with
// a configurable byte order and byte order mark.
//
//	enc, err := base16384.NewEncoding(
//	    base16384.WithCompression(format.CompressionZstd),
//	    base16384.WithBOM(true),
//	)
//
// All functions are safe for concurrent use.
package base16384

import (
	"github.com/arloliu/base16384/internal/realign"
)

const (
	// UnitBase is the code point of the smallest data unit.
	UnitBase = 0x4E00
	// UnitMax is the code point of the largest data unit.
	UnitMax = UnitBase + 1<<unitWidth - 1
	// TerminatorBase is the code point of the terminator for a payload whose
	// length is a multiple of 7.
	TerminatorBase = 0x3D00
	// TerminatorMax is the largest terminator the encoder produces.
	TerminatorMax = TerminatorBase + groupBytes - 1

	byteWidth  = 8
	unitWidth  = 14
	groupBytes = 7 // 7 bytes = 56 bits = 4 units
	groupUnits = 4
)

var (
	encodeLayout = realign.Layout{
		SourceWidth:  byteWidth,
		TargetWidth:  unitWidth,
		SourceOffset: 0,
		TargetOffset: UnitBase,
	}
	decodeLayout = encodeLayout.Inverse()
)

func init() {
	if err := encodeLayout.Validate(); err != nil {
		panic(err)
	}
}

// EncodedLen returns the number of code units, terminator included, that Encode
// produces for n input bytes.
func EncodedLen(n int) int {
	return encodeLayout.Groups(n) + 1
}

// DecodedLen returns the number of bytes Decode produces for src.
//
// The result is computed from the terminator alone. For input that was not
// produced by Encode it is clamped to the range [0, bits available in src].
func DecodedLen(src []uint16) int {
	if len(src) == 0 {
		return 0
	}

	units := len(src) - 1
	size := decodedSize(units, src[units])
	if size < 0 {
		return 0
	}

	if limit := decodeLayout.Groups(units); size > limit {
		return limit
	}

	return size
}

// decodedSize applies the terminator formula without clamping. The result is
// negative when the terminator disagrees with a short unit count.
func decodedSize(units int, terminator uint16) int {
	residue := int(terminator) - TerminatorBase
	if residue == 0 {
		residue = groupBytes
	}

	// floor((units-1)/4) groups of 7 bytes precede the last partial group.
	fullGroups := (units+groupUnits-1)/groupUnits - 1

	return fullGroups*groupBytes + residue
}

// Encode returns the base16384 code units of src. The last unit is the
// terminator. Encode never fails; an empty src yields a single terminator.
func Encode(src []byte) []uint16 {
	dst := make([]uint16, EncodedLen(len(src)))
	encodeInto(dst, src)

	return dst
}

// encodeInto writes the code units of src into dst, which must hold exactly
// EncodedLen(len(src)) elements.
func encodeInto(dst []uint16, src []byte) {
	last := len(dst) - 1
	realign.Realign(dst[:last], src, encodeLayout)
	dst[last] = uint16(len(src)%groupBytes + TerminatorBase)
}

// Decode returns the bytes encoded in src.
//
// Decode does not validate its input: src must be a sequence produced by Encode
// for the result to be meaningful. Malformed input, including an empty slice or
// a terminator outside U+3D00..U+3D06, decodes to unspecified bytes without
// panicking. Use Validate or a strict Encoding to detect it.
func Decode(src []uint16) []byte {
	dst := make([]byte, DecodedLen(src))
	if len(dst) > 0 {
		realign.Realign(dst, src[:len(src)-1], decodeLayout)
	}

	return dst
}
