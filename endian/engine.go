// Package endian selects the byte order used to serialize code units as UTF-16.
//
// Base16384 text is usually exchanged as UTF-8, but the reference tools store it
// as UTF-16, where each code unit is exactly one 16-bit word. This package
// combines ByteOrder and AppendByteOrder from encoding/binary into one
// EndianEngine so serializers can both append and read words:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, unit)
//	unit = engine.Uint16(buf[i:])
//
// All engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"github.com/arloliu/base16384/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	// 0x0100 stores 0x01 first only on big-endian hosts.
	var i uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&i))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.BigEndian)
}

// ParseByteOrder maps a byte order name to its engine. Accepted names are
// "big"/"be", "little"/"le" and "native", case-insensitive. The empty string
// selects big-endian, the order of the reference encoder.
func ParseByteOrder(name string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "big", "be", "bigendian", "big-endian":
		return GetBigEndianEngine(), nil
	case "little", "le", "littleendian", "little-endian":
		return GetLittleEndianEngine(), nil
	case "native":
		return GetNativeEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidByteOrder, name)
	}
}
