// Package errs defines the sentinel errors returned by base16384 and its subpackages.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should match them with errors.Is:
//
//	if _, err := enc.Decode(units); errors.Is(err, errs.ErrInvalidTerminator) {
//	    // not produced by this encoder
//	}
package errs

import "errors"

// Decoding errors.
var (
	// ErrEmptyInput is returned when a code-unit sequence has no terminator unit.
	ErrEmptyInput = errors.New("base16384: empty input, missing terminator unit")
	// ErrInvalidTerminator is returned when the last unit is outside the terminator range.
	ErrInvalidTerminator = errors.New("base16384: invalid terminator unit")
	// ErrInvalidCodeUnit is returned when a data unit is outside the 14-bit code range.
	ErrInvalidCodeUnit = errors.New("base16384: invalid code unit")
	// ErrLengthMismatch is returned when the number of data units disagrees with
	// the payload length recorded in the terminator.
	ErrLengthMismatch = errors.New("base16384: code unit count does not match terminator")
	// ErrOddLength is returned when UTF-16 input has an odd number of bytes.
	ErrOddLength = errors.New("base16384: odd length UTF-16 input")
)

// Configuration errors.
var (
	ErrInvalidCompression = errors.New("base16384: invalid compression type")
	ErrInvalidByteOrder   = errors.New("base16384: invalid byte order")
	ErrInvalidLayout      = errors.New("base16384: invalid realign layout")
)
