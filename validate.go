package base16384

import (
	"fmt"

	"github.com/arloliu/base16384/errs"
)

// Validate reports whether src could have been produced by Encode.
//
// It checks that src is non-empty, that the terminator lies in
// U+3D00..U+3D06, that every other unit lies in U+4E00..U+8DFF, and that the
// number of data units matches the payload length the terminator implies.
// Errors wrap the sentinels of the errs package.
func Validate(src []uint16) error {
	if len(src) == 0 {
		return errs.ErrEmptyInput
	}

	units := len(src) - 1
	terminator := src[units]
	if terminator < TerminatorBase || terminator > TerminatorMax {
		return fmt.Errorf("%w: U+%04X", errs.ErrInvalidTerminator, terminator)
	}

	for i, u := range src[:units] {
		if u < UnitBase || u > UnitMax {
			return fmt.Errorf("%w: U+%04X at index %d", errs.ErrInvalidCodeUnit, u, i)
		}
	}

	size := decodedSize(units, terminator)
	if size < 0 || EncodedLen(size)-1 != units {
		return fmt.Errorf("%w: %d data units, terminator U+%04X", errs.ErrLengthMismatch, units, terminator)
	}

	return nil
}
