// Package realign regroups a stream of fixed-width unsigned integers into a stream
// of integers of another fixed width.
//
// The input is treated as one continuous bitstream, most significant bit first
// within each element, and sliced into target-width chunks. An additive offset is
// removed from every input element before slicing and added to every output
// element after assembly, which lets the same routine map bytes into a shifted
// Unicode range and back.
//
// # Bit layout
//
// Regrouping 8-bit bytes into 14-bit units:
//
//	bytes   aaaaaaaa bbbbbbbb cccccccc ...
//	units   aaaaaaaabbbbbb bbcccccccc.... ...
//
// A trailing group that does not fill a whole target element is emitted left
// aligned (zero padded on the right). Callers that need the exact payload length
// must carry it separately.
package realign

import (
	"fmt"

	"github.com/arloliu/base16384/errs"
)

// MaxWidth is the largest element width, in bits, a Layout may use.
const MaxWidth = 32

// Unsigned is the set of element types Realign can read and write.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Layout describes one direction of a regrouping.
type Layout struct {
	SourceWidth  uint   // significant bits per input element
	TargetWidth  uint   // significant bits per output element
	SourceOffset uint64 // subtracted from every input element
	TargetOffset uint64 // added to every output element
}

// Inverse returns the layout that undoes l.
func (l Layout) Inverse() Layout {
	return Layout{
		SourceWidth:  l.TargetWidth,
		TargetWidth:  l.SourceWidth,
		SourceOffset: l.TargetOffset,
		TargetOffset: l.SourceOffset,
	}
}

// Validate reports whether both widths are within 1..MaxWidth.
func (l Layout) Validate() error {
	if l.SourceWidth == 0 || l.SourceWidth > MaxWidth {
		return fmt.Errorf("%w: source width %d", errs.ErrInvalidLayout, l.SourceWidth)
	}
	if l.TargetWidth == 0 || l.TargetWidth > MaxWidth {
		return fmt.Errorf("%w: target width %d", errs.ErrInvalidLayout, l.TargetWidth)
	}

	return nil
}

// Groups returns how many target elements n source elements produce, counting
// the trailing partial group.
func (l Layout) Groups(n int) int {
	bits := n * int(l.SourceWidth)
	tw := int(l.TargetWidth)

	return (bits + tw - 1) / tw
}

// Realign regroups src into dst according to layout and returns the number of
// elements written.
//
// Writing stops as soon as dst is full; the rest of src is ignored. This is how
// decoders drop the padding bits of the last group, so a short dst is not an
// error. A dst of length layout.Groups(len(src)) receives every bit of src.
//
// The layout is not validated here; widths outside 1..MaxWidth give
// meaningless output.
//
// Parameters:
//   - dst: Output buffer, filled from index 0
//   - src: Input elements, never modified
//   - layout: Widths and offsets of both sides
//
// Returns:
//   - int: Number of elements written to dst
func Realign[S, T Unsigned](dst []T, src []S, layout Layout) int {
	if len(dst) == 0 {
		return 0
	}

	sw, tw := layout.SourceWidth, layout.TargetWidth
	mask := uint64(1)<<tw - 1

	var (
		rest   uint64 // high bits of the group being assembled, already in position
		offset uint   // number of pending bits: leftover plus the current element
		n      int
	)

	for _, x := range src {
		value := uint64(x) - layout.SourceOffset
		offset += sw

		for offset >= tw {
			offset -= tw
			dst[n] = T(rest + (value>>offset)&mask + layout.TargetOffset)
			n++
			if n == len(dst) {
				return n
			}
			rest = 0
		}

		// offset < tw here, so the shift never discards pending bits.
		rest += (value << (tw - offset)) & mask
	}

	if offset > 0 {
		dst[n] = T(rest + layout.TargetOffset)
		n++
	}

	return n
}
