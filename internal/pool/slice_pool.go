package pool

import "sync"

// unitSlicePool holds scratch code-unit slices for the string conversions, where
// the units only live until they are copied into a string or decoded into bytes.
var unitSlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// MaxPooledUnits is the largest slice capacity returned to the pool. Larger
// slices are left to the garbage collector so one huge input does not pin memory.
const MaxPooledUnits = 1 << 20

// GetUnitSlice retrieves and resizes a uint16 slice from the pool.
//
// The returned slice has length size. Its contents are unspecified; callers
// overwrite every element. The caller must call the returned cleanup function
// once the slice is no longer referenced.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint16: A slice with length equal to size
//   - func(): Cleanup function that returns the slice to the pool
//
// Example:
//
//	units, cleanup := pool.GetUnitSlice(base16384.EncodedLen(len(data)))
//	defer cleanup()
func GetUnitSlice(size int) ([]uint16, func()) {
	ptr, _ := unitSlicePool.Get().(*[]uint16)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]uint16, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > MaxPooledUnits {
			return
		}
		unitSlicePool.Put(ptr)
	}
}
