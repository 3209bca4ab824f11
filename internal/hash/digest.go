// Package hash computes payload digests reported in logs.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex returns Sum(data) as a fixed-width lowercase hex string for logs.
func Hex(data []byte) string {
	return fmt.Sprintf("%016x", Sum(data))
}
