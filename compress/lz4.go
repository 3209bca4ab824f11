package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/base16384/format"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDecompressedSize bounds the buffer Decompress will grow to.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (c LZ4Compressor) Type() format.CompressionType { return format.CompressionLZ4 }

// Compress compresses the input data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 {
		return appendLiteralBlock(dst[:0], data), nil
	}

	return dst[:n], nil
}

// appendLiteralBlock stores data as a block made of one literal run, the
// representation of input that has no matches.
func appendLiteralBlock(dst, data []byte) []byte {
	const literalMask = 0x0F

	size := len(data)
	if size < literalMask {
		dst = append(dst, byte(size<<4))
	} else {
		dst = append(dst, literalMask<<4)
		rest := size - literalMask
		for ; rest >= 0xFF; rest -= 0xFF {
			dst = append(dst, 0xFF)
		}
		dst = append(dst, byte(rest))
	}

	return append(dst, data...)
}

// Decompress decompresses an LZ4 block.
//
// The block does not record its decompressed size, so the output buffer starts
// at 4x the input and doubles on ErrInvalidSourceShortBuffer, up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= lz4MaxDecompressedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}
