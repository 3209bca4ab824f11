package compress

import "github.com/arloliu/base16384/format"

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits text-like payloads
// that are encoded once and stored or transmitted. The implementation is
// selected at build time, see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

func (c ZstdCompressor) Type() format.CompressionType { return format.CompressionZstd }
