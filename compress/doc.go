// Package compress provides the optional compression stage applied to a payload
// before base16384 encoding and after decoding.
//
// Base16384 expands its input by 8/7 plus one terminator character, so
// compressible payloads such as JSON or logs benefit from being compressed
// first. The stage is configured on both sides; nothing in the encoded text
// records which codec was used.
//
//	enc, _ := base16384.NewEncoding(base16384.WithCompression(format.CompressionZstd))
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload passes through unchanged
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// `-tags gozstd` on a cgo-enabled toolchain switches to github.com/valyala/gozstd.
//
// # Thread Safety
//
// All codecs are stateless values; pooled encoder state is managed internally,
// so a single codec can be shared across goroutines.
package compress
