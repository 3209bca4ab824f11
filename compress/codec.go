package compress

import (
	"fmt"

	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
)

// Compressor compresses a payload before it is regrouped into code units.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. The returned slice may share memory with
	// the input only for the no-op codec.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type.
//
// Decompression is where corrupted input surfaces: implementations return an
// error rather than partial output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions and reports which algorithm it implements.
//
// Built-in codecs are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

// CreateCodec returns a new Codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the payload, used in error messages
//
// Returns:
//   - Codec: Codec for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	if !compressionType.Valid() {
		return nil, fmt.Errorf("%w for %s: %s", errs.ErrInvalidCompression, target, compressionType)
	}

	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w for %s: %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = newBuiltinCodecs()

func newBuiltinCodecs() map[format.CompressionType]Codec {
	codecs := make(map[format.CompressionType]Codec, 4)
	for ct := format.CompressionNone; ct.Valid(); ct++ {
		codec, err := CreateCodec(ct, "builtin codec")
		if err != nil {
			panic(err)
		}
		codecs[ct] = codec
	}

	return codecs
}

// GetCodec retrieves the shared built-in Codec for compressionType.
// Built-in codecs are stateless, so one instance serves every Encoding.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
