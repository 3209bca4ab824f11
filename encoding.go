package base16384

import (
	"fmt"

	"github.com/arloliu/base16384/compress"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/arloliu/base16384/internal/options"
)

// Encoding is a configured base16384 codec.
//
// On top of the package-level functions it can compress payloads before
// encoding, reject malformed input when decoding, and serialize code units as
// UTF-16. The zero value is not usable; create one with NewEncoding.
//
// An Encoding is immutable after construction and safe for concurrent use.
type Encoding struct {
	codec  compress.Codec
	engine endian.EndianEngine
	strict bool
	bom    bool
}

// Option configures an Encoding.
type Option = options.Option[*Encoding]

// StdEncoding is the default Encoding: no compression, strict decoding,
// big-endian UTF-16 without a byte order mark.
var StdEncoding = mustNewEncoding()

// NewEncoding creates an Encoding with the given options applied over the
// defaults of StdEncoding.
//
// Returns an error if an option is invalid, for example an unknown
// compression type.
//
// Example:
//
//	enc, err := base16384.NewEncoding(
//	    base16384.WithCompression(format.CompressionS2),
//	    base16384.WithLittleEndian(),
//	)
func NewEncoding(opts ...Option) (*Encoding, error) {
	enc := &Encoding{
		codec:  compress.NewNoOpCompressor(),
		engine: endian.GetBigEndianEngine(),
		strict: true,
	}

	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

func mustNewEncoding(opts ...Option) *Encoding {
	enc, err := NewEncoding(opts...)
	if err != nil {
		panic(err)
	}

	return enc
}

// Validate checks the final configuration. It is called by NewEncoding.
func (e *Encoding) Validate() error {
	if e.codec == nil {
		return fmt.Errorf("%w: no codec configured", errs.ErrInvalidCompression)
	}
	if e.engine == nil {
		return fmt.Errorf("%w: no byte order configured", errs.ErrInvalidByteOrder)
	}

	return nil
}

// WithCompression compresses payloads with the given algorithm before encoding
// and decompresses them after decoding. Both sides must use the same setting.
// Default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(e *Encoding) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		e.codec = codec

		return nil
	})
}

// WithCodec uses a custom compression codec.
func WithCodec(codec compress.Codec) Option {
	return options.New(func(e *Encoding) error {
		if codec == nil {
			return fmt.Errorf("%w: nil codec", errs.ErrInvalidCompression)
		}
		e.codec = codec

		return nil
	})
}

// WithStrictDecoding enables or disables input validation before decoding.
// When disabled, decoding follows the lenient contract of Decode.
// Default is true.
func WithStrictDecoding(strict bool) Option {
	return options.NoError(func(e *Encoding) {
		e.strict = strict
	})
}

// WithBigEndian serializes UTF-16 most significant byte first. This is the default.
func WithBigEndian() Option {
	return WithByteOrder(endian.GetBigEndianEngine())
}

// WithLittleEndian serializes UTF-16 least significant byte first.
func WithLittleEndian() Option {
	return WithByteOrder(endian.GetLittleEndianEngine())
}

// WithByteOrder sets the byte order used by EncodeToUTF16 and DecodeUTF16.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(e *Encoding) error {
		if engine == nil {
			return fmt.Errorf("%w: nil engine", errs.ErrInvalidByteOrder)
		}
		e.engine = engine

		return nil
	})
}

// WithBOM writes a U+FEFF byte order mark ahead of UTF-16 output.
// Default is false. DecodeUTF16 honors a mark regardless of this setting.
func WithBOM(enabled bool) Option {
	return options.NoError(func(e *Encoding) {
		e.bom = enabled
	})
}

// Compression returns the compression type of the configured codec.
func (e *Encoding) Compression() format.CompressionType {
	return e.codec.Type()
}

// Strict reports whether decoding validates its input.
func (e *Encoding) Strict() bool {
	return e.strict
}

// Encode compresses src with the configured codec and returns its code units.
func (e *Encoding) Encode(src []byte) ([]uint16, error) {
	payload, err := e.codec.Compress(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	return Encode(payload), nil
}

// Decode returns the payload encoded in src. An empty payload is returned as
// nil regardless of the codec.
//
// A strict Encoding returns the Validate error for malformed input. Errors
// from the compression codec are returned wrapped.
func (e *Encoding) Decode(src []uint16) ([]byte, error) {
	if e.strict {
		if err := Validate(src); err != nil {
			return nil, err
		}
	}

	data, err := e.codec.Decompress(Decode(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

// EncodeToString returns the base16384 text of src.
func (e *Encoding) EncodeToString(src []byte) (string, error) {
	payload, err := e.codec.Compress(src)
	if err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}

	return EncodeToString(payload), nil
}

// DecodeString returns the payload encoded in the base16384 text s.
//
// A strict Encoding rejects characters above U+FFFF instead of truncating them.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	if e.strict {
		i := 0
		for _, r := range s {
			if r > 0xFFFF {
				return nil, fmt.Errorf("%w: U+%04X at index %d", errs.ErrInvalidCodeUnit, r, i)
			}
			i++
		}
	}

	units, cleanup := stringToUnits(s)
	defer cleanup()

	return e.Decode(units)
}

// EncodeToUTF16 returns the code units of src serialized as UTF-16 in the
// configured byte order, preceded by a byte order mark when enabled.
func (e *Encoding) EncodeToUTF16(src []byte) ([]byte, error) {
	units, err := e.Encode(src)
	if err != nil {
		return nil, err
	}

	size := len(units) * 2
	if e.bom {
		size += 2
	}

	out := make([]byte, 0, size)
	if e.bom {
		out = e.engine.AppendUint16(out, ByteOrderMark)
	}

	return AppendUTF16(out, units, e.engine), nil
}

// DecodeUTF16 decodes UTF-16 serialized code units. A leading byte order mark
// selects the byte order and is skipped; otherwise the configured order is used.
func (e *Encoding) DecodeUTF16(b []byte) ([]byte, error) {
	engine := e.engine
	if detected, rest, ok := detectBOM(b); ok {
		engine, b = detected, rest
	}

	units, err := ParseUTF16(b, engine)
	if err != nil {
		return nil, err
	}

	return e.Decode(units)
}
