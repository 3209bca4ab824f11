package base16384

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/base16384/compress"
	"github.com/arloliu/base16384/endian"
	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestNewEncoding_Defaults(t *testing.T) {
	enc, err := NewEncoding()
	require.NoError(t, err)

	require.Equal(t, format.CompressionNone, enc.Compression())
	require.True(t, enc.Strict())
	require.True(t, endian.IsBigEndian(enc.engine))
	require.False(t, enc.bom)

	require.Equal(t, enc, StdEncoding)
}

func TestNewEncoding_Options(t *testing.T) {
	enc, err := NewEncoding(
		WithCompression(format.CompressionS2),
		WithStrictDecoding(false),
		WithLittleEndian(),
		WithBOM(true),
	)
	require.NoError(t, err)

	require.Equal(t, format.CompressionS2, enc.Compression())
	require.False(t, enc.Strict())
	require.False(t, endian.IsBigEndian(enc.engine))
	require.True(t, enc.bom)

	enc, err = NewEncoding(WithLittleEndian(), WithBigEndian())
	require.NoError(t, err)
	require.True(t, endian.IsBigEndian(enc.engine))
}

func TestNewEncoding_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{"unknown compression", WithCompression(format.CompressionType(0x42)), errs.ErrInvalidCompression},
		{"nil codec", WithCodec(nil), errs.ErrInvalidCompression},
		{"nil byte order", WithByteOrder(nil), errs.ErrInvalidByteOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoding(tt.opt)
			require.Nil(t, enc)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncoding_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("A"),
		[]byte("Example"),
		[]byte(strings.Repeat("base16384 compresses well when the payload repeats. ", 50)),
		bytes.Repeat([]byte{0x00, 0xFF}, 1000),
	}

	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			enc, err := NewEncoding(WithCompression(ct))
			require.NoError(t, err)

			for _, payload := range payloads {
				units, err := enc.Encode(payload)
				require.NoError(t, err)
				require.NoError(t, Validate(units))

				decoded, err := enc.Decode(units)
				require.NoError(t, err)
				require.Equal(t, payload, decoded)

				s, err := enc.EncodeToString(payload)
				require.NoError(t, err)
				decoded, err = enc.DecodeString(s)
				require.NoError(t, err)
				require.Equal(t, payload, decoded)

				raw, err := enc.EncodeToUTF16(payload)
				require.NoError(t, err)
				decoded, err = enc.DecodeUTF16(raw)
				require.NoError(t, err)
				require.Equal(t, payload, decoded)
			}
		})
	}
}

func TestEncoding_EmptyPayload(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			enc, err := NewEncoding(WithCompression(ct))
			require.NoError(t, err)

			for _, payload := range [][]byte{nil, {}} {
				units, err := enc.Encode(payload)
				require.NoError(t, err)
				require.Equal(t, []uint16{TerminatorBase}, units)

				decoded, err := enc.Decode(units)
				require.NoError(t, err)
				require.Nil(t, decoded)

				decoded, err = enc.DecodeString("㴀")
				require.NoError(t, err)
				require.Nil(t, decoded)
			}
		})
	}
}

func TestEncoding_NoCompressionMatchesPackageFunctions(t *testing.T) {
	data := []byte("Example")

	units, err := StdEncoding.Encode(data)
	require.NoError(t, err)
	require.Equal(t, Encode(data), units)

	s, err := StdEncoding.EncodeToString(data)
	require.NoError(t, err)
	require.Equal(t, "彞吖菁穥㴀", s)
}

func TestEncoding_CompressionShrinksOutput(t *testing.T) {
	payload := []byte(strings.Repeat(`{"level":"info","msg":"request served"}`, 100))

	zstdEnc, err := NewEncoding(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	compressed, err := zstdEnc.Encode(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(Encode(payload))/4)
}

func TestEncoding_StrictDecode(t *testing.T) {
	malformed := []uint16{0x5E40, 0x3D07}

	_, err := StdEncoding.Decode(malformed)
	require.ErrorIs(t, err, errs.ErrInvalidTerminator)

	_, err = StdEncoding.Decode(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = StdEncoding.DecodeString("not base16384")
	require.ErrorIs(t, err, errs.ErrInvalidTerminator)

	_, err = StdEncoding.DecodeString(string([]rune{0x1F389, 0x3D01}))
	require.ErrorIs(t, err, errs.ErrInvalidCodeUnit)

	lenient, err := NewEncoding(WithStrictDecoding(false))
	require.NoError(t, err)

	out, err := lenient.Decode(malformed)
	require.NoError(t, err)
	require.Equal(t, Decode(malformed), out)

	out, err = lenient.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncoding_MismatchedCompression(t *testing.T) {
	zstdEnc, err := NewEncoding(WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	s2Enc, err := NewEncoding(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	units, err := zstdEnc.Encode([]byte(strings.Repeat("payload ", 64)))
	require.NoError(t, err)

	_, err = s2Enc.Decode(units)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decompress payload")
}

type failingCodec struct {
	compress.NoOpCompressor
}

var errCodec = errors.New("codec failure")

func (failingCodec) Compress([]byte) ([]byte, error)   { return nil, errCodec }
func (failingCodec) Decompress([]byte) ([]byte, error) { return nil, errCodec }

func TestEncoding_CodecErrors(t *testing.T) {
	enc, err := NewEncoding(WithCodec(failingCodec{}))
	require.NoError(t, err)

	_, err = enc.Encode([]byte("x"))
	require.ErrorIs(t, err, errCodec)

	_, err = enc.EncodeToString([]byte("x"))
	require.ErrorIs(t, err, errCodec)

	_, err = enc.EncodeToUTF16([]byte("x"))
	require.ErrorIs(t, err, errCodec)

	_, err = enc.Decode(Encode([]byte("x")))
	require.ErrorIs(t, err, errCodec)
}

func TestEncoding_UTF16(t *testing.T) {
	t.Run("big endian without BOM", func(t *testing.T) {
		raw, err := StdEncoding.EncodeToUTF16([]byte{'A'})
		require.NoError(t, err)
		require.Equal(t, []byte{0x5E, 0x40, 0x3D, 0x01}, raw)
	})

	t.Run("little endian with BOM", func(t *testing.T) {
		enc, err := NewEncoding(WithLittleEndian(), WithBOM(true))
		require.NoError(t, err)

		raw, err := enc.EncodeToUTF16([]byte{'A'})
		require.NoError(t, err)
		require.Equal(t, []byte{0xFF, 0xFE, 0x40, 0x5E, 0x01, 0x3D}, raw)

		// The mark overrides the configured big-endian order.
		decoded, err := StdEncoding.DecodeUTF16(raw)
		require.NoError(t, err)
		require.Equal(t, []byte{'A'}, decoded)
	})

	t.Run("configured order without BOM", func(t *testing.T) {
		enc, err := NewEncoding(WithLittleEndian())
		require.NoError(t, err)

		decoded, err := enc.DecodeUTF16([]byte{0x40, 0x5E, 0x01, 0x3D})
		require.NoError(t, err)
		require.Equal(t, []byte{'A'}, decoded)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := StdEncoding.DecodeUTF16([]byte{0x5E, 0x40, 0x3D})
		require.ErrorIs(t, err, errs.ErrOddLength)
	})
}
