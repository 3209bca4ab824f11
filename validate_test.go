package base16384

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/base16384/errs"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		units   []uint16
		wantErr error
	}{
		{"empty payload", []uint16{0x3D00}, nil},
		{"single byte", []uint16{0x5E40, 0x3D01}, nil},
		{"full group", []uint16{0x5F5E, 0x5416, 0x83C1, 0x7A65, 0x3D00}, nil},
		{"max data unit", []uint16{0x8DFF, 0x8DFF, 0x8DFF, 0x8DFF, 0x3D00}, nil},
		{"nil", nil, errs.ErrEmptyInput},
		{"empty", []uint16{}, errs.ErrEmptyInput},
		{"terminator residue 7", []uint16{0x5E40, 0x3D07}, errs.ErrInvalidTerminator},
		{"terminator below range", []uint16{0x5E40, 0x3CFF}, errs.ErrInvalidTerminator},
		{"data unit as terminator", []uint16{0x5E40, 0x5E40}, errs.ErrInvalidTerminator},
		{"data unit below base", []uint16{0x4DFF, 0x3D01}, errs.ErrInvalidCodeUnit},
		{"data unit above max", []uint16{0x8E00, 0x3D01}, errs.ErrInvalidCodeUnit},
		{"terminator in data", []uint16{0x3D01, 0x5E40, 0x3D02}, errs.ErrInvalidCodeUnit},
		{"residue without data", []uint16{0x3D03}, errs.ErrLengthMismatch},
		{"too many units for residue", []uint16{0x5E40, 0x5E40, 0x5E40, 0x3D01}, errs.ErrLengthMismatch},
		{"too few units for residue", []uint16{0x5E40, 0x3D03}, errs.ErrLengthMismatch},
		{"full group residue with partial data", []uint16{0x5E40, 0x5E40, 0x3D00}, errs.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.units)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsPosition(t *testing.T) {
	err := Validate([]uint16{0x5E40, 0x0041, 0x3D02})

	require.ErrorIs(t, err, errs.ErrInvalidCodeUnit)
	require.Contains(t, err.Error(), "U+0041 at index 1")
}

func TestValidate_AcceptsEveryEncoderOutput(t *testing.T) {
	data := make([]byte, 0, 64)
	for n := 0; n < 64; n++ {
		require.NoError(t, Validate(Encode(data)), "len %d", n)
		data = append(data, byte(n*37))
	}
}
