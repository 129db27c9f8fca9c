package hledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		mantissa string
		scale    int
		want     string
	}{
		{name: "two places", mantissa: "10000", scale: 2, want: "100"},
		{name: "zero scale", mantissa: "42", scale: 0, want: "42"},
		{name: "negative mantissa", mantissa: "-5025", scale: 2, want: "-50.25"},
		{name: "trailing digits", mantissa: "123456789", scale: 4, want: "12345.6789"},
		{name: "zero", mantissa: "0", scale: 2, want: "0"},
		{
			// Exceeds both int64 and float64 precision; the whole point
			// of reconstructing from the mantissa.
			name:     "huge mantissa",
			mantissa: "123456789012345678901234567890123",
			scale:    6,
			want:     "123456789012345678901234567.890123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mantissa, ok := new(big.Int).SetString(tt.mantissa, 10)
			require.True(t, ok)

			got, err := reconstruct(mantissa, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			// Round-trip law: re-encoding at the same scale reproduces
			// the original mantissa.
			assert.Equal(t, tt.mantissa, got.Shift(int32(tt.scale)).String())
		})
	}
}

func TestReconstruct_NegativeScale(t *testing.T) {
	_, err := reconstruct(big.NewInt(100), -1)
	assert.ErrorIs(t, err, ErrMalformedQuantity)
}

func TestDecodeQuantity(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    string
		wantErr bool
	}{
		{
			name: "mantissa and places",
			json: `{"decimalMantissa":2000,"decimalPlaces":2}`,
			want: "20",
		},
		{
			// The floating hint loses precision here; the exact pair wins.
			name: "floating hint ignored",
			json: `{"decimalMantissa":1000000000000000001,"decimalPlaces":2,"floatingPoint":10000000000000000}`,
			want: "10000000000000000.01",
		},
		{
			name: "missing places defaults to zero",
			json: `{"decimalMantissa":7}`,
			want: "7",
		},
		{
			name:    "missing mantissa",
			json:    `{"decimalPlaces":2}`,
			wantErr: true,
		},
		{
			name:    "negative places",
			json:    `{"decimalMantissa":100,"decimalPlaces":-2}`,
			wantErr: true,
		},
		{
			name:    "fractional mantissa",
			json:    `{"decimalMantissa":10.5,"decimalPlaces":1}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			json:    `"100"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeQuantity([]byte(tt.json))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
