package btcbytes_sdk

import (
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSatoshis(t *testing.T) {
	valid := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1000", 1000},
		{"21000000000000000", 21000000000000000},
		{"007", 7},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSatoshis(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{
		"",
		"abc",
		"-1",
		"+1",
		"1.5",
		"1,000",
		"1_000",
		" 1",
		"1 ",
		"0x10",
		"18446744073709551616",
		"99999999999999999999999",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseSatoshis(in)
			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestWithinSupply(t *testing.T) {
	assert.True(t, WithinSupply(0))
	assert.True(t, WithinSupply(21000000*btcutil.SatoshiPerBitcoin))
	assert.False(t, WithinSupply(21000000*btcutil.SatoshiPerBitcoin+1))
	assert.False(t, WithinSupply(math.MaxUint64))
}

func TestFormatBTC(t *testing.T) {
	tests := []struct {
		sats uint64
		want string
	}{
		{0, "0 BTC"},
		{1500, "0.000015 BTC"},
		{50000000, "0.5 BTC"},
		{100000000, "1 BTC"},
	}
	for _, tt := range tests {
		got, err := FormatBTC(tt.sats)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatBTC(math.MaxUint64)
	require.ErrorIs(t, err, ErrValueOverflow)
}
