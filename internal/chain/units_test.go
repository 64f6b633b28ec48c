package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		raw      string
		decimals int
		want     string
	}{
		{"1500000000000000000", 18, "1.5"},
		{"1000000000000000000", 18, "1"},
		{"1", 18, "0.000000000000000001"},
		{"0", 18, "0"},
		{"-2500000", 6, "-2.5"},
		{"42", 0, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			raw, _ := new(big.Int).SetString(tt.raw, 10)
			assert.Equal(t, tt.want, FormatUnits(raw, tt.decimals))
		})
	}
	assert.Equal(t, "0", FormatUnits(nil, 18))
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in       string
		decimals int
		want     string
		wantErr  bool
	}{
		{"1.5", 18, "1500000000000000000", false},
		{"100", 0, "100", false},
		{".25", 2, "25", false},
		{"-1", 6, "-1000000", false},
		{"1.234", 2, "", true},
		{"abc", 18, "", true},
		{"", 18, "", true},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", 0, "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", 0, "", true},
		{"115792089237316195423570985008687907853269984665640564039457.584007913129639935", 18, "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"115792089237316195423570985008687907853269984665640564039457.584007913129639936", 18, "", true},
		{"-115792089237316195423570985008687907853269984665640564039457584007913129639936", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnits(tt.in, tt.decimals)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
