package abi

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pow2(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }

func minus(a *big.Int, b int64) *big.Int { return new(big.Int).Sub(a, big.NewInt(b)) }

func plus(a *big.Int, b int64) *big.Int { return new(big.Int).Add(a, big.NewInt(b)) }

func TestEncodeIntegerBounds(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		value *big.Int
		ok    bool
	}{
		{"uint256 max", "uint256", minus(pow2(256), 1), true},
		{"uint256 2^256", "uint256", pow2(256), false},
		{"uint256 2^256+5", "uint256", plus(pow2(256), 5), false},
		{"uint256 negative", "uint256", big.NewInt(-1), false},
		{"uint48 max", "uint48", minus(pow2(48), 1), true},
		{"uint48 max+1", "uint48", pow2(48), false},
		{"uint208 max", "uint208", minus(pow2(208), 1), true},
		{"uint208 max+1", "uint208", pow2(208), false},
		{"int208 max", "int208", minus(pow2(207), 1), true},
		{"int208 max+1", "int208", pow2(207), false},
		{"int208 min", "int208", new(big.Int).Neg(pow2(207)), true},
		{"int208 min-1", "int208", minus(new(big.Int).Neg(pow2(207)), 1), false},
		{"nil", "uint256", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema([]Param{{Name: "v", Type: tt.typ}})
			require.NoError(t, err)

			out, err := s.Encode(tt.value)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOutOfRange))
				var rerr *RangeError
				require.ErrorAs(t, err, &rerr)
				assert.Equal(t, "v", rerr.Param)
				assert.Equal(t, tt.typ, rerr.Type)
				return
			}
			require.NoError(t, err)
			got, err := s.Decode(out)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.value.Cmp(got[0].(*big.Int)))
		})
	}
}

func TestEncodeTupleBounds(t *testing.T) {
	s, err := NewSchema([]Param{{
		Name: "checkpoint", Type: "tuple",
		Components: []Param{{Name: "_key", Type: "uint48"}, {Name: "_value", Type: "uint208"}},
	}})
	require.NoError(t, err)

	type checkpoint struct {
		Key   *big.Int
		Value *big.Int
	}
	_, err = s.Encode(checkpoint{Key: minus(pow2(48), 1), Value: minus(pow2(208), 1)})
	require.NoError(t, err)

	_, err = s.Encode(checkpoint{Key: pow2(48), Value: big.NewInt(1)})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorContains(t, err, "checkpoint._key")

	_, err = s.Encode(checkpoint{Key: big.NewInt(1)})
	assert.ErrorIs(t, err, ErrOutOfRange, "nil field must not reach the packer")
}

func TestEncodeSliceBounds(t *testing.T) {
	s, err := NewSchema([]Param{{Name: "ids", Type: "uint48[]"}})
	require.NoError(t, err)

	_, err = s.Encode([]*big.Int{big.NewInt(1), pow2(48)})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorContains(t, err, "ids[1]")
}

func TestDecodeRejectsDirtyHighBits(t *testing.T) {
	full := bytes.Repeat([]byte{0xff}, 32)
	zero := make([]byte, 32)

	t.Run("uint48 word", func(t *testing.T) {
		s, err := NewSchema([]Param{{Name: "clock", Type: "uint48"}})
		require.NoError(t, err)
		_, err = s.Decode(full)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("tuple into struct", func(t *testing.T) {
		fn, err := NewFunction("checkpoints", "view",
			[]Param{addrParam("account"), {Name: "pos", Type: "uint32"}},
			[]Param{{Name: "", Type: "tuple", Components: []Param{
				{Name: "_key", Type: "uint48"}, {Name: "_value", Type: "uint208"},
			}}})
		require.NoError(t, err)

		var dst struct {
			Key   *big.Int
			Value *big.Int
		}
		err = fn.DecodeReturns(append(append([]byte{}, full...), zero...), &dst)
		require.Error(t, err)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.ErrorContains(t, err, "#0._key")
	})
}
