package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTokenCall(t *testing.T) {
	tests := []struct {
		name     string
		fn       string
		args     []string
		selector string
		bytes    string
	}{
		{"transfer", "transfer", []string{otherAddr, "1000"}, "0xa9059cbb", "68"},
		{"approve max", "approve", []string{otherAddr, "115792089237316195423570985008687907853269984665640564039457584007913129639935"}, "0x095ea7b3", "68"},
		{"balanceOf", "balanceOf", []string{otherAddr}, "0x70a08231", "36"},
		{"checkpoints", "checkpoints", []string{otherAddr, "3"}, "0xf1127ed8", "68"},
		{"no args", "totalSupply", nil, "0x18160ddd", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := encodeTokenCall(tt.fn, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.selector, pairValue(pairs, "Selector"))
			assert.Contains(t, pairValue(pairs, "Calldata"), tt.selector)
			assert.Equal(t, tt.bytes, pairValue(pairs, "Bytes"))
		})
	}
}

func TestEncodeTokenCall_Errors(t *testing.T) {
	_, err := encodeTokenCall("transfer", []string{otherAddr})
	assert.Error(t, err, "missing argument")

	_, err = encodeTokenCall("transfer", []string{"0x1234", "1"})
	assert.Error(t, err, "bad address")

	_, err = encodeTokenCall("checkpoints", []string{otherAddr, "4294967296"})
	assert.Error(t, err, "uint32 overflow")

	_, err = encodeTokenCall("swap", nil)
	assert.Error(t, err, "unknown function")
}

func TestEncodeSignature(t *testing.T) {
	pairs, err := encodeSignature("foo(address who, uint8 n)", []string{otherAddr, "7"})
	require.NoError(t, err)
	assert.Equal(t, "foo(address,uint8)", pairValue(pairs, "Signature"))
	assert.Equal(t, "68", pairValue(pairs, "Bytes"))
	assert.Contains(t, pairValue(pairs, "Calldata"), strings.Repeat("0", 62)+"07")

	_, err = encodeSignature("(uint8)", []string{"1"})
	assert.Error(t, err)
}

func TestEncodeTokenError(t *testing.T) {
	pairs, err := encodeTokenError("ERC20InsufficientBalance", []string{otherAddr, "5", "10"})
	require.NoError(t, err)
	assert.Equal(t, "0xe450d38c", pairValue(pairs, "Selector"))
	assert.Equal(t, "100", pairValue(pairs, "Bytes"))

	pairs, err = encodeTokenError("FailedCall", nil)
	require.NoError(t, err)
	assert.Contains(t, pairValue(pairs, "Calldata"), "0xd6bda275")

	_, err = encodeTokenError("NotAnError", nil)
	assert.Error(t, err)
}
