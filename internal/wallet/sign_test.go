package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyMessage(t *testing.T) {
	s := newTestSigner(t)
	msg := []byte("hello tangle")

	sig, err := s.SignMessage(msg)
	require.NoError(t, err)

	got, err := VerifyMessage(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), got)

	other, err := VerifyMessage([]byte("tampered"), sig)
	require.NoError(t, err)
	assert.NotEqual(t, s.Address(), other)
}

func TestVerifyMessageBadLength(t *testing.T) {
	_, err := VerifyMessage([]byte("x"), make([]byte, 64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 65 bytes")
}

func TestEIP191HashKnownVector(t *testing.T) {
	// keccak256("\x19Ethereum Signed Message:\n5hello")
	assert.Equal(t,
		"50b2c43fd39106bafbba0da34fc430e1f91e3c96ea2acee2bc34119f92b37750",
		hex.EncodeToString(eip191Hash([]byte("hello"))))
}
