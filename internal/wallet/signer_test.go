package wallet

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	ks := NewInMemoryKeystore()
	ref, err := ks.Store("anvil0", testPrivKeyHex)
	require.NoError(t, err)
	w := &Wallet{Name: "anvil0", Address: testSignerAddr, Type: TypeSigning, KeyRef: ref}
	return NewSigner(w, ks)
}

func TestSignerAddress(t *testing.T) {
	s := newTestSigner(t)
	assert.Equal(t, common.HexToAddress(testSignerAddr), s.Address())
}

func TestSignTxDynamicFee(t *testing.T) {
	s := newTestSigner(t)
	chainID := big.NewInt(31337)
	to := common.HexToAddress("0x00000000000000000000000000000000000000cc")

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(10),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(0),
	})
	signed, err := s.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.NewLondonSigner(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), from)
}

func TestSignTxWatchOnlyError(t *testing.T) {
	w := &Wallet{Name: "watcher", Address: testSignerAddr, Type: TypeWatchOnly}
	s := NewSigner(w, NewInMemoryKeystore())

	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1e9), nil)
	_, err := s.SignTx(tx, big.NewInt(1))
	assert.ErrorIs(t, err, ErrWatchOnly)
}

func TestSignTxMissingKey(t *testing.T) {
	w := &Wallet{Name: "lost", Address: testSignerAddr, Type: TypeSigning, KeyRef: "tanglectl.lost"}
	s := NewSigner(w, NewInMemoryKeystore())

	_, err := s.SignHash(common.Hash{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retrieving key")
}

func TestSignerRejectsMismatchedKey(t *testing.T) {
	ks := NewInMemoryKeystore()
	ref, _ := ks.Store("w", testPrivKeyHex)
	w := &Wallet{Name: "w", Address: "0x00000000000000000000000000000000000000aa", Type: TypeSigning, KeyRef: ref}

	_, err := NewSigner(w, ks).SignHash(common.Hash{0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestSignHashRecovers(t *testing.T) {
	s := newTestSigner(t)
	hash := crypto.Keccak256Hash([]byte("tangle"))

	sig, err := s.SignHash(hash)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	got, err := RecoverHash(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), got)
}
