package contract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenHex = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func TestNewRegistryEmpty(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	require.NoError(t, reg.Load())
	assert.Empty(t, reg.All())
}

func TestRegistryAddAndGet(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))

	require.NoError(t, reg.Add(&contract.Entry{
		Name:    "tangle",
		Network: "anvil",
		Address: "0x5fbdb2315678afecb367f032d93f642f64180aa3",
	}))

	got, err := reg.Get("tangle", "anvil")
	require.NoError(t, err)
	assert.Equal(t, tokenHex, got.Address)
	assert.Equal(t, contract.KindTangleToken, got.Kind)
	assert.NotEmpty(t, got.CreatedAt)
	assert.Equal(t, common.HexToAddress(tokenHex), got.Addr())
}

func TestRegistryAddRejects(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))

	assert.Error(t, reg.Add(&contract.Entry{Name: "bad", Network: "anvil", Address: "0x123"}))
	assert.Error(t, reg.Add(&contract.Entry{Name: "bad", Network: "anvil", Address: tokenHex, Kind: "erc721"}))
	assert.Empty(t, reg.All())
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	require.NoError(t, reg.Add(&contract.Entry{Name: "tangle", Network: "anvil", Address: tokenHex}))

	_, err := reg.Get("nonexistent", "anvil")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
	_, err = reg.Get("tangle", "sepolia")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestRegistryResolve(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	require.NoError(t, reg.Add(&contract.Entry{Name: "tangle", Network: "anvil", Address: tokenHex}))

	addr, err := reg.Resolve("tangle", "anvil")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(tokenHex), addr)

	other := "0x00000000000000000000000000000000000000cc"
	addr, err = reg.Resolve(other, "anvil")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(other), addr)

	_, err = reg.Resolve("missing", "anvil")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.json")
	reg := contract.NewRegistry(path)
	require.NoError(t, reg.Add(&contract.Entry{Name: "tangle", Network: "anvil", Address: tokenHex, DeployTx: "0xabc"}))
	require.NoError(t, reg.Add(&contract.Entry{Name: "tangle", Network: "sepolia", Address: tokenHex}))
	require.NoError(t, reg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := contract.NewRegistry(path)
	require.NoError(t, loaded.Load())
	all := loaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "anvil", all[0].Network)
	assert.Equal(t, "sepolia", all[1].Network)
	assert.Equal(t, "0xabc", all[0].DeployTx)
	assert.Len(t, loaded.GetByName("tangle"), 2)
}

func TestRegistryLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))
	assert.Error(t, contract.NewRegistry(path).Load())
}

func TestRegistryRemove(t *testing.T) {
	reg := contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	require.NoError(t, reg.Add(&contract.Entry{Name: "tangle", Network: "anvil", Address: tokenHex}))

	require.NoError(t, reg.Remove("tangle", "anvil"))
	assert.Empty(t, reg.All())
	assert.ErrorIs(t, reg.Remove("tangle", "anvil"), contract.ErrContractNotFound)
}

func TestBuiltins(t *testing.T) {
	all := contract.AllBuiltins()
	require.NotEmpty(t, all)

	b, ok := contract.GetBuiltin(contract.KindTangleToken)
	require.True(t, ok)
	assert.Len(t, b.ABI.Functions, 40)

	_, ok = contract.GetBuiltin("erc20")
	assert.False(t, ok)
}
