package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "anvil", cfg.Network)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.RPCURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 180, cfg.ReceiptTimeout)
	assert.Empty(t, cfg.TokenAddress)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cfg.Network = "sepolia"
	cfg.DefaultWallet = "deployer"
	cfg.TokenAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sepolia", reloaded.Network)
	assert.Equal(t, "deployer", reloaded.DefaultWallet)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", reloaded.TokenAddress)
	assert.Equal(t, "info", reloaded.LogLevel)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "wallets.json"), cfg.WalletsPath())
	assert.Equal(t, filepath.Join(dir, "contracts.json"), cfg.ContractsPath())
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{config.KeyRPCURL, "https://rpc.example", "https://rpc.example", false},
		{config.KeyNetwork, "base", "base", false},
		{config.KeyNetwork, "", "", true},
		{config.KeyChainID, "31337", "31337", false},
		{config.KeyChainID, "mainnet", "", true},
		{config.KeyToken, "0x5fbdb2315678afecb367f032d93f642f64180aa3", "0x5FbDB2315678afecb367f032d93F642f64180aa3", false},
		{config.KeyToken, "0x1234", "", true},
		{config.KeyToken, "", "", false},
		{config.KeyToken, "tangle", "tangle", false},
		{config.KeyLogLevel, "debug", "debug", false},
		{config.KeyLogLevel, "loud", "", true},
		{config.KeyReceiptTimeout, "30", "30", false},
		{config.KeyReceiptTimeout, "-1", "", true},
		{config.KeyReceiptTimeout, "soon", "", true},
		{config.KeyExplorerKey, "abc", "abc", false},
		{"gas_price", "1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg, err := config.Load(t.TempDir())
			require.NoError(t, err)

			err = cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	_, err = cfg.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc_url")
}

func TestReceiptTimeoutDuration(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	cfg.ReceiptTimeout = 12
	assert.Equal(t, 12*time.Second, cfg.ReceiptTimeoutDuration())

	cfg.ReceiptTimeout = 0
	assert.Equal(t, config.TxConfirmTimeout, cfg.ReceiptTimeoutDuration())
}

func TestOverlayFromEnv(t *testing.T) {
	t.Setenv("TANGLECTL_RPC_URL", "http://node:8545")
	t.Setenv("TANGLECTL_LOG_LEVEL", "debug")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Network = "local"

	v := config.NewViper()
	require.NoError(t, cfg.Overlay(v))

	assert.Equal(t, "http://node:8545", cfg.RPCURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "local", cfg.Network)
}

func TestOverlayExplicitValue(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	v := config.NewViper()
	v.Set(config.KeyToken, "0x1234")
	assert.Error(t, cfg.Overlay(v))

	v.Set(config.KeyToken, "0x5fbdb2315678afecb367f032d93f642f64180aa3")
	require.NoError(t, cfg.Overlay(v))
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.TokenAddress)
}
