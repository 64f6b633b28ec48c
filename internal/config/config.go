package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

const (
	defaultRPCURL   = "http://127.0.0.1:8545"
	defaultNetwork  = "anvil"
	defaultLogLevel = "info"

	configFile    = "config.json"
	walletsFile   = "wallets.json"
	contractsFile = "contracts.json"
)

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.tanglectl.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".tanglectl")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath is the wallet metadata file.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

// ContractsPath is the deployed-token registry file.
func (c *Config) ContractsPath() string {
	return filepath.Join(c.configDir, contractsFile)
}

// ReceiptTimeoutDuration converts ReceiptTimeout to a duration, falling
// back to TxConfirmTimeout.
func (c *Config) ReceiptTimeoutDuration() time.Duration {
	if c.ReceiptTimeout <= 0 {
		return TxConfirmTimeout
	}
	return time.Duration(c.ReceiptTimeout) * time.Second
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{
		KeyRPCURL, KeyNetwork, KeyChainID, KeyToken, KeyWallet,
		KeyLogLevel, KeyReceiptTimeout, KeyExplorerURL, KeyExplorerKey,
	}
}

// Get returns the value of key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyRPCURL:
		return c.RPCURL, nil
	case KeyNetwork:
		return c.Network, nil
	case KeyChainID:
		return strconv.FormatInt(c.ChainID, 10), nil
	case KeyToken:
		return c.TokenAddress, nil
	case KeyWallet:
		return c.DefaultWallet, nil
	case KeyLogLevel:
		return c.LogLevel, nil
	case KeyReceiptTimeout:
		return strconv.Itoa(c.ReceiptTimeout), nil
	case KeyExplorerURL:
		return c.ExplorerAPIURL, nil
	case KeyExplorerKey:
		return c.ExplorerAPIKey, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// Set validates and assigns value to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyRPCURL:
		c.RPCURL = value
	case KeyNetwork:
		if value == "" {
			return fmt.Errorf("network must not be empty")
		}
		c.Network = value
	case KeyChainID:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("chain_id must be a non-negative integer, got %q", value)
		}
		c.ChainID = n
	case KeyToken:
		// an address, or a name from the contract registry
		if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
			if !common.IsHexAddress(value) {
				return fmt.Errorf("invalid token address %q", value)
			}
			value = common.HexToAddress(value).Hex()
		}
		c.TokenAddress = value
	case KeyWallet:
		c.DefaultWallet = value
	case KeyLogLevel:
		if !validLevel(value) {
			return fmt.Errorf("unknown log level %q", value)
		}
		c.LogLevel = value
	case KeyReceiptTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("receipt_timeout must be a non-negative number of seconds, got %q", value)
		}
		c.ReceiptTimeout = n
	case KeyExplorerURL:
		c.ExplorerAPIURL = value
	case KeyExplorerKey:
		c.ExplorerAPIKey = value
	default:
		_, err := c.Get(key)
		return err
	}
	return nil
}

// NewViper returns a viper instance that reads TANGLECTL_* variables.
// Flags are bound to it by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, k := range Keys() {
		_ = v.BindEnv(k)
	}
	v.AutomaticEnv()
	return v
}

// Overlay copies every key that is set in v (a changed flag or an
// environment variable) over the file values. The result is not saved.
func (c *Config) Overlay(v *viper.Viper) error {
	for _, k := range Keys() {
		if !v.IsSet(k) {
			continue
		}
		if err := c.Set(k, v.GetString(k)); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func defaults(dir string) *Config {
	return &Config{
		RPCURL:         defaultRPCURL,
		Network:        defaultNetwork,
		LogLevel:       defaultLogLevel,
		ReceiptTimeout: int(TxConfirmTimeout / time.Second),
		configDir:      dir,
	}
}

func validLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	}
	return false
}
