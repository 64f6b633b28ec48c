package config

import "time"

// Keys accepted by `config get/set`, bound to flags and TANGLECTL_*
// environment variables.
const (
	KeyRPCURL         = "rpc_url"
	KeyNetwork        = "network"
	KeyChainID        = "chain_id"
	KeyToken          = "token_address"
	KeyWallet         = "default_wallet"
	KeyLogLevel       = "log_level"
	KeyReceiptTimeout = "receipt_timeout"
	KeyExplorerURL    = "explorer_api_url"
	KeyExplorerKey    = "explorer_api_key"
)

// EnvPrefix prefixes every environment override, e.g. TANGLECTL_RPC_URL.
const EnvPrefix = "TANGLECTL"

// DirEnvVar overrides the config directory.
const DirEnvVar = "TANGLECTL_CONFIG_DIR"

// Timeouts used by commands.
const (
	TxConfirmTimeout = 3 * time.Minute // standard transaction confirmation wait
	TxDeployTimeout  = 5 * time.Minute // contract deployment confirmation wait
	RPCDialTimeout   = 10 * time.Second
)
