package config

// Config holds all tanglectl configuration.
type Config struct {
	RPCURL         string `json:"rpc_url"                    mapstructure:"rpc_url"`
	Network        string `json:"network"                    mapstructure:"network"` // registry key, e.g. "anvil"
	ChainID        int64  `json:"chain_id,omitempty"         mapstructure:"chain_id"` // 0 asks the node
	TokenAddress   string `json:"token_address,omitempty"    mapstructure:"token_address"`
	DefaultWallet  string `json:"default_wallet,omitempty"   mapstructure:"default_wallet"`
	LogLevel       string `json:"log_level"                  mapstructure:"log_level"`
	ReceiptTimeout int    `json:"receipt_timeout"            mapstructure:"receipt_timeout"` // seconds
	ExplorerAPIURL string `json:"explorer_api_url,omitempty" mapstructure:"explorer_api_url"`
	ExplorerAPIKey string `json:"explorer_api_key,omitempty" mapstructure:"explorer_api_key"`

	// internal: config dir path used for Save()
	configDir string
}
