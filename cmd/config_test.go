package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGet(t *testing.T) {
	c := newCLI(t)
	c.mustRun("config", "set", "network", "sepolia")
	assert.Equal(t, "sepolia", strings.TrimSpace(c.mustRun("config", "get", "network")))

	c.mustRun("config", "set", "chain_id", "11155111")
	assert.Equal(t, "11155111", strings.TrimSpace(c.mustRun("config", "get", "chain_id")))
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	c := newCLI(t)
	tests := [][]string{
		{"config", "set", "log_level", "loud"},
		{"config", "set", "chain_id", "abc"},
		{"config", "set", "nope", "1"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[2:], "="), func(t *testing.T) {
			_, _, err := c.run("", args...)
			assert.Error(t, err)
		})
	}
}

func TestConfigFlagOverrideNotPersisted(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("--rpc", "http://flag:8545", "config", "get", "rpc_url")
	assert.Equal(t, "http://flag:8545", strings.TrimSpace(out))

	c.mustRun("--rpc", "http://flag:8545", "config", "set", "network", "sepolia")
	out = c.mustRun("config", "get", "rpc_url")
	assert.Equal(t, "http://127.0.0.1:8545", strings.TrimSpace(out))
}

func TestConfigListJSON(t *testing.T) {
	c := newCLI(t)
	c.mustRun("config", "set", "token_address", tokenHex)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("config", "list", "--json")), &got))
	assert.Equal(t, tokenHex, got["token_address"])
	assert.Equal(t, "anvil", got["network"])
}

func TestConfigListHidesExplorerKey(t *testing.T) {
	c := newCLI(t)
	c.mustRun("config", "set", "explorer_api_key", "SECRETKEY")
	out := c.mustRun("config", "list")
	assert.NotContains(t, out, "SECRETKEY")
	assert.Contains(t, out, "(set)")
}
