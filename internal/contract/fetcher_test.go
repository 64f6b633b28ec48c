package contract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniABI = `[
	{"name":"balanceOf","type":"function","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"name":"Transfer","type":"event","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseABI(t *testing.T) {
	entries, err := parseABI([]byte(miniABI))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "balanceOf", entries[0].Name)
	assert.Equal(t, "view", entries[0].StateMutability)
	assert.True(t, entries[1].Inputs[0].Indexed)

	_, err = parseABI([]byte("{not valid json"))
	assert.Error(t, err)
	_, err = parseABI([]byte(`{"name":"foo"}`))
	assert.ErrorContains(t, err, "not an ABI array")
}

func TestLoadFromArtifact(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"raw array", miniABI, false},
		{"hardhat", `{"contractName":"X","abi":` + miniABI + `,"bytecode":"0x6080"}`, false},
		{"empty array", `[]`, true},
		{"errors only", `[{"type":"error","name":"E","inputs":[]}]`, true},
		{"object without abi", `{"bytecode":"0x6080"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := LoadFromArtifact(writeFile(t, "a.json", tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, 2)
		})
	}

	_, err := LoadFromArtifact(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	_, err = LoadFromArtifact(writeFile(t, "empty.json", ""))
	assert.ErrorContains(t, err, "empty")
}

func TestLoadArtifactFull(t *testing.T) {
	t.Run("hardhat", func(t *testing.T) {
		path := writeFile(t, "h.json", `{"abi":`+miniABI+`,"bytecode":"0x60806040","deployedBytecode":"0x6080"}`)
		a, err := LoadArtifactFull(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40}, a.Bytecode)
		assert.Equal(t, []byte{0x60, 0x80}, a.DeployedBytecode)
		assert.Len(t, a.ABI, 2)
	})

	t.Run("foundry", func(t *testing.T) {
		path := writeFile(t, "f.json", `{"abi":`+miniABI+`,"bytecode":{"object":"0x6001","linkReferences":{}}}`)
		a, err := LoadArtifactFull(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x01}, a.Bytecode)
		assert.Empty(t, a.DeployedBytecode)
	})

	t.Run("foundry without prefix", func(t *testing.T) {
		path := writeFile(t, "f.json", `{"abi":`+miniABI+`,"bytecode":{"object":"6001"}}`)
		a, err := LoadArtifactFull(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x01}, a.Bytecode)
	})

	errCases := map[string]string{
		"raw abi":      miniABI,
		"no bytecode":  `{"abi":` + miniABI + `}`,
		"empty code":   `{"abi":` + miniABI + `,"bytecode":"0x"}`,
		"bad hex":      `{"abi":` + miniABI + `,"bytecode":"0xzz"}`,
		"unlinked lib": `{"abi":` + miniABI + `,"bytecode":"0x60__$abc$__"}`,
		"bad shape":    `{"abi":` + miniABI + `,"bytecode":42}`,
	}
	for name, content := range errCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadArtifactFull(writeFile(t, "x.json", content))
			assert.Error(t, err)
		})
	}
}

func TestFetchFromExplorer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getabi", r.URL.Query().Get("action"))
		assert.Equal(t, "key", r.URL.Query().Get("apikey"))
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":%q}`, miniABI)
	}))
	defer srv.Close()

	entries, err := NewFetcher("key").FetchFromExplorer(context.Background(), srv.URL, "0xabc")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFetchFromExplorerNotVerified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`)
	}))
	defer srv.Close()

	_, err := NewFetcher("").FetchFromExplorer(context.Background(), srv.URL, "0xabc")
	assert.ErrorContains(t, err, "not verified")
}

func TestFetchFromURLRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, miniABI)
	}))
	defer srv.Close()

	entries, err := NewFetcher("").FetchFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetchFromURLNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher("").FetchFromURL(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "HTTP 404")
	assert.Equal(t, int32(1), hits.Load())
}

func TestVerifyTangleToken(t *testing.T) {
	full, err := parseABI(tangletoken.ABIJSON())
	require.NoError(t, err)
	assert.NoError(t, VerifyTangleToken(full))

	partial, err := parseABI([]byte(miniABI))
	require.NoError(t, err)
	err = VerifyTangleToken(partial)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfer(address,uint256)")
	assert.Contains(t, err.Error(), "error ERC20InsufficientBalance(address,uint256,uint256)")
	assert.NotContains(t, err.Error(), "balanceOf(address)")
}
