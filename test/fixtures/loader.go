package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/stretchr/testify/require"
)

// WriteArtifact writes a Hardhat-style artifact carrying the TangleToken ABI
// and bytecode to a temp dir and returns its path.
func WriteArtifact(t *testing.T, bytecode string) string {
	t.Helper()
	artifact := map[string]any{
		"contractName":     "TangleToken",
		"abi":              json.RawMessage(tangletoken.ABIJSON()),
		"bytecode":         bytecode,
		"deployedBytecode": bytecode,
	}
	data, err := json.MarshalIndent(artifact, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "TangleToken.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// WriteABI writes abiJSON to a temp file and returns its path.
func WriteABI(t *testing.T, abiJSON string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "abi.json")
	require.NoError(t, os.WriteFile(path, []byte(abiJSON), 0o600))
	return path
}
