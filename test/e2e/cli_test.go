package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "tanglectl-e2e-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	binaryPath = filepath.Join(tmp, "tanglectl")
	moduleRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		panic(err)
	}
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = moduleRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "TANGLECTL_CONFIG_DIR="+configDir)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "tanglectl")
	assert.Contains(t, out, "0.1.0")
}

func TestHelpCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "--help")
	require.NoError(t, err)
	for _, sub := range []string{"selectors", "encode", "decode", "call", "send", "events", "watch", "token", "wallet", "config"} {
		assert.Contains(t, out, sub)
	}
	assert.Contains(t, out, "--rpc")
	assert.Contains(t, out, "--token")
}

func TestSelectorLookup(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "selector", "transfer(address,uint256)")
	require.NoError(t, err)
	assert.Contains(t, out, "0xa9059cbb")

	out, err = runCLI(t, dir, "selector", "0xe450d38c")
	require.NoError(t, err)
	assert.Contains(t, out, "ERC20InsufficientBalance")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "encode", "balanceOf", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	require.NoError(t, err)

	var calldata string
	for _, f := range strings.Fields(out) {
		if strings.HasPrefix(f, "0x70a08231") {
			calldata = f
		}
	}
	require.NotEmpty(t, calldata, "encode output: %s", out)

	out, err = runCLI(t, dir, "decode", "call", calldata)
	require.NoError(t, err)
	assert.Contains(t, out, "balanceOf")
	assert.Contains(t, strings.ToLower(out), "0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
}

func TestKeccakRole(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "keccak", "MINTER_ROLE")
	require.NoError(t, err)
	assert.Contains(t, out, "0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6")
}

func TestConfigSetGet(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "config", "set", "network", "sepolia")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "config", "get", "network")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", strings.TrimSpace(out))

	_, err = runCLI(t, dir, "config", "set", "chain_id", "-5")
	assert.Error(t, err)
}

func TestConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cmd := exec.Command(binaryPath, "config", "get", "rpc_url")
	cmd.Env = append(os.Environ(), "TANGLECTL_CONFIG_DIR="+dir, "TANGLECTL_RPC_URL=http://node.internal:8545")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "http://node.internal:8545")
}

func TestWalletAddAndList(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "wallet", "add", "watcher", "0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "wallet", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "watcher")
	assert.Contains(t, strings.ToLower(out), "0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
}

func TestWalletRemove(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "wallet", "add", "w1", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8") //nolint:errcheck

	cmd := exec.Command(binaryPath, "wallet", "remove", "w1")
	cmd.Env = append(os.Environ(), "TANGLECTL_CONFIG_DIR="+dir)
	cmd.Stdin = strings.NewReader("y\n")
	cmd.Run() //nolint:errcheck

	out, err := runCLI(t, dir, "wallet", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "w1")
}

func TestCallWithoutTokenFails(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "call", "totalSupply")
	assert.Error(t, err)
	assert.Contains(t, out, "no token configured")
}

func TestUnknownCommandShowsError(t *testing.T) {
	out, _ := runCLI(t, t.TempDir(), "unknowncommand")
	assert.Contains(t, strings.ToLower(out), "unknown command")
}

func TestContractVerifyArtifact(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "contract", "verify", "--abi", fixtures.WriteArtifact(t, "0x6080604052"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "matches the TangleToken interface")

	erc20 := `[{"type":"function","name":"transfer","stateMutability":"nonpayable",` +
		`"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],` +
		`"outputs":[{"name":"","type":"bool"}]}]`
	out, err = runCLI(t, dir, "contract", "verify", "--abi", fixtures.WriteABI(t, erc20))
	assert.Error(t, err)
	assert.Contains(t, out, "does not match TangleToken")
}

func TestContractRegistry(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "contract", "add", "tangle", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "contract", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "tangle")
	assert.Contains(t, out, "anvil")

	_, err = runCLI(t, dir, "contract", "remove", "tangle")
	require.NoError(t, err)
	out, err = runCLI(t, dir, "contract", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No contracts registered")
}
