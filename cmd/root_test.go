package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/internal/wallet"
	"github.com/stretchr/testify/require"
)

const (
	hardhatKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	otherAddr   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	tokenHex    = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

// cli runs commands against one config directory and in-memory keystore.
type cli struct {
	t   *testing.T
	dir string
	ks  *wallet.InMemoryKeystore
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	return &cli{t: t, dir: t.TempDir(), ks: wallet.NewInMemoryKeystore()}
}

func (c *cli) run(stdin string, args ...string) (string, string, error) {
	c.t.Helper()
	rt := newRuntime()
	rt.keystore = func() wallet.KeystoreBackend { return c.ks }
	rt.stdin = strings.NewReader(stdin)

	root := newRootCmd(rt)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", c.dir}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, errOut, err := c.run("", args...)
	require.NoError(c.t, err, "stderr: %s", errOut)
	return out
}
