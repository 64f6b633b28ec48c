package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/logger"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// runtime is shared by every command: configuration, logger and the
// factories that touch the outside world.
type runtime struct {
	cfgDir string
	cfg    *config.Config
	log    *zerolog.Logger
	viper  *viper.Viper
	stdin  io.Reader

	keystore func() wallet.KeystoreBackend
}

func newRuntime() *runtime {
	return &runtime{
		cfgDir:   os.Getenv(config.DirEnvVar),
		log:      logger.Nop(),
		viper:    config.NewViper(),
		stdin:    os.Stdin,
		keystore: func() wallet.KeystoreBackend { return wallet.DefaultKeystore() },
	}
}

// load reads config.json and applies environment and flag overrides.
func (rt *runtime) load() error {
	c, err := config.Load(rt.cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := c.Overlay(rt.viper); err != nil {
		return err
	}
	rt.cfg = c
	return nil
}

// commandContext is cancelled on Ctrl-C.
func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}

func (rt *runtime) dial(ctx context.Context) (*ethclient.Client, error) {
	dctx, cancel := context.WithTimeout(ctx, config.RPCDialTimeout)
	defer cancel()
	return chain.Dial(dctx, rt.cfg.RPCURL, rt.log)
}

func (rt *runtime) registry() (*contract.Registry, error) {
	r := contract.NewRegistry(rt.cfg.ContractsPath())
	if err := r.Load(); err != nil {
		return nil, fmt.Errorf("loading contract registry: %w", err)
	}
	return r, nil
}

// tokenAddress resolves --token / token_address, which may be a registry
// name for the current network.
func (rt *runtime) tokenAddress() (common.Address, error) {
	if rt.cfg.TokenAddress == "" {
		return common.Address{}, fmt.Errorf("no token configured; pass --token <address> or run `tanglectl config set token_address <address>`")
	}
	reg, err := rt.registry()
	if err != nil {
		return common.Address{}, err
	}
	return reg.Resolve(rt.cfg.TokenAddress, rt.cfg.Network)
}

func (rt *runtime) tokenOptions() []tangletoken.Option {
	return []tangletoken.Option{
		tangletoken.WithLogger(rt.log),
		tangletoken.WithReceiptTimeout(rt.cfg.ReceiptTimeoutDuration()),
	}
}

// openToken dials the node and binds the configured token. The caller
// closes the client.
func (rt *runtime) openToken(ctx context.Context) (*tangletoken.Instance, *ethclient.Client, error) {
	addr, err := rt.tokenAddress()
	if err != nil {
		return nil, nil, err
	}
	client, err := rt.dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tangletoken.New(addr, client, rt.tokenOptions()...), client, nil
}

// walletManager creates a Manager backed by the config-dir JSON store.
func (rt *runtime) walletManager() *wallet.Manager {
	return wallet.NewManager(
		wallet.WithStore(wallet.NewJSONStore(rt.cfg.WalletsPath())),
		wallet.WithKeystore(rt.keystore()),
	)
}

// signer loads --wallet, the configured default or the manager's default
// and checks it can sign.
func (rt *runtime) signer() (*wallet.Signer, error) {
	mgr := rt.walletManager()
	name := rt.cfg.DefaultWallet
	if name == "" {
		if w := mgr.Default(); w != nil {
			name = w.Name
		}
	}
	if name == "" {
		return nil, fmt.Errorf("no wallet specified; pass --wallet <name> or set a default with `tanglectl wallet use <name>`")
	}
	s, err := mgr.Signer(name)
	if err != nil {
		return nil, fmt.Errorf("wallet %q: %w\n  To add a signing wallet: tanglectl wallet add <name> --key <private-key>", name, err)
	}
	return s, nil
}

// resolveAccount accepts a hex address or a wallet name.
func (rt *runtime) resolveAccount(s string) (common.Address, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !common.IsHexAddress(s) {
			return common.Address{}, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	}
	w, err := rt.walletManager().Get(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%q is neither an address nor a wallet name: %w", s, err)
	}
	return w.Addr(), nil
}

// persistSetting writes key to config.json without the flag and
// environment overrides of this run, then applies it to the live config.
func (rt *runtime) persistSetting(key, value string) error {
	c, err := config.Load(rt.cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := c.Set(key, value); err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return rt.cfg.Set(key, value)
}
