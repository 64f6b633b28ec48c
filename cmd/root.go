package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/logger"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/tanglectl/cmd.Version=1.2.3" .
var Version = "0.1.0"

// flag name -> config key
var boundFlags = map[string]string{
	"rpc":       config.KeyRPCURL,
	"network":   config.KeyNetwork,
	"chain-id":  config.KeyChainID,
	"token":     config.KeyToken,
	"wallet":    config.KeyWallet,
	"log-level": config.KeyLogLevel,
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd(newRuntime()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(rt *runtime) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "tanglectl",
		Short: "Typed bindings and CLI for the TangleToken contract",
		Long: `tanglectl encodes, decodes, calls, sends and watches TangleToken.

Everything is checked against the token's ABI: calldata is built from typed
arguments, reverts are decoded into the token's custom errors and logs are
decoded into typed events.

Settings come from config.json in the config directory, then TANGLECTL_*
environment variables, then flags. Persist with: tanglectl config set <key> <value>`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Banner())
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			for flag, key := range boundFlags {
				if err := rt.viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("binding --%s: %w", flag, err)
				}
			}
			if err := rt.load(); err != nil {
				return err
			}
			level := rt.cfg.LogLevel
			if verbose {
				level = "debug"
			}
			rt.log = logger.NewConsoleLogger(level, cmd.ErrOrStderr())
			rt.log.Debug().
				Str("dir", rt.cfg.Dir()).
				Str("network", rt.cfg.Network).
				Str("rpc", rt.cfg.RPCURL).
				Msg("Loaded configuration")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rt.cfgDir, "config", rt.cfgDir, "config directory (default: ~/.tanglectl, or $"+config.DirEnvVar+")")
	pf.String("rpc", "", "JSON-RPC endpoint (overrides rpc_url)")
	pf.String("network", "", "network name used for the contract registry")
	pf.String("chain-id", "", "chain id used for offline signing (0 asks the node)")
	pf.String("token", "", "token address or registry name")
	pf.String("wallet", "", "wallet used to sign (default: default_wallet)")
	pf.String("log-level", "", "trace, debug, info, warn, error")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newSelectorsCmd(rt),
		newSelectorCmd(rt),
		newKeccakCmd(rt),
		newEncodeCmd(rt),
		newDecodeCmd(rt),
		newCallCmd(rt),
		newSendCmd(rt),
		newDeployCmd(rt),
		newEventsCmd(rt),
		newWatchCmd(rt),
		newSignCmd(rt),
		newTokenCmd(rt),
		newWalletCmd(rt),
		newContractCmd(rt),
		newConfigCmd(rt),
	)
	return root
}
