package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
)

func newContractCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage the registry of deployed tokens",
		Long: `Keep named TangleToken deployments per network so commands can take
--token <name> instead of an address.`,
	}
	cmd.AddCommand(
		newContractAddCmd(rt),
		newContractListCmd(rt),
		newContractRemoveCmd(rt),
		newContractBuiltinsCmd(),
		newContractVerifyCmd(rt),
	)
	return cmd
}

func newContractAddCmd(rt *runtime) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <name> <address>",
		Short: "Register a deployed token",
		Long: `Register a token address under a name for the current network.

Examples:
  tanglectl contract add tangle 0x5FbDB2315678afecb367f032d93F642f64180aa3
  tanglectl contract add tangle 0x5FbD... --network sepolia`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, address := args[0], args[1]
			reg, err := rt.registry()
			if err != nil {
				return err
			}
			e := &contract.Entry{Name: name, Network: rt.cfg.Network, Address: address, Kind: kind}
			if err := reg.Add(e); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Contract %q registered on %s at %s", name, e.Network, ui.Addr(e.Address))))
			fmt.Fprintln(out, ui.Hint("Use it with: tanglectl --token "+name+" token info"))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", contract.KindTangleToken, "built-in ABI id (see `contract builtins`)")
	return cmd
}

func newContractListCmd(rt *runtime) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tokens",
		Long: `List registered tokens on every network. With --name only the
deployments registered under that name are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rt.registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			entries := reg.All()
			if name != "" {
				entries = reg.GetByName(name)
				if len(entries) == 0 {
					return fmt.Errorf("%w: %s on any network", contract.ErrContractNotFound, name)
				}
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Info("No contracts registered yet."))
				fmt.Fprintln(out, ui.Hint("Add one with: tanglectl contract add <name> <address>"))
				return nil
			}

			t := ui.NewTable([]ui.Column{
				{Title: "Name", Width: 16},
				{Title: "Network", Width: 14},
				{Title: "Address", Width: 44},
				{Title: "Kind"},
				{Title: "Added"},
			})
			for _, e := range entries {
				t.AddRow(ui.Row{ui.Val(e.Name), e.Network, ui.Addr(e.Address), e.Kind, ui.Meta(e.CreatedAt)})
			}
			fmt.Fprint(out, t.Render())
			fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d contract(s) registered", len(entries))))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "only show deployments registered under this name")
	return cmd
}

func newContractRemoveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a token from the registry of the current network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rt.registry()
			if err != nil {
				return err
			}
			if err := reg.Remove(args[0], rt.cfg.Network); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Contract %q removed from %s.", args[0], rt.cfg.Network)))
			return nil
		},
	}
}

func newContractBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the ABIs compiled into tanglectl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			t := ui.NewTable([]ui.Column{
				{Title: "ID", Width: 14},
				{Title: "Name"},
				{Title: "Functions"},
				{Title: "Errors"},
				{Title: "Events"},
			})
			builtins := contract.AllBuiltins()
			for _, b := range builtins {
				t.AddRow(ui.Row{
					ui.Val(b.ID),
					b.Name,
					fmt.Sprintf("%d", len(b.ABI.Functions)),
					fmt.Sprintf("%d", len(b.ABI.Errors)),
					fmt.Sprintf("%d", len(b.ABI.Events)),
				})
			}
			fmt.Fprint(out, t.Render())
			for _, b := range builtins {
				fmt.Fprintln(out, ui.Meta(b.ID+": "+b.Description))
			}
			return nil
		},
	}
}

func newContractVerifyCmd(rt *runtime) *cobra.Command {
	var (
		abiFile string
		url     string
	)

	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Check that an ABI matches the TangleToken interface",
		Long: `Compare an ABI against the compiled-in TangleToken interface: every
function, custom error and event must be present with the same selector.

Sources (pick one):
  --abi <file>   raw ABI JSON or Hardhat/Foundry artifact
  --url <url>    ABI JSON served over HTTP
  (default)      verified source ABI from the block explorer API
                 (explorer_api_url / explorer_api_key) for the token

Examples:
  tanglectl contract verify --abi out/TangleToken.sol/TangleToken.json
  tanglectl contract verify tangle`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			var (
				entries []abi.JSONEntry
				source  string
				err     error
			)
			switch {
			case abiFile != "":
				entries, err = contract.LoadFromArtifact(abiFile)
				source = abiFile
			case url != "":
				entries, err = contract.NewFetcher(rt.cfg.ExplorerAPIKey).FetchFromURL(ctx, url)
				source = url
			default:
				if len(args) == 1 {
					if err := rt.cfg.Set(config.KeyToken, args[0]); err != nil {
						return err
					}
				}
				addr, aerr := rt.tokenAddress()
				if aerr != nil {
					return aerr
				}
				if rt.cfg.ExplorerAPIURL == "" {
					return fmt.Errorf("explorer_api_url is not set; use --abi or `tanglectl config set explorer_api_url <url>`")
				}
				spin := ui.NewSpinner("Fetching ABI from explorer…").WithOutput(cmd.ErrOrStderr())
				spin.Start()
				entries, err = contract.NewFetcher(rt.cfg.ExplorerAPIKey).FetchFromExplorer(ctx, rt.cfg.ExplorerAPIURL, addr.Hex())
				source = addr.Hex()
				if err != nil {
					spin.Stop()
				} else {
					spin.StopWithMsg(ui.Meta(fmt.Sprintf("Fetched %d ABI entries for %s", len(entries), source)))
				}
			}
			if err != nil {
				return err
			}

			if err := contract.VerifyTangleToken(entries); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Err(source+" does not match TangleToken"))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s matches the TangleToken interface (%d ABI entries)", source, len(entries))))
			return nil
		},
	}
	cmd.Flags().StringVar(&abiFile, "abi", "", "ABI or artifact file")
	cmd.Flags().StringVar(&url, "url", "", "URL serving ABI JSON")
	return cmd
}
