package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

func newDeployCmd(rt *runtime) *cobra.Command {
	var (
		artifact string
		name     string
		admin    string
		supply   string
		noInit   bool
		use      bool
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "deploy --artifact <path>",
		Short: "Deploy a TangleToken implementation from a compiled artifact",
		Long: `Deploy the TangleToken contract from a Hardhat or Foundry artifact.

The artifact ABI is checked against the TangleToken interface before
anything is sent. After deployment initialize(admin, initialSupply) is
called unless --no-init is given. The admin receives DEFAULT_ADMIN_ROLE,
MINTER_ROLE and UPGRADER_ROLE plus the initial supply.

The contract is registered under --name for the current network so other
commands can use --token <name>.

Examples:
  tanglectl deploy --artifact out/TangleToken.sol/TangleToken.json
  tanglectl deploy --artifact TangleToken.json --supply 1000000 --use
  tanglectl deploy --artifact TangleToken.json --admin 0xMultisig --no-init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			art, err := contract.LoadArtifactFull(artifact)
			if err != nil {
				return err
			}
			if err := contract.VerifyTangleToken(art.ABI); err != nil {
				return fmt.Errorf("%s: %w", artifact, err)
			}
			initialSupply, err := chain.ParseUnits(supply, tokenDecimals)
			if err != nil {
				return fmt.Errorf("invalid --supply %q: %w", supply, err)
			}

			signer, err := rt.signer()
			if err != nil {
				return err
			}
			adminAddr := signer.Address()
			if admin != "" {
				if adminAddr, err = rt.resolveAccount(admin); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			pairs := [][2]string{
				{"Artifact", artifact},
				{"Bytecode", fmt.Sprintf("%d bytes", len(art.Bytecode))},
				{"Deployer", ui.Addr(signer.Address().Hex())},
				{"Network", rt.cfg.Network},
				{"Register as", name},
			}
			if !noInit {
				pairs = append(pairs,
					[2]string{"Admin", ui.Addr(adminAddr.Hex())},
					[2]string{"Initial supply", supply},
				)
			}
			fmt.Fprintln(out, ui.KeyValueBlock("TangleToken Deploy Preview", pairs))
			if !yes && !ui.Confirm(rt.stdin, cmd.ErrOrStderr(), "Deploy this token?") {
				fmt.Fprintln(out, ui.Meta("Cancelled."))
				return nil
			}

			ctx, cancel := commandContext(cmd.Context())
			defer cancel()
			client, err := rt.dial(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			opts := append(rt.tokenOptions(), tangletoken.WithReceiptTimeout(config.TxDeployTimeout))
			var token *tangletoken.Instance
			receipt, err := waitWithSpinner(cmd, "Deploying TangleToken…", func() (*types.Receipt, error) {
				t, r, err := tangletoken.Deploy(ctx, client, signer, art.Bytecode, opts...)
				token = t
				return r, err
			})
			if err != nil {
				if receipt != nil {
					printReceipt(cmd, receipt)
				}
				return reportRevert(cmd, err)
			}

			regErr := rt.registerDeployment(name, token.Address(), receipt.TxHash, use)

			result := [][2]string{
				{"Contract", ui.Addr(token.Address().Hex())},
				{"Tx Hash", ui.Addr(receipt.TxHash.Hex())},
				{"Block", fmt.Sprintf("%v", receipt.BlockNumber)},
				{"Gas Used", fmt.Sprintf("%d", receipt.GasUsed)},
			}

			if !noInit {
				initReceipt, err := waitWithSpinner(cmd, "Initializing…", func() (*types.Receipt, error) {
					return token.Initialize(adminAddr, initialSupply).SendAndWait(ctx, signer)
				})
				if err != nil {
					fmt.Fprintln(out, ui.KeyValueBlock("Token Deployed (not initialized)", result))
					return reportRevert(cmd, err)
				}
				result = append(result,
					[2]string{"Initialize Tx", ui.Addr(initReceipt.TxHash.Hex())},
					[2]string{"Admin", ui.Addr(adminAddr.Hex())},
					[2]string{"Supply", chain.FormatUnits(initialSupply, tokenDecimals)},
				)
			}

			fmt.Fprintln(out, ui.KeyValueBlock("Token Deployed ✓", result))
			if regErr != nil {
				fmt.Fprintln(out, ui.Warn("could not register deployment: "+regErr.Error()))
				return nil
			}
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Registered as %q on %s", name, rt.cfg.Network)))
			if !use {
				fmt.Fprintln(out, ui.Hint("Make it the default: tanglectl config set token_address "+name))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&artifact, "artifact", "", "Hardhat or Foundry artifact JSON (required)")
	cmd.Flags().StringVar(&name, "name", "tangle", "registry name for the deployed token")
	cmd.Flags().StringVar(&admin, "admin", "", "initial admin address or wallet (default: deployer)")
	cmd.Flags().StringVar(&supply, "supply", "0", "initial supply in token units minted to the admin")
	cmd.Flags().BoolVar(&noInit, "no-init", false, "skip initialize()")
	cmd.Flags().BoolVar(&use, "use", false, "set token_address to the new deployment")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.MarkFlagRequired("artifact") //nolint:errcheck
	return cmd
}

// registerDeployment stores the deployment in the contract registry and,
// with use, points token_address at it.
func (rt *runtime) registerDeployment(name string, addr common.Address, tx common.Hash, use bool) error {
	reg, err := rt.registry()
	if err != nil {
		return err
	}
	if err := reg.Add(&contract.Entry{
		Name:     name,
		Network:  rt.cfg.Network,
		Address:  addr.Hex(),
		Kind:     contract.KindTangleToken,
		DeployTx: tx.Hex(),
	}); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}
	if !use {
		return nil
	}
	return rt.persistSetting(config.KeyToken, name)
}
