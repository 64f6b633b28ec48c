package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/Mohsinsiddi/tanglectl/internal/wallet"
	"github.com/spf13/cobra"
)

func newWalletCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage wallets",
		Long: `Manage the accounts used to sign transactions, permits and delegations.

Private keys live in the OS keychain (or an encrypted file keyring where no
keychain exists). Only names and addresses are kept in wallets.json.`,
	}
	cmd.AddCommand(
		newWalletAddCmd(rt),
		newWalletGenerateCmd(rt),
		newWalletListCmd(rt),
		newWalletRemoveCmd(rt),
		newWalletUseCmd(rt),
	)
	return cmd
}

func newWalletAddCmd(rt *runtime) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "add <name> [address]",
		Short: "Add a signing or watch-only wallet",
		Long: `Add a wallet. With --key the private key is stored in the keychain and
the wallet can sign. Without it an address is required and the wallet is
watch-only, usable wherever an account is expected.

Examples:
  tanglectl wallet add deployer --key 0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80
  tanglectl wallet add treasury 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			mgr := rt.walletManager()
			out := cmd.OutOrStdout()

			if key != "" {
				if err := mgr.AddWithKey(name, key); err != nil {
					return err
				}
				w, _ := mgr.Get(name)
				fmt.Fprintln(out, ui.Success(fmt.Sprintf("Signing wallet %q added: %s", name, ui.Addr(w.Address))))
			} else {
				if len(args) < 2 {
					return fmt.Errorf("address required for watch-only wallet\n  Usage: tanglectl wallet add <name> <address>\n  Or for signing: tanglectl wallet add <name> --key <private-key>")
				}
				if err := mgr.AddWatchOnly(name, args[1]); err != nil {
					return err
				}
				w, _ := mgr.Get(name)
				fmt.Fprintln(out, ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", name, ui.Addr(w.Address))))
			}
			fmt.Fprintln(out, ui.Hint("Set as default with: tanglectl wallet use "+name))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "hex private key for a signing wallet")
	return cmd
}

func newWalletGenerateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <name>",
		Short: "Generate a new signing wallet",
		Long: `Generate a fresh secp256k1 keypair and store the private key in the keychain.

The private key is displayed ONCE. Copy it to a password manager.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, hexKey, err := rt.walletManager().Generate(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %s  %s\n", ui.Meta("Wallet :"), ui.Val(w.Name))
			fmt.Fprintf(out, "  %s  %s\n\n", ui.Meta("Address:"), ui.Addr(w.Address))
			fmt.Fprintln(out, ui.DangerBox(
				ui.Warn("SAVE YOUR PRIVATE KEY. It is shown only once. Never share it.")+"\n\n"+
					ui.Val(hexKey)+"\n\n"+
					ui.Hint("Store it in a password manager."),
			))
			return nil
		},
	}
}

func newWalletListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			wallets := rt.walletManager().List()
			if len(wallets) == 0 {
				fmt.Fprintln(out, ui.Info("No wallets configured yet."))
				fmt.Fprintln(out, ui.Hint("Add one with: tanglectl wallet generate deployer"))
				return nil
			}

			t := ui.NewTable([]ui.Column{
				{Title: "Name", Width: 16},
				{Title: "Address", Width: 44},
				{Title: "Type", Width: 12},
				{Title: "Default", Width: 8},
			})
			for _, w := range wallets {
				def := ""
				if w.IsDefault || w.Name == rt.cfg.DefaultWallet {
					def = ui.StyleSuccess.Render("✓")
				}
				t.AddRow(ui.Row{ui.Val(w.Name), ui.Addr(w.Address), ui.Meta(walletTypeLabel(w.Type)), def})
			}
			fmt.Fprint(out, t.Render())
			fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d wallet(s) configured", len(wallets))))
			return nil
		},
	}
}

func walletTypeLabel(t string) string {
	if t == wallet.TypeSigning {
		return "signing"
	}
	return "watch-only"
}

func newWalletRemoveCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a wallet and its stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !yes && !ui.ConfirmDanger(rt.stdin, cmd.ErrOrStderr(), fmt.Sprintf("Remove wallet %q and its key?", name)) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("Cancelled."))
				return nil
			}
			if err := rt.walletManager().Remove(name); err != nil {
				return err
			}
			if rt.cfg.DefaultWallet == name {
				if err := rt.persistSetting(config.KeyWallet, ""); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Wallet %q removed.", name)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newWalletUseCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "use [name]",
		Short: "Set the default wallet",
		Long: `Set the wallet used when --wallet is not given. Without a name an
interactive picker lists the stored wallets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := rt.walletManager()
			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				wallets := mgr.List()
				if len(wallets) == 0 {
					return fmt.Errorf("no wallets configured; add one with `tanglectl wallet add`")
				}
				items := make([]ui.PickerItem, len(wallets))
				for i, w := range wallets {
					items[i] = ui.PickerItem{Label: w.Name, SubLabel: w.Address, Value: w.Name}
				}
				picked, err := ui.PickItem("Select default wallet", items)
				if err != nil {
					return err
				}
				if picked == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("Cancelled."))
					return nil
				}
				name = picked
			}

			if err := mgr.SetDefault(name); err != nil {
				return err
			}
			if err := rt.persistSetting(config.KeyWallet, name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Default wallet set to %q.", name)))
			return nil
		},
	}
}
