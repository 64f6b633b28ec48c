package cmd

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// tokenDecimals is TangleToken's fixed decimals(). Amounts on the command
// line are in whole tokens and scaled by it.
const tokenDecimals = 18

func newTokenCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Typed TangleToken operations",
		Long: `Read and change token state through the typed bindings.

Amounts are in whole tokens (e.g. 1.5) unless --raw is given, in which
case they are base units. Accounts can be addresses or wallet names.`,
	}
	cmd.AddCommand(
		newTokenInfoCmd(rt),
		newTokenBalanceCmd(rt),
		newTokenVotesCmd(rt),
		newTokenTransferCmd(rt),
		newTokenMintCmd(rt),
		newTokenBurnCmd(rt),
		newTokenApproveCmd(rt),
		newTokenAllowanceCmd(rt),
		newTokenDelegateCmd(rt),
		newTokenRoleCmd(rt),
		newTokenHistoryCmd(rt),
	)
	return cmd
}

// parseAmount reads a token amount, scaled unless raw.
func parseAmount(s string, raw bool) (*big.Int, error) {
	if raw {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok || n.Sign() < 0 {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		if n.BitLen() > chain.MaxUintBits {
			return nil, fmt.Errorf("amount %q does not fit in uint256", s)
		}
		return n, nil
	}
	n, err := chain.ParseUnits(s, tokenDecimals)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

func formatAmount(n *big.Int, symbol string) string {
	s := chain.FormatUnits(n, tokenDecimals)
	if symbol != "" {
		s += " " + symbol
	}
	return s
}

// defaultAccount is the named account, or the active wallet when args is
// empty. Watch-only wallets are fine here.
func (rt *runtime) defaultAccount(args []string) (common.Address, error) {
	if len(args) > 0 {
		return rt.resolveAccount(args[0])
	}
	mgr := rt.walletManager()
	name := rt.cfg.DefaultWallet
	if name == "" {
		if w := mgr.Default(); w != nil {
			return w.Addr(), nil
		}
		return common.Address{}, fmt.Errorf("no account given and no default wallet set")
	}
	w, err := mgr.Get(name)
	if err != nil {
		return common.Address{}, err
	}
	return w.Addr(), nil
}

// withToken dials, binds the token and runs fn.
func (rt *runtime) withToken(cmd *cobra.Command, fn func(ctx context.Context, t *tangletoken.Instance) error) error {
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()
	token, client, err := rt.openToken(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := fn(ctx, token); err != nil {
		return reportRevert(cmd, err)
	}
	return nil
}

func newTokenInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show token metadata and supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				name, err := t.Name().Call(ctx)
				if err != nil {
					return err
				}
				symbol, err := t.Symbol().Call(ctx)
				if err != nil {
					return err
				}
				decimals, err := t.Decimals().Call(ctx)
				if err != nil {
					return err
				}
				supply, err := t.TotalSupply().Call(ctx)
				if err != nil {
					return err
				}
				maxSupply, err := t.MaxSupply().Call(ctx)
				if err != nil {
					return err
				}
				clock, err := t.ClockMode().Call(ctx)
				if err != nil {
					return err
				}
				version, err := t.UpgradeInterfaceVersion().Call(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(name.Name, [][2]string{
					{"Address", ui.Addr(t.Address().Hex())},
					{"Symbol", symbol.Symbol},
					{"Decimals", fmt.Sprintf("%d", decimals.Decimals)},
					{"Total supply", ui.Val(formatAmount(supply.Supply, symbol.Symbol))},
					{"Max supply", formatAmount(maxSupply.Supply, symbol.Symbol)},
					{"Clock", clock.Mode},
					{"UUPS", version.Version},
				}))
				return nil
			})
		},
	}
}

func newTokenTransferCmd(rt *runtime) *cobra.Command {
	var (
		flags txFlags
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "Transfer tokens from the active wallet",
		Example: `  tanglectl token transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 25
  tanglectl token transfer treasury 1000 --wallet deployer`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1], raw)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.TransferCall{To: to, Value: amount}, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "amount is in base units")
	return cmd
}

func newTokenMintCmd(rt *runtime) *cobra.Command {
	var (
		flags txFlags
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "mint <to> <amount>",
		Short: "Mint new tokens (MINTER_ROLE)",
		Long: `Mint amount to an account. The active wallet needs MINTER_ROLE and the
total supply may not exceed MAX_SUPPLY.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1], raw)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.MintCall{To: to, Amount: amount}, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "amount is in base units")
	return cmd
}

func newTokenBurnCmd(rt *runtime) *cobra.Command {
	var (
		flags txFlags
		raw   bool
		from  string
	)
	cmd := &cobra.Command{
		Use:   "burn <amount>",
		Short: "Burn tokens from the active wallet, or from an account with allowance",
		Example: `  tanglectl token burn 10
  tanglectl token burn 10 --from 0xOwnerWhoApprovedMe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0], raw)
			if err != nil {
				return err
			}
			if from == "" {
				return rt.sendCall(cmd, tangletoken.BurnCall{Value: amount}, flags)
			}
			account, err := rt.resolveAccount(from)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.BurnFromCall{Account: account, Value: amount}, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "amount is in base units")
	cmd.Flags().StringVar(&from, "from", "", "burn from this account using burnFrom")
	return cmd
}

func newTokenDelegateCmd(rt *runtime) *cobra.Command {
	var flags txFlags
	cmd := &cobra.Command{
		Use:   "delegate <delegatee|self>",
		Short: "Delegate the active wallet's voting power",
		Long: `Delegate voting power. Balances only count as votes once delegated,
so holders usually delegate to themselves first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var delegatee common.Address
			if args[0] == "self" {
				signer, err := rt.signer()
				if err != nil {
					return err
				}
				delegatee = signer.Address()
			} else {
				var err error
				if delegatee, err = rt.resolveAccount(args[0]); err != nil {
					return err
				}
			}
			return rt.sendCall(cmd, tangletoken.DelegateCall{Delegatee: delegatee}, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func newTokenRoleCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Inspect and manage access-control roles",
		Long: `Roles are admin, minter and upgrader (or DEFAULT_ADMIN_ROLE,
MINTER_ROLE, UPGRADER_ROLE, or a 0x-prefixed 32-byte id).`,
	}

	var grantFlags, revokeFlags, renounceFlags txFlags
	grant := &cobra.Command{
		Use:   "grant <role> <account>",
		Short: "Grant a role (role admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, account, err := rt.roleArgs(args)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.GrantRoleCall{Role: role, Account: account}, grantFlags)
		},
	}
	grantFlags.register(grant)

	revoke := &cobra.Command{
		Use:   "revoke <role> <account>",
		Short: "Revoke a role (role admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, account, err := rt.roleArgs(args)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.RevokeRoleCall{Role: role, Account: account}, revokeFlags)
		},
	}
	revokeFlags.register(revoke)

	renounce := &cobra.Command{
		Use:   "renounce <role>",
		Short: "Give up a role held by the active wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := tangletoken.ParseRole(args[0])
			if err != nil {
				return err
			}
			signer, err := rt.signer()
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.RenounceRoleCall{Role: role, CallerConfirmation: signer.Address()}, renounceFlags)
		},
	}
	renounceFlags.register(renounce)

	check := &cobra.Command{
		Use:   "check <account>",
		Short: "Show which roles an account holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				roles := [][32]byte{tangletoken.DefaultAdminRole, tangletoken.MinterRole, tangletoken.UpgraderRole}
				tbl := ui.NewTable([]ui.Column{{Title: "Role"}, {Title: "Held"}, {Title: "Admin role"}})
				for _, r := range roles {
					has, err := t.HasRole(r, account).Call(ctx)
					if err != nil {
						return err
					}
					admin, err := t.GetRoleAdmin(r).Call(ctx)
					if err != nil {
						return err
					}
					held := ui.Meta("no")
					if has.Granted {
						held = ui.StyleSuccess.Render("yes")
					}
					tbl.AddRow(ui.Row{tangletoken.RoleName(r), held, tangletoken.RoleName(admin.AdminRole)})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Meta("Account "+account.Hex()))
				fmt.Fprint(out, tbl.Render())
				return nil
			})
		},
	}

	cmd.AddCommand(grant, revoke, renounce, check)
	return cmd
}

func (rt *runtime) roleArgs(args []string) ([32]byte, common.Address, error) {
	role, err := tangletoken.ParseRole(args[0])
	if err != nil {
		return role, common.Address{}, err
	}
	account, err := rt.resolveAccount(args[1])
	return role, account, err
}

func newTokenHistoryCmd(rt *runtime) *cobra.Command {
	var from uint64

	cmd := &cobra.Command{
		Use:   "history [account]",
		Short: "List Transfer events to and from an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := rt.defaultAccount(args)
			if err != nil {
				return err
			}
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				logs, err := transferHistory(ctx, t, account, from)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(logs) == 0 {
					fmt.Fprintln(out, ui.Info("No transfers found for "+account.Hex()))
					return nil
				}
				tbl := ui.NewTable([]ui.Column{
					{Title: "Block"},
					{Title: "Dir"},
					{Title: "Counterparty", Width: 44},
					{Title: "Amount"},
					{Title: "Tx", Width: 14},
				})
				for _, l := range logs {
					dir, other := "←", l.Event.From
					if l.Event.From == account {
						dir, other = "→", l.Event.To
					}
					tbl.AddRow(ui.Row{
						fmt.Sprintf("%d", l.Raw.BlockNumber),
						dir,
						ui.Addr(other.Hex()),
						formatAmount(l.Event.Value, ""),
						ui.TruncateAddr(l.Raw.TxHash.Hex()),
					})
				}
				fmt.Fprint(out, tbl.Render())
				fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d transfer(s)", len(logs))))
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&from, "from-block", 0, "first block to search")
	return cmd
}

// transferHistory merges incoming and outgoing Transfer logs of account in
// chain order. Self-transfers appear once.
func transferHistory(ctx context.Context, t *tangletoken.Instance, account common.Address, from uint64) ([]tangletoken.Log[tangletoken.TransferEvent], error) {
	sent, err := t.TransferFilter([]common.Address{account}, nil).FromBlock(from).Query(ctx)
	if err != nil {
		return nil, err
	}
	received, err := t.TransferFilter(nil, []common.Address{account}).FromBlock(from).Query(ctx)
	if err != nil {
		return nil, err
	}

	type logKey struct {
		tx    common.Hash
		index uint
	}
	seen := make(map[logKey]bool, len(sent))
	all := append([]tangletoken.Log[tangletoken.TransferEvent](nil), sent...)
	for _, l := range sent {
		seen[logKey{l.Raw.TxHash, l.Raw.Index}] = true
	}
	for _, l := range received {
		if !seen[logKey{l.Raw.TxHash, l.Raw.Index}] {
			all = append(all, l)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Raw.BlockNumber != all[j].Raw.BlockNumber {
			return all[i].Raw.BlockNumber < all[j].Raw.BlockNumber
		}
		return all[i].Raw.Index < all[j].Raw.Index
	})
	return all, nil
}
