package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func newTokenBalanceCmd(rt *runtime) *cobra.Command {
	var block int64

	cmd := &cobra.Command{
		Use:   "balance [wallet-name-or-address]",
		Short: "Show an account's token balance",
		Long: `Show the token balance of an account. Without an argument the default
wallet is used.

Examples:
  tanglectl token balance
  tanglectl token balance treasury
  tanglectl token balance 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --block 120`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := rt.defaultAccount(args)
			if err != nil {
				return err
			}
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				at := blockArg(block)
				bal, err := t.BalanceOf(account).AtBlock(at).Call(ctx)
				if err != nil {
					return err
				}
				symbol, err := t.Symbol().Call(ctx)
				if err != nil {
					return err
				}
				pairs := [][2]string{
					{"Account", ui.Addr(account.Hex())},
					{"Balance", ui.Val(formatAmount(bal.Balance, symbol.Symbol))},
					{"Raw", bal.Balance.String()},
				}
				if at != nil {
					pairs = append(pairs, [2]string{"Block", at.String()})
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Token Balance", pairs))
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&block, "block", -1, "query at this block (default: latest)")
	return cmd
}

func blockArg(n int64) *big.Int {
	if n < 0 {
		return nil
	}
	return big.NewInt(n)
}

func newTokenVotesCmd(rt *runtime) *cobra.Command {
	var at int64

	cmd := &cobra.Command{
		Use:   "votes [wallet-name-or-address]",
		Short: "Show voting power, delegate and checkpoints",
		Long: `Show an account's current voting power, who it delegates to and how
many vote checkpoints it has. With --at the historical vote count at that
clock value (block number) is shown too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := rt.defaultAccount(args)
			if err != nil {
				return err
			}
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				votes, err := t.GetVotes(account).Call(ctx)
				if err != nil {
					return err
				}
				delegates, err := t.Delegates(account).Call(ctx)
				if err != nil {
					return err
				}
				n, err := t.NumCheckpoints(account).Call(ctx)
				if err != nil {
					return err
				}

				delegatee := ui.Meta("(none)")
				if delegates.Delegatee != (common.Address{}) {
					delegatee = ui.Addr(delegates.Delegatee.Hex())
				}
				pairs := [][2]string{
					{"Account", ui.Addr(account.Hex())},
					{"Votes", ui.Val(formatAmount(votes.Votes, ""))},
					{"Delegates to", delegatee},
					{"Checkpoints", fmt.Sprintf("%d", n.Count)},
				}
				if n.Count > 0 {
					last, err := t.Checkpoints(account, n.Count-1).Call(ctx)
					if err != nil {
						return err
					}
					pairs = append(pairs, [2]string{"Last change", fmt.Sprintf("clock %s", last.Checkpoint.Key)})
				}
				if at >= 0 {
					past, err := t.GetPastVotes(account, big.NewInt(at)).Call(ctx)
					if err != nil {
						return err
					}
					pairs = append(pairs, [2]string{fmt.Sprintf("Votes at %d", at), formatAmount(past.Votes, "")})
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Voting Power", pairs))
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&at, "at", -1, "also show past votes at this timepoint")
	return cmd
}
