package cmd

import (
	"context"
	"fmt"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
)

func newTokenAllowanceCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "allowance <owner> <spender>",
		Short: "Show how much spender may move from owner",
		Example: `  tanglectl token allowance deployer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			spender, err := rt.resolveAccount(args[1])
			if err != nil {
				return err
			}
			return rt.withToken(cmd, func(ctx context.Context, t *tangletoken.Instance) error {
				a, err := t.Allowance(owner, spender).Call(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Allowance", [][2]string{
					{"Owner", ui.Addr(owner.Hex())},
					{"Spender", ui.Addr(spender.Hex())},
					{"Allowance", ui.Val(formatAmount(a.Remaining, ""))},
					{"Raw", a.Remaining.String()},
				}))
				return nil
			})
		},
	}
}

func newTokenApproveCmd(rt *runtime) *cobra.Command {
	var (
		flags txFlags
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "approve <spender> <amount>",
		Short: "Approve spender to move the active wallet's tokens",
		Long: `Set the allowance of spender over the active wallet's tokens. Use
"sign permit" for a gasless approval instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spender, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1], raw)
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, tangletoken.ApproveCall{Spender: spender, Value: amount}, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "amount is in base units")
	return cmd
}
