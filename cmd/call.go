package cmd

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
)

func newCallCmd(rt *runtime) *cobra.Command {
	var (
		from  string
		block int64
	)

	cmd := &cobra.Command{
		Use:   "call <function> [args...]",
		Short: "Call a read-only TangleToken function",
		Long: `Call a view or pure function on the configured token with eth_call.

Arguments are parsed against the function's ABI types: addresses as 0x hex,
integers in decimal or 0x hex, bytes32 as 0x hex.

Examples:
  tanglectl call name
  tanglectl call balanceOf 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  tanglectl call checkpoints 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 0
  tanglectl call getPastVotes 0xAccount 1200 --block 1300`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := contract.Prepare(args[0], args[1:])
			if err != nil {
				return err
			}
			fn := call.Descriptor()
			if !fn.ReadOnly() {
				return fmt.Errorf("%s is not a read function, use `tanglectl send %s`", fn.Name, fn.Name)
			}

			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			token, client, err := rt.openToken(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			caller := contract.NewCaller(token)
			if from != "" {
				addr, err := rt.resolveAccount(from)
				if err != nil {
					return err
				}
				caller.From(addr)
			}
			if block > 0 {
				caller.AtBlock(big.NewInt(block))
			}
			results, err := caller.Call(ctx, args[0], args[1:]...)
			if err != nil {
				return reportRevert(cmd, err)
			}
			printResults(cmd, fn.Signature(), results)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "eth_call sender (address or wallet name)")
	cmd.Flags().Int64Var(&block, "block", 0, "block number to call at (default: latest)")
	return cmd
}

// reportRevert prints a decoded custom error as a block and returns err.
func reportRevert(cmd *cobra.Command, err error) error {
	var rev *tangletoken.RevertError
	if errors.As(err, &rev) && rev.Decoded != nil {
		d := rev.Decoded.Descriptor()
		pairs := append([][2]string{{"Error", ui.Val(d.Name)}}, tangletoken.Fields(rev.Decoded)...)
		fmt.Fprintln(cmd.ErrOrStderr(), ui.KeyValueBlock("Reverted", pairs))
	}
	return err
}
