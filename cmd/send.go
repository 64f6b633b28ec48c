package cmd

import (
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

// txFlags are shared by every command that signs a transaction.
type txFlags struct {
	gasLimit uint64
	value    string
	noWait   bool
	yes      bool
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.gasLimit, "gas-limit", 0, "gas limit (default: estimate)")
	cmd.Flags().StringVar(&f.value, "value", "", "ETH to attach to payable functions, e.g. 0.1")
	cmd.Flags().BoolVar(&f.noWait, "no-wait", false, "return after broadcasting, without waiting for the receipt")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "skip the confirmation prompt")
}

func newSendCmd(rt *runtime) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "send <function> [args...]",
		Short: "Sign and send a state-changing TangleToken function",
		Long: `Sign a transaction calling a nonpayable or payable function on the
configured token and wait for its receipt. Reverts are decoded into the
token's custom errors, including reverts that only show up at mining time.

Examples:
  tanglectl send transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 1000
  tanglectl send mint 0xRecipient 1000000000000000000 --wallet minter
  tanglectl send grantRole 0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6 0xAccount
  tanglectl send delegate 0xSelf --no-wait`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := contract.Prepare(args[0], args[1:])
			if err != nil {
				return err
			}
			return rt.sendCall(cmd, call, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

// sendCall signs and sends call from the active wallet, printing the
// transaction and, unless --no-wait, its receipt.
func (rt *runtime) sendCall(cmd *cobra.Command, call tangletoken.Calls, flags txFlags) error {
	fn := call.Descriptor()
	if fn.ReadOnly() {
		return fmt.Errorf("%s is a read function, use `tanglectl call %s`", fn.Name, fn.Name)
	}
	value, err := parseValue(flags.value)
	if err != nil {
		return err
	}

	signer, err := rt.signer()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	token, client, err := rt.openToken(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	sender := contract.NewSender(token, signer).GasLimit(flags.gasLimit).Value(value)
	if err := sender.Check(call); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pairs := [][2]string{
		{"Token", ui.Addr(token.Address().Hex())},
		{"From", ui.Addr(signer.Address().Hex())},
		{"Function", ui.Val(fn.Signature())},
	}
	pairs = append(pairs, tangletoken.Fields(call)...)
	fmt.Fprintln(out, ui.KeyValueBlock("Transaction", pairs))
	if !flags.yes && !ui.Confirm(rt.stdin, cmd.ErrOrStderr(), "Send transaction?") {
		fmt.Fprintln(out, ui.Meta("Cancelled."))
		return nil
	}

	if flags.noWait {
		tx, err := sender.SendCall(ctx, call)
		if err != nil {
			return reportRevert(cmd, err)
		}
		printSent(cmd, tx)
		return nil
	}

	receipt, err := waitWithSpinner(cmd, "Waiting for receipt…", func() (*types.Receipt, error) {
		return sender.SendCallAndWait(ctx, call)
	})
	if err != nil {
		if receipt != nil {
			printReceipt(cmd, receipt)
		}
		return reportRevert(cmd, err)
	}
	printReceipt(cmd, receipt)
	return nil
}

func parseValue(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := chain.ParseUnits(s, 18)
	if err != nil {
		return nil, fmt.Errorf("invalid --value %q: %w", s, err)
	}
	return v, nil
}

// waitWithSpinner runs fn behind a stderr spinner.
func waitWithSpinner(cmd *cobra.Command, msg string, fn func() (*types.Receipt, error)) (*types.Receipt, error) {
	spin := ui.NewSpinner(msg).WithOutput(cmd.ErrOrStderr())
	spin.Start()
	receipt, err := fn()
	spin.Stop()
	return receipt, err
}

func printSent(cmd *cobra.Command, tx *types.Transaction) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Transaction sent: "+ui.Addr(tx.Hash().Hex())))
	fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("Follow token events with: tanglectl watch"))
}

func printReceipt(cmd *cobra.Command, r *types.Receipt) {
	status := ui.StyleSuccess.Render("success")
	if r.Status != types.ReceiptStatusSuccessful {
		status = ui.StyleError.Render("reverted")
	}
	pairs := [][2]string{
		{"Hash", ui.Addr(r.TxHash.Hex())},
		{"Status", status},
		{"Block", fmt.Sprintf("%v", r.BlockNumber)},
		{"Gas used", fmt.Sprintf("%d", r.GasUsed)},
	}
	if r.ContractAddress != (common.Address{}) {
		pairs = append(pairs, [2]string{"Contract", ui.Addr(r.ContractAddress.Hex())})
	}
	if len(r.Logs) > 0 {
		pairs = append(pairs, [2]string{"Logs", fmt.Sprintf("%d", len(r.Logs))})
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Receipt", pairs))
	for _, l := range r.Logs {
		ev, err := tangletoken.DecodeLog(*l)
		if err != nil {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.EventName(ev.Descriptor().Name)+" "+ui.Meta(summariseFields(tangletoken.Fields(ev))))
	}
}
