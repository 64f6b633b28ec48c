package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

func newDecodeCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode calldata, revert data, logs or return data offline",
		Long: `Decode TangleToken payloads without an RPC connection.

Examples:
  tanglectl decode call 0xa9059cbb000000000000000000000000...
  tanglectl decode error 0xe450d38c...
  tanglectl decode log --topic 0xddf252ad... --topic 0x...00aa --topic 0x...00bb --data 0x...2a
  tanglectl decode returns balanceOf 0x00000000000000000000000000000000000000000000000000000000000003e8`,
	}
	cmd.AddCommand(
		newDecodeCallCmd(),
		newDecodeErrorCmd(),
		newDecodeLogCmd(),
		newDecodeReturnsCmd(),
	)
	return cmd
}

func newDecodeCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <calldata>",
		Short: "Decode calldata into a typed TangleToken call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			call, err := tangletoken.DecodeCall(data)
			if err != nil {
				return err
			}
			fn := call.Descriptor()
			pairs := [][2]string{
				{"Function", ui.Val(fn.Name)},
				{"Signature", fn.Signature()},
				{"Selector", fn.Selector().String()},
			}
			pairs = append(pairs, tangletoken.Fields(call)...)
			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Decoded Calldata", pairs))
			return nil
		},
	}
}

func newDecodeErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "error <revert-data>",
		Short: "Decode revert data into a custom error, Error(string) or Panic(uint256)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			rev := tangletoken.ParseRevert(data)
			var pairs [][2]string
			switch {
			case rev.Decoded != nil:
				d := rev.Decoded.Descriptor()
				pairs = append(pairs,
					[2]string{"Error", ui.Val(d.Name)},
					[2]string{"Signature", d.Signature()},
					[2]string{"Selector", d.Selector().String()},
				)
				pairs = append(pairs, tangletoken.Fields(rev.Decoded)...)
			case rev.Reason != "":
				pairs = append(pairs, [2]string{"Reason", ui.Val(rev.Reason)})
			default:
				return fmt.Errorf("unrecognised revert data %s", hexutil.Encode(data))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Decoded Revert", pairs))
			return nil
		},
	}
}

func newDecodeLogCmd() *cobra.Command {
	var (
		topics []string
		data   string
	)
	cmd := &cobra.Command{
		Use:   "log --topic <topic0> [--topic <topicN>...] [--data <hex>]",
		Short: "Decode a raw log into a typed TangleToken event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := types.Log{}
			for _, t := range topics {
				b, err := decodeHexArg(t)
				if err != nil {
					return fmt.Errorf("topic %s: %w", t, err)
				}
				if len(b) != common.HashLength {
					return fmt.Errorf("topic %s: expected 32 bytes, got %d", t, len(b))
				}
				log.Topics = append(log.Topics, common.BytesToHash(b))
			}
			if data != "" {
				b, err := decodeHexArg(data)
				if err != nil {
					return fmt.Errorf("data: %w", err)
				}
				log.Data = b
			}
			ev, err := tangletoken.DecodeLog(log)
			if err != nil {
				return err
			}
			d := ev.Descriptor()
			pairs := [][2]string{
				{"Event", ui.Val(d.Name)},
				{"Signature", d.Signature()},
			}
			pairs = append(pairs, tangletoken.Fields(ev)...)
			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Decoded Log", pairs))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "log topic, repeat in order (topic0 first)")
	cmd.Flags().StringVar(&data, "data", "", "log data")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newDecodeReturnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "returns <function> <return-data>",
		Short: "Decode eth_call return data for a TangleToken function",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := tangletoken.ABI().Functions[args[0]]
			if !ok {
				return fmt.Errorf("function %q not found in ABI", args[0])
			}
			data, err := decodeHexArg(args[1])
			if err != nil {
				return err
			}
			values, err := fn.UnpackReturns(data)
			if err != nil {
				return err
			}
			printResults(cmd, fn.Signature(), contract.Results(fn.Outputs.Params(), values))
			return nil
		},
	}
}

// printResults renders decoded return values, one row per output.
func printResults(cmd *cobra.Command, title string, results []contract.Result) {
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("(no return values)"))
		return
	}
	pairs := make([][2]string, len(results))
	for i, r := range results {
		label := r.Name
		if label == "" {
			label = fmt.Sprintf("[%d]", i)
		}
		pairs[i] = [2]string{label + " (" + r.Type + ")", r.Value}
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(title, pairs))
}

func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0x" {
		return nil, fmt.Errorf("empty hex input, provide a string starting with 0x")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}
