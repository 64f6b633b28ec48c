package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func newEncodeCmd(rt *runtime) *cobra.Command {
	var asError bool

	cmd := &cobra.Command{
		Use:   "encode <function-or-signature> [args...]",
		Short: "Encode calldata from a function name or signature and arguments",
		Long: `Build ABI-encoded calldata.

A bare name is looked up in the TangleToken ABI and the arguments are
checked against its parameter types. A full signature such as
"foo(address,uint8)" encodes against any function.

With --error the name is a TangleToken custom error and the output is
revert data, handy for testing decoders.

Examples:
  tanglectl encode transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 1000
  tanglectl encode checkpoints 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 3
  tanglectl encode "approve(address,uint256)" 0xSpender 1
  tanglectl encode --error ERC20InsufficientBalance 0xSender 5 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pairs [][2]string
				err   error
			)
			switch {
			case asError:
				pairs, err = encodeTokenError(args[0], args[1:])
			case strings.Contains(args[0], "("):
				pairs, err = encodeSignature(args[0], args[1:])
			default:
				pairs, err = encodeTokenCall(args[0], args[1:])
			}
			if err != nil {
				return fmt.Errorf("encoding failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Encoded Calldata", pairs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asError, "error", false, "encode a TangleToken custom error instead of a call")
	return cmd
}

func encodeTokenCall(name string, args []string) ([][2]string, error) {
	call, err := contract.Prepare(name, args)
	if err != nil {
		return nil, err
	}
	data, err := tangletoken.EncodeCall(call)
	if err != nil {
		return nil, err
	}
	fn := call.Descriptor()
	pairs := [][2]string{
		{"Signature", fn.Signature()},
		{"Selector", fn.Selector().String()},
	}
	pairs = append(pairs, tangletoken.Fields(call)...)
	return append(pairs, calldataPairs(data)...), nil
}

func encodeTokenError(name string, args []string) ([][2]string, error) {
	e, ok := tangletoken.ABI().Errors[name]
	if !ok {
		return nil, fmt.Errorf("error %q not found in ABI", name)
	}
	values, err := contract.ParseArgs(e.Inputs.Params(), args)
	if err != nil {
		return nil, err
	}
	data, err := e.Encode(values...)
	if err != nil {
		return nil, err
	}
	pairs := [][2]string{
		{"Signature", e.Signature()},
		{"Selector", e.Selector().String()},
	}
	return append(pairs, calldataPairs(data)...), nil
}

func encodeSignature(sig string, args []string) ([][2]string, error) {
	canonical := normalizeSignature(sig)
	open := strings.Index(canonical, "(")
	if open <= 0 || !strings.HasSuffix(canonical, ")") {
		return nil, fmt.Errorf("invalid signature %q, expected name(type1,type2)", sig)
	}

	var params []abi.Param
	if typeStr := canonical[open+1 : len(canonical)-1]; typeStr != "" {
		for _, t := range strings.Split(typeStr, ",") {
			params = append(params, abi.Param{Type: t})
		}
	}
	fn, err := abi.NewFunction(canonical[:open], "nonpayable", params, nil)
	if err != nil {
		return nil, err
	}
	values, err := contract.ParseArgs(params, args)
	if err != nil {
		return nil, err
	}
	data, err := fn.EncodeCall(values...)
	if err != nil {
		return nil, err
	}

	pairs := [][2]string{
		{"Signature", fn.Signature()},
		{"Selector", fn.Selector().String()},
	}
	for i, arg := range args {
		pairs = append(pairs, [2]string{fmt.Sprintf("Arg[%d] (%s)", i, params[i].Type), arg})
	}
	return append(pairs, calldataPairs(data)...), nil
}

func calldataPairs(data []byte) [][2]string {
	return [][2]string{
		{"Calldata", ui.Val(hexutil.Encode(data))},
		{"Bytes", fmt.Sprintf("%d", len(data))},
	}
}
