package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func newSelectorCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "selector <signature-or-selector>",
		Short: "Compute a selector or look one up in the TangleToken ABI",
		Long: `Compute a 4-byte selector and 32-byte topic from a signature, or look up a
4-byte function/error selector or a 32-byte event topic in the TangleToken ABI.

Examples:
  tanglectl selector "transfer(address to, uint256 value)"   # 0xa9059cbb
  tanglectl selector 0xf1127ed8                               # checkpoints
  tanglectl selector 0xe450d38c                               # ERC20InsufficientBalance
  tanglectl selector 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])
			out := cmd.OutOrStdout()

			if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
				pairs, err := lookupSelector(input)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.KeyValueBlock("Selector Lookup", pairs))
				return nil
			}

			sig := normalizeSignature(input)
			sel := abi.SelectorOf(sig)
			pairs := [][2]string{
				{"Signature", sig},
				{"Selector", ui.Val(sel.String())},
				{"Topic", computeEventTopic(sig)},
			}
			if name := tokenMember(sel, abi.TopicOf(sig)); name != "" {
				pairs = append(pairs, [2]string{"TangleToken", name})
			}
			fmt.Fprintln(out, ui.KeyValueBlock("Selector", pairs))
			return nil
		},
	}
}

func newSelectorsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "selectors [functions|errors|events]",
		Short:     "List every selector and topic the token dispatches on",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"functions", "errors", "events"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "functions"
			if len(args) == 1 {
				kind = args[0]
			}
			rows, err := selectorRows(kind)
			if err != nil {
				return err
			}
			t := ui.NewTable([]ui.Column{{Title: "Selector"}, {Title: "Signature"}})
			for _, r := range rows {
				t.AddRow(r)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.Render())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Meta(fmt.Sprintf("%d %s", len(rows), kind)))
			return nil
		},
	}
}

// selectorRows lists the dispatch table for kind in table order.
func selectorRows(kind string) ([]ui.Row, error) {
	c := tangletoken.ABI()
	var rows []ui.Row
	switch kind {
	case "functions":
		for _, sel := range tangletoken.CallSelectors() {
			fn, _ := c.FunctionBySelector(sel)
			rows = append(rows, ui.Row{sel.String(), fn.Signature()})
		}
	case "errors":
		for _, sel := range tangletoken.ErrorSelectors() {
			e, _ := c.ErrorBySelector(sel)
			rows = append(rows, ui.Row{sel.String(), e.Signature()})
		}
	case "events":
		for _, topic := range tangletoken.EventTopics() {
			rows = append(rows, ui.Row{topic.Hex(), eventByTopic(topic).Signature()})
		}
	default:
		return nil, fmt.Errorf("unknown kind %q (want functions, errors or events)", kind)
	}
	return rows, nil
}

func lookupSelector(input string) ([][2]string, error) {
	clean := strings.ToLower(input[2:])
	if len(clean) == 64 {
		topic := common.HexToHash(clean)
		ev := eventByTopic(topic)
		if ev == nil {
			return nil, fmt.Errorf("topic %s is not a TangleToken event", topic.Hex())
		}
		return [][2]string{
			{"Topic", topic.Hex()},
			{"Event", ui.Val(ev.Name)},
			{"Signature", ev.Signature()},
		}, nil
	}

	sel, err := abi.ParseSelector(input)
	if err != nil {
		return nil, err
	}
	c := tangletoken.ABI()
	if fn, ok := c.FunctionBySelector(sel); ok {
		return [][2]string{
			{"Selector", sel.String()},
			{"Function", ui.Val(fn.Name)},
			{"Signature", fn.Signature()},
			{"Mutability", fn.StateMutability},
		}, nil
	}
	if e, ok := c.ErrorBySelector(sel); ok {
		return [][2]string{
			{"Selector", sel.String()},
			{"Error", ui.Val(e.Name)},
			{"Signature", e.Signature()},
		}, nil
	}
	return nil, fmt.Errorf("selector %s is not part of the TangleToken ABI", sel)
}

// tokenMember names the token function, error or event that sel or topic
// belongs to, or returns "".
func tokenMember(sel abi.Selector, topic common.Hash) string {
	c := tangletoken.ABI()
	if fn, ok := c.FunctionBySelector(sel); ok {
		return "function " + fn.Name
	}
	if e, ok := c.ErrorBySelector(sel); ok {
		return "error " + e.Name
	}
	if ev := eventByTopic(topic); ev != nil {
		return "event " + ev.Name
	}
	return ""
}

func eventByTopic(topic common.Hash) *abi.Event {
	for _, ev := range tangletoken.ABI().Events {
		if ev.Topic() == topic {
			return ev
		}
	}
	return nil
}

// normalizeSignature removes parameter names, keeping only types.
// "transfer(address to, uint256 amount)" → "transfer(address,uint256)"
func normalizeSignature(sig string) string {
	parenIdx := strings.Index(sig, "(")
	if parenIdx < 0 || !strings.HasSuffix(sig, ")") {
		return sig
	}

	name := strings.TrimSpace(sig[:parenIdx])
	paramStr := sig[parenIdx+1 : len(sig)-1]

	if strings.TrimSpace(paramStr) == "" {
		return name + "()"
	}

	var types []string
	for _, p := range strings.Split(paramStr, ",") {
		// first word is the type; "indexed" and the name are dropped
		parts := strings.Fields(p)
		if len(parts) > 0 {
			types = append(types, parts[0])
		}
	}

	return name + "(" + strings.Join(types, ",") + ")"
}

// computeEventTopic returns keccak256 of the canonical signature.
func computeEventTopic(sig string) string {
	return abi.TopicOf(normalizeSignature(sig)).Hex()
}
