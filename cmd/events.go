package cmd

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

// defaultEventWindow is how many blocks back `events` looks without --from.
const defaultEventWindow = 1000

func newEventsCmd(rt *runtime) *cobra.Command {
	var (
		from, to int64
		where    []string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "events [Event]",
		Short: "Query and decode TangleToken event logs",
		Long: `Fetch logs emitted by the configured token and decode them into typed
events. Without an event name every TangleToken event is returned.

By default the last 1000 blocks are queried. Use --from and --to to pick a
range. --where filters on indexed arguments and can be repeated.

Examples:
  tanglectl events
  tanglectl events Transfer --from 0
  tanglectl events Transfer --where to=0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  tanglectl events RoleGranted --where role=0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			topics, err := eventTopics(name, where)
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

			q := ethereum.FilterQuery{Addresses: []common.Address{token.Address()}, Topics: topics}
			if to >= 0 {
				q.ToBlock = big.NewInt(to)
			}
			if from < 0 {
				head, err := client.HeaderByNumber(ctx, nil)
				if err != nil {
					return fmt.Errorf("getting latest block: %w", err)
				}
				from = head.Number.Int64() - defaultEventWindow
				if from < 0 {
					from = 0
				}
			}
			q.FromBlock = big.NewInt(from)

			logs, err := fetchEvents(ctx, client, q)
			if err != nil {
				return err
			}
			if limit > 0 && len(logs) > limit {
				logs = logs[len(logs)-limit:]
			}
			printEvents(cmd, logs)
			return nil
		},
	}
	cmd.Flags().Int64Var(&from, "from", -1, "first block (default: latest-1000)")
	cmd.Flags().Int64Var(&to, "to", -1, "last block (default: latest)")
	cmd.Flags().StringArrayVar(&where, "where", nil, "indexed argument filter, name=value")
	cmd.Flags().IntVar(&limit, "count", 0, "show only the most recent N events")
	return cmd
}

// decodedLog is a token log with its decoded event, or the decode error.
type decodedLog struct {
	Raw   types.Log
	Event tangletoken.Events
	Err   error
}

func fetchEvents(ctx context.Context, p chain.Provider, q ethereum.FilterQuery) ([]decodedLog, error) {
	logs, err := p.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching logs: %w", err)
	}
	out := make([]decodedLog, len(logs))
	for i, l := range logs {
		ev, err := tangletoken.DecodeLog(l)
		out[i] = decodedLog{Raw: l, Event: ev, Err: err}
	}
	return out, nil
}

// eventTopics builds the topic filter for name (all token events when
// empty) with the --where constraints on its indexed arguments.
func eventTopics(name string, where []string) ([][]common.Hash, error) {
	if name == "" {
		if len(where) > 0 {
			return nil, fmt.Errorf("--where needs an event name")
		}
		return [][]common.Hash{tangletoken.EventTopics()}, nil
	}
	ev, ok := tangletoken.ABI().Events[name]
	if !ok {
		return nil, fmt.Errorf("event %q not found in ABI (known: %s)", name, strings.Join(tangletoken.ABI().EventNames(), ", "))
	}

	constraints := map[string]string{}
	for _, w := range where {
		k, v, ok := strings.Cut(w, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --where %q, expected name=value", w)
		}
		constraints[k] = v
	}

	var rules [][]any
	for _, p := range ev.Inputs.Params() {
		if !p.Indexed {
			continue
		}
		val, ok := constraints[p.Name]
		if !ok {
			rules = append(rules, nil)
			continue
		}
		delete(constraints, p.Name)
		v, err := contract.ParseArg(p.Type, val)
		if err != nil {
			return nil, fmt.Errorf("--where %s: %w", p.Name, err)
		}
		if b, ok := v.([32]byte); ok {
			v = common.Hash(b)
		}
		rules = append(rules, []any{v})
	}
	for k := range constraints {
		return nil, fmt.Errorf("%s has no indexed argument %q", ev.Signature(), k)
	}

	topics, err := ethabi.MakeTopics(rules...)
	if err != nil {
		return nil, fmt.Errorf("building topics: %w", err)
	}
	out := append([][]common.Hash{{ev.Topic()}}, topics...)
	for len(out) > 1 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func printEvents(cmd *cobra.Command, logs []decodedLog) {
	out := cmd.OutOrStdout()
	if len(logs) == 0 {
		fmt.Fprintln(out, ui.Info("No events found in range."))
		return
	}
	t := ui.NewTable([]ui.Column{
		{Title: "Block"},
		{Title: "Tx", Width: 14},
		{Title: "Event"},
		{Title: "Args"},
	})
	for _, l := range logs {
		name, args := eventSummary(l)
		t.AddRow(ui.Row{
			fmt.Sprintf("%d", l.Raw.BlockNumber),
			ui.TruncateAddr(l.Raw.TxHash.Hex()),
			name,
			args,
		})
	}
	fmt.Fprint(out, t.Render())
	fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d event(s)", len(logs))))
}

func eventSummary(l decodedLog) (string, string) {
	if l.Err != nil {
		return "?", l.Err.Error()
	}
	return l.Event.Descriptor().Name, summariseFields(tangletoken.Fields(l.Event))
}

// summariseFields renders fields as k=v with roles named.
func summariseFields(fields [][2]string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		v := f[1]
		if f[0] == "Role" || strings.HasSuffix(f[0], "AdminRole") {
			v = roleLabel(v)
		}
		parts[i] = f[0] + "=" + v
	}
	return strings.Join(parts, " ")
}

func roleLabel(hex string) string {
	name := tangletoken.RoleName(common.HexToHash(hex))
	if strings.HasPrefix(name, "0x") {
		return hex
	}
	return name
}
