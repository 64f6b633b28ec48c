package cmd

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newWatchCmd(rt *runtime) *cobra.Command {
	var (
		name     string
		where    []string
		interval time.Duration
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream TangleToken events as new blocks arrive",
		Long: `Poll the node for new blocks and stream decoded token events into a
live view. Works over plain HTTP RPC, no subscriptions needed.

Keyboard controls:
  up/down, j/k   move through events
  enter          show the selected event's arguments
  q              quit

Use --plain to print one line per event instead (for pipes and logs).

Examples:
  tanglectl watch
  tanglectl watch --event Transfer --where from=0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
  tanglectl watch --plain --interval 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			p := &eventPoller{
				provider: client,
				query:    ethereum.FilterQuery{Addresses: []common.Address{token.Address()}, Topics: topics},
				interval: interval,
				log:      rt.log,
			}

			if plain {
				return p.run(ctx, plainSink(cmd.OutOrStdout()))
			}

			m := ui.NewEventStream(token.Address().Hex(), rt.cfg.Network)
			prog := tea.NewProgram(m, tea.WithInput(rt.stdin), tea.WithOutput(cmd.OutOrStdout()), tea.WithContext(ctx))
			return stream(ctx, p, func() error {
				_, err := prog.Run()
				return err
			}, func(msg tea.Msg) { prog.Send(msg) })
		},
	}
	cmd.Flags().StringVar(&name, "event", "", "only stream this event")
	cmd.Flags().StringArrayVar(&where, "where", nil, "indexed argument filter, name=value (needs --event)")
	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "poll interval")
	cmd.Flags().BoolVar(&plain, "plain", false, "print events as lines instead of the live view")
	return cmd
}

// eventPoller walks new blocks and emits decoded token logs as
// ui.EventMsg values, with a ui.StatusMsg per poll.
type eventPoller struct {
	provider chain.Provider
	query    ethereum.FilterQuery
	interval time.Duration
	log      *zerolog.Logger
}

// stream runs the poller behind view and stops it once view returns, so
// quitting the live view does not leave the poller ticking.
func stream(ctx context.Context, p *eventPoller, view func() error, send func(tea.Msg)) error {
	pollCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.run(pollCtx, send) //nolint:errcheck
	}()

	err := view()
	stop()
	<-done
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// run anchors at the current head so history is not replayed, then polls
// until ctx is cancelled.
func (p *eventPoller) run(ctx context.Context, emit func(tea.Msg)) error {
	head, err := p.provider.HeaderByNumber(ctx, nil)
	if err != nil {
		emit(ui.StatusMsg{Err: fmt.Errorf("getting starting block: %w", err)})
		return err
	}
	last := head.Number.Uint64()
	emit(ui.StatusMsg{Block: last})

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			last = p.poll(ctx, last, emit)
		}
	}
}

// poll fetches logs in (last, head] and returns the new high-water mark.
// On error the mark is kept so the range is retried.
func (p *eventPoller) poll(ctx context.Context, last uint64, emit func(tea.Msg)) uint64 {
	head, err := p.provider.HeaderByNumber(ctx, nil)
	if err != nil {
		emit(ui.StatusMsg{Block: last, Err: err})
		return last
	}
	latest := head.Number.Uint64()
	if latest <= last {
		return last
	}

	emit(ui.StatusMsg{Block: latest, Fetching: true})
	q := p.query
	q.FromBlock = new(big.Int).SetUint64(last + 1)
	q.ToBlock = new(big.Int).SetUint64(latest)
	logs, err := p.provider.FilterLogs(ctx, q)
	if err != nil {
		emit(ui.StatusMsg{Block: last, Err: err})
		return last
	}

	for _, l := range logs {
		ev, err := tangletoken.DecodeLog(l)
		if err != nil {
			p.log.Debug().Err(err).Str("tx", l.TxHash.Hex()).Uint("index", l.Index).Msg("Skipping undecodable log")
			continue
		}
		emit(ui.EventMsg{
			Name:     ev.Descriptor().Name,
			Fields:   tangletoken.Fields(ev),
			Block:    l.BlockNumber,
			TxHash:   l.TxHash.Hex(),
			LogIndex: l.Index,
		})
	}
	p.log.Debug().Uint64("from", last+1).Uint64("to", latest).Int("logs", len(logs)).Msg("Polled token logs")
	emit(ui.StatusMsg{Block: latest})
	return latest
}

// plainSink prints events one per line and errors as warnings.
func plainSink(w io.Writer) func(tea.Msg) {
	return func(msg tea.Msg) {
		switch m := msg.(type) {
		case ui.EventMsg:
			fmt.Fprintf(w, "%d  %s  %s  %s\n", m.Block, ui.TruncateAddr(m.TxHash), m.Name, summariseFields(m.Fields))
		case ui.StatusMsg:
			if m.Err != nil {
				fmt.Fprintln(w, ui.Warn(m.Err.Error()))
			}
		}
	}
}
