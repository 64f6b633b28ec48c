package tangletoken

import (
	"context"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// ErrEmptyResult is returned when a call that declares outputs returns no
// data, usually because there is no contract at the address.
var ErrEmptyResult = errors.New("empty call result")

// CallBuilder prepares one function call against an Instance. It can be
// run as a read-only eth_call, estimated, or sent as a transaction. R is
// the decoded return type.
type CallBuilder[R any] struct {
	token *Instance
	call  Calls
	from  common.Address
	block *big.Int
	value *big.Int
	gas   uint64
}

func newCall[R any](t *Instance, c Calls) *CallBuilder[R] {
	return &CallBuilder[R]{token: t, call: c}
}

// Bind wraps an already decoded call. Return values come back positionally,
// in output order.
func (t *Instance) Bind(c Calls) *CallBuilder[[]any] {
	return newCall[[]any](t, c)
}

// From sets the caller for Call and Estimate. Send always uses the signer.
func (b *CallBuilder[R]) From(addr common.Address) *CallBuilder[R] {
	b.from = addr
	return b
}

// AtBlock runs Call against a historical block. Nil means latest.
func (b *CallBuilder[R]) AtBlock(number *big.Int) *CallBuilder[R] {
	b.block = number
	return b
}

// Value attaches wei to the call.
func (b *CallBuilder[R]) Value(wei *big.Int) *CallBuilder[R] {
	b.value = wei
	return b
}

// GasLimit fixes the gas limit instead of estimating it.
func (b *CallBuilder[R]) GasLimit(gas uint64) *CallBuilder[R] {
	b.gas = gas
	return b
}

// Request returns the typed call being built.
func (b *CallBuilder[R]) Request() Calls { return b.call }

// Calldata returns selector ‖ encoded arguments.
func (b *CallBuilder[R]) Calldata() ([]byte, error) {
	return EncodeCall(b.call)
}

func (b *CallBuilder[R]) msg() (ethereum.CallMsg, error) {
	data, err := b.Calldata()
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	to := b.token.address
	return ethereum.CallMsg{From: b.from, To: &to, Data: data, Value: b.value, Gas: b.gas}, nil
}

// Call executes the function with eth_call and decodes its return values.
// A revert comes back as a *RevertError.
func (b *CallBuilder[R]) Call(ctx context.Context) (R, error) {
	var out R
	msg, err := b.msg()
	if err != nil {
		return out, err
	}
	fn := b.call.Descriptor()
	b.token.log.Debug().Str("fn", fn.Signature()).Str("to", b.token.address.Hex()).Msg("eth_call")
	raw, err := b.token.provider.CallContract(ctx, msg, b.block)
	if err != nil {
		return out, asRevert(err)
	}
	if len(raw) == 0 && fn.Outputs.Len() > 0 {
		return out, errors.Wrapf(ErrEmptyResult, "%s at %s", fn.Name, b.token.address.Hex())
	}
	if values, ok := any(&out).(*[]any); ok {
		*values, err = fn.UnpackReturns(raw)
		return out, err
	}
	if err := fn.DecodeReturns(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Estimate returns the gas the call would use.
func (b *CallBuilder[R]) Estimate(ctx context.Context) (uint64, error) {
	msg, err := b.msg()
	if err != nil {
		return 0, err
	}
	gas, err := b.token.provider.EstimateGas(ctx, msg)
	if err != nil {
		return 0, asRevert(err)
	}
	return gas, nil
}

// Send signs and broadcasts the call as an EIP-1559 transaction.
func (b *CallBuilder[R]) Send(ctx context.Context, signer chain.TxSigner) (*types.Transaction, error) {
	data, err := b.Calldata()
	if err != nil {
		return nil, err
	}
	to := b.token.address
	tx, err := b.token.tx.Send(ctx, signer, chain.TxRequest{
		To:       &to,
		Data:     data,
		Value:    b.value,
		GasLimit: b.gas,
	})
	if err != nil {
		return nil, asRevert(err)
	}
	return tx, nil
}

// SendAndWait sends the call and waits for its receipt. When the
// transaction reverts on chain the call is replayed at the receipt's block
// to recover the revert reason.
func (b *CallBuilder[R]) SendAndWait(ctx context.Context, signer chain.TxSigner) (*types.Receipt, error) {
	tx, err := b.Send(ctx, signer)
	if err != nil {
		return nil, err
	}
	receipt, err := b.token.tx.Wait(ctx, tx.Hash())
	if err != nil && errors.Is(err, chain.ErrReverted) && receipt != nil {
		if reason := b.replay(ctx, signer.Address(), receipt.BlockNumber); reason != nil {
			reason.Err = err
			return receipt, reason
		}
	}
	return receipt, err
}

func (b *CallBuilder[R]) replay(ctx context.Context, from common.Address, block *big.Int) *RevertError {
	msg, err := b.msg()
	if err != nil {
		return nil
	}
	msg.From = from
	_, err = b.token.provider.CallContract(ctx, msg, block)
	var rerr *RevertError
	if errors.As(asRevert(err), &rerr) {
		return rerr
	}
	return nil
}

// Log is a decoded event together with the raw log it came from.
type Log[E Events] struct {
	Event E
	Raw   types.Log
}

// EventFilter queries logs of one event type emitted by an Instance.
type EventFilter[E Events] struct {
	token *Instance
	rules [][]any
	from  *big.Int
	to    *big.Int
}

func newFilter[E Events](t *Instance, rules ...[]any) *EventFilter[E] {
	return &EventFilter[E]{token: t, rules: rules, from: new(big.Int)}
}

// FromBlock sets the first block searched. The default is genesis.
func (f *EventFilter[E]) FromBlock(n uint64) *EventFilter[E] {
	f.from = new(big.Int).SetUint64(n)
	return f
}

// ToBlock sets the last block searched. The default is the latest block.
func (f *EventFilter[E]) ToBlock(n uint64) *EventFilter[E] {
	f.to = new(big.Int).SetUint64(n)
	return f
}

// FilterQuery builds the eth_getLogs query: topic 0 is the event topic,
// followed by the indexed-argument alternatives.
func (f *EventFilter[E]) FilterQuery() (ethereum.FilterQuery, error) {
	var zero E
	topics, err := ethabi.MakeTopics(f.rules...)
	if err != nil {
		return ethereum.FilterQuery{}, errors.Wrap(err, "building topic filter")
	}
	all := append([][]common.Hash{{zero.Descriptor().Topic()}}, topics...)
	for len(all) > 1 && len(all[len(all)-1]) == 0 {
		all = all[:len(all)-1]
	}
	return ethereum.FilterQuery{
		Addresses: []common.Address{f.token.address},
		FromBlock: f.from,
		ToBlock:   f.to,
		Topics:    all,
	}, nil
}

// Query fetches and decodes matching logs in chain order.
func (f *EventFilter[E]) Query(ctx context.Context) ([]Log[E], error) {
	q, err := f.FilterQuery()
	if err != nil {
		return nil, err
	}
	var zero E
	d := zero.Descriptor()
	logs, err := f.token.provider.FilterLogs(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "filtering %s logs", d.Name)
	}
	f.token.log.Debug().Str("event", d.Name).Int("logs", len(logs)).Msg("eth_getLogs")
	out := make([]Log[E], 0, len(logs))
	for _, l := range logs {
		var e E
		if err := d.DecodeLog(l, &e); err != nil {
			return nil, &abi.InvalidLogError{Interface: InterfaceName, Log: l, Reason: err.Error()}
		}
		out = append(out, Log[E]{Event: e, Raw: l})
	}
	return out, nil
}
