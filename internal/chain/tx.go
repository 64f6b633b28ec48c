package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// TxRequest is a transaction before nonce, gas and fees are filled in.
type TxRequest struct {
	From     common.Address
	To       *common.Address // nil creates a contract
	Data     []byte
	Value    *big.Int
	GasLimit uint64 // 0 means estimate
}

// CallMsg converts the request for eth_call and eth_estimateGas.
func (r TxRequest) CallMsg() ethereum.CallMsg {
	return ethereum.CallMsg{From: r.From, To: r.To, Data: r.Data, Value: r.Value, Gas: r.GasLimit}
}

// Transactor fills, signs and broadcasts EIP-1559 transactions and waits
// for their receipts.
type Transactor struct {
	provider Provider
	log      *zerolog.Logger
	waiter   ReceiptWaiter
}

// Option configures a Transactor.
type Option func(*Transactor)

// WithLogger sets the logger used for debug output.
func WithLogger(log *zerolog.Logger) Option {
	return func(t *Transactor) {
		if log != nil {
			t.log = log
		}
	}
}

// WithReceiptTimeout bounds how long Wait polls for a receipt.
func WithReceiptTimeout(d time.Duration) Option {
	return func(t *Transactor) {
		if d > 0 {
			t.waiter.Timeout = d
		}
	}
}

// WithPollInterval sets the delay between receipt polls.
func WithPollInterval(d time.Duration) Option {
	return func(t *Transactor) {
		if d > 0 {
			t.waiter.Interval = d
		}
	}
}

// NewTransactor binds a Transactor to p.
func NewTransactor(p Provider, opts ...Option) *Transactor {
	nop := zerolog.Nop()
	t := &Transactor{
		provider: p,
		log:      &nop,
		waiter:   ReceiptWaiter{Interval: DefaultPollInterval, Timeout: DefaultReceiptTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Provider returns the underlying provider.
func (t *Transactor) Provider() Provider { return t.provider }

// Build fills chain ID, pending nonce, gas limit and fee caps for req.
// Estimation failures are returned as-is so revert data stays attached.
func (t *Transactor) Build(ctx context.Context, req TxRequest) (*types.Transaction, *big.Int, error) {
	chainID, err := t.provider.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("getting chain id: %w", err)
	}
	nonce, err := t.provider.PendingNonceAt(ctx, req.From)
	if err != nil {
		return nil, nil, fmt.Errorf("getting nonce: %w", err)
	}
	gas := req.GasLimit
	if gas == 0 {
		gas, err = t.provider.EstimateGas(ctx, req.CallMsg())
		if err != nil {
			return nil, nil, err
		}
	}
	tip, err := t.provider.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("getting tip cap: %w", err)
	}
	head, err := t.provider.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("getting latest header: %w", err)
	}
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: FeeCap(head.BaseFee, tip),
		Gas:       gas,
		To:        req.To,
		Value:     value,
		Data:      req.Data,
	})
	t.log.Debug().
		Uint64("nonce", nonce).
		Uint64("gas", gas).
		Str("tip", tip.String()).
		Str("feeCap", tx.GasFeeCap().String()).
		Msg("Built dynamic fee transaction")
	return tx, chainID, nil
}

// Send builds, signs and broadcasts req from signer's account.
func (t *Transactor) Send(ctx context.Context, signer TxSigner, req TxRequest) (*types.Transaction, error) {
	req.From = signer.Address()
	tx, chainID, err := t.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	if err := t.provider.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("broadcasting transaction: %w", err)
	}
	t.log.Debug().Str("hash", signed.Hash().Hex()).Str("from", req.From.Hex()).Msg("Transaction sent")
	return signed, nil
}

// Wait polls for the receipt of hash.
func (t *Transactor) Wait(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return t.waiter.Wait(ctx, t.provider, hash, t.log)
}

// FeeCap returns 2*baseFee + tip. Chains without a base fee get 2*tip.
func FeeCap(baseFee, tip *big.Int) *big.Int {
	if baseFee == nil {
		return new(big.Int).Mul(tip, big.NewInt(2))
	}
	fc := new(big.Int).Mul(baseFee, big.NewInt(2))
	return fc.Add(fc, tip)
}
