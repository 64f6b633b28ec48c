package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const (
	DefaultPollInterval   = 2 * time.Second
	DefaultReceiptTimeout = 2 * time.Minute
)

// ErrReverted is returned with the receipt of a mined transaction whose
// status is 0.
var ErrReverted = errors.New("transaction reverted")

// ErrNotMined means the receipt did not appear before the timeout.
var ErrNotMined = errors.New("transaction not mined")

var errPending = errors.New("receipt pending")

// ReceiptWaiter polls eth_getTransactionReceipt at a fixed interval.
type ReceiptWaiter struct {
	Interval time.Duration
	Timeout  time.Duration
}

func (w ReceiptWaiter) attempts() uint {
	if w.Interval <= 0 {
		return 1
	}
	return uint(w.Timeout/w.Interval) + 1
}

// Wait blocks until the receipt of hash is available, ctx is done, or the
// timeout elapses. Provider errors other than "not found" stop polling.
func (w ReceiptWaiter) Wait(ctx context.Context, p Provider, hash common.Hash, log *zerolog.Logger) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := retry.Do(
		func() error {
			r, err := p.TransactionReceipt(ctx, hash)
			if errors.Is(err, ethereum.NotFound) || (err == nil && r == nil) {
				return errPending
			}
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("getting receipt: %w", err))
			}
			receipt = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(w.attempts()),
		retry.Delay(w.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Uint("attempt", n+1).Str("hash", hash.Hex()).Msg("Waiting for receipt")
		}),
	)
	if errors.Is(err, errPending) {
		return nil, fmt.Errorf("%w: %s within %s", ErrNotMined, hash.Hex(), w.Timeout)
	}
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%w (hash: %s)", ErrReverted, hash.Hex())
	}
	return receipt, nil
}
