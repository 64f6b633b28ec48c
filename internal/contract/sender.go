package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/ethereum/go-ethereum/core/types"
)

// Sender sends state-changing token functions by name.
type Sender struct {
	token    *tangletoken.Instance
	signer   chain.TxSigner
	gasLimit uint64
	value    *big.Int
}

// NewSender creates a Sender that signs with signer.
func NewSender(token *tangletoken.Instance, signer chain.TxSigner) *Sender {
	return &Sender{token: token, signer: signer}
}

// GasLimit fixes the gas limit. Zero estimates.
func (s *Sender) GasLimit(gas uint64) *Sender {
	s.gasLimit = gas
	return s
}

// Value attaches wei to payable calls.
func (s *Sender) Value(wei *big.Int) *Sender {
	s.value = wei
	return s
}

// Check reports whether call can be sent: it must change state, and a
// value may only be attached to payable functions.
func (s *Sender) Check(call tangletoken.Calls) error {
	fn := call.Descriptor()
	if fn.ReadOnly() {
		return fmt.Errorf("function %q is not a write function", fn.Name)
	}
	if s.value != nil && s.value.Sign() > 0 && !fn.Payable() {
		return fmt.Errorf("function %q is not payable", fn.Name)
	}
	return nil
}

func (s *Sender) bind(call tangletoken.Calls) (*tangletoken.CallBuilder[[]any], error) {
	if err := s.Check(call); err != nil {
		return nil, err
	}
	return s.token.Bind(call).GasLimit(s.gasLimit).Value(s.value), nil
}

// Send signs and broadcasts funcName with string args and returns the
// transaction.
func (s *Sender) Send(ctx context.Context, funcName string, args ...string) (*types.Transaction, error) {
	call, err := Prepare(funcName, args)
	if err != nil {
		return nil, err
	}
	return s.SendCall(ctx, call)
}

// SendCall signs and broadcasts a typed call.
func (s *Sender) SendCall(ctx context.Context, call tangletoken.Calls) (*types.Transaction, error) {
	b, err := s.bind(call)
	if err != nil {
		return nil, err
	}
	tx, err := b.Send(ctx, s.signer)
	if err != nil {
		return nil, fmt.Errorf("sending %s: %w", call.Descriptor().Name, err)
	}
	return tx, nil
}

// SendAndWait sends funcName with string args and waits for its receipt.
func (s *Sender) SendAndWait(ctx context.Context, funcName string, args ...string) (*types.Receipt, error) {
	call, err := Prepare(funcName, args)
	if err != nil {
		return nil, err
	}
	return s.SendCallAndWait(ctx, call)
}

// SendCallAndWait sends a typed call and waits for its receipt. A reverted
// receipt is returned together with the error.
func (s *Sender) SendCallAndWait(ctx context.Context, call tangletoken.Calls) (*types.Receipt, error) {
	b, err := s.bind(call)
	if err != nil {
		return nil, err
	}
	receipt, err := b.SendAndWait(ctx, s.signer)
	if err != nil {
		return receipt, fmt.Errorf("sending %s: %w", call.Descriptor().Name, err)
	}
	return receipt, nil
}
