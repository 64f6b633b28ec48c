package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/ethereum/go-ethereum/common"
)

// Result is one decoded return value, rendered for display.
type Result struct {
	Name  string
	Type  string
	Value string
}

// Prepare resolves funcName on the TangleToken ABI, parses args against its
// inputs and returns the typed call.
func Prepare(funcName string, args []string) (tangletoken.Calls, error) {
	fn, ok := tangletoken.ABI().Functions[funcName]
	if !ok {
		return nil, fmt.Errorf("function %q not found in ABI", funcName)
	}
	values, err := ParseArgs(fn.Inputs.Params(), args)
	if err != nil {
		return nil, err
	}
	calldata, err := fn.EncodeCall(values...)
	if err != nil {
		return nil, fmt.Errorf("encoding call: %w", err)
	}
	return tangletoken.DecodeCall(calldata)
}

// Caller calls read-only (view/pure) token functions by name.
type Caller struct {
	token *tangletoken.Instance
	from  common.Address
	block *big.Int
}

// NewCaller creates a Caller for token.
func NewCaller(token *tangletoken.Instance) *Caller {
	return &Caller{token: token}
}

// From sets the eth_call sender.
func (c *Caller) From(addr common.Address) *Caller {
	c.from = addr
	return c
}

// AtBlock pins the call to a block. Nil means latest.
func (c *Caller) AtBlock(n *big.Int) *Caller {
	c.block = n
	return c
}

// Call calls a read function and returns its decoded results.
func (c *Caller) Call(ctx context.Context, funcName string, args ...string) ([]Result, error) {
	call, err := Prepare(funcName, args)
	if err != nil {
		return nil, err
	}
	fn := call.Descriptor()
	if !fn.ReadOnly() {
		return nil, fmt.Errorf("function %q is not a read function (stateMutability: %s)", funcName, fn.StateMutability)
	}

	values, err := c.token.Bind(call).From(c.from).AtBlock(c.block).Call(ctx)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", fn.Signature(), err)
	}
	return Results(fn.Outputs.Params(), values), nil
}

// Results pairs decoded values with their output parameters.
func Results(params []abi.Param, values []any) []Result {
	out := make([]Result, len(values))
	for i, v := range values {
		r := Result{Value: tangletoken.FormatValue(v)}
		if i < len(params) {
			r.Name, r.Type = params[i].Name, params[i].CanonicalType()
		}
		out[i] = r
	}
	return out
}
