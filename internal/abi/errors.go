package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Sentinel errors. The typed errors below match them through errors.Is.
var (
	ErrUnknownSelector  = errors.New("unknown selector")
	ErrSelectorMismatch = errors.New("selector mismatch")
	ErrInvalidLog       = errors.New("invalid log")
	ErrShortInput       = errors.New("input shorter than selector")
	ErrOutOfRange       = errors.New("integer out of range")
)

// UnknownSelectorError is returned when a selector is not in a dispatch table.
type UnknownSelectorError struct {
	Interface string
	Selector  Selector
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("%s: unknown selector %s", e.Interface, e.Selector)
}

// Is reports whether target is ErrUnknownSelector.
func (e *UnknownSelectorError) Is(target error) bool {
	return target == ErrUnknownSelector
}

// InvalidLogError is returned when a log matches none of the known events.
// The raw log is kept for diagnostics.
type InvalidLogError struct {
	Interface string
	Log       types.Log
	Reason    string
}

func (e *InvalidLogError) Error() string {
	return fmt.Sprintf("%s: invalid log (%s) at %s tx %s index %d",
		e.Interface, e.Reason, e.Log.Address.Hex(), e.Log.TxHash.Hex(), e.Log.Index)
}

// Is reports whether target is ErrInvalidLog.
func (e *InvalidLogError) Is(target error) bool {
	return target == ErrInvalidLog
}

// DecodeError wraps a failure to decode bytes against a named schema.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RangeError reports an integer that is nil or does not fit its ABI type.
type RangeError struct {
	Param string
	Type  string
	Value *big.Int // nil when the value was missing
}

func (e *RangeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s %s: missing value", e.Type, e.Param)
	}
	return fmt.Sprintf("%s %s: value %s out of range", e.Type, e.Param, e.Value)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
