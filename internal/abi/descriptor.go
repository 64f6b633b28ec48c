package abi

import (
	"fmt"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Function describes a contract function: its inputs, outputs and selector.
type Function struct {
	Name            string
	StateMutability string
	Inputs          *Schema
	Outputs         *Schema

	sig      string
	selector Selector
}

// NewFunction compiles a function descriptor.
func NewFunction(name, mutability string, inputs, outputs []Param) (*Function, error) {
	in, err := NewSchema(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s inputs", name)
	}
	out, err := NewSchema(outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s outputs", name)
	}
	sig := fmt.Sprintf("%s(%s)", name, in.Types())
	return &Function{
		Name:            name,
		StateMutability: mutability,
		Inputs:          in,
		Outputs:         out,
		sig:             sig,
		selector:        SelectorOf(sig),
	}, nil
}

// Signature is the canonical signature, e.g. "transfer(address,uint256)".
func (f *Function) Signature() string { return f.sig }

// Selector is keccak256(Signature())[0:4].
func (f *Function) Selector() Selector { return f.selector }

// ReadOnly reports whether the function is view or pure.
func (f *Function) ReadOnly() bool {
	return f.StateMutability == "view" || f.StateMutability == "pure"
}

// Payable reports whether the function accepts value.
func (f *Function) Payable() bool { return f.StateMutability == "payable" }

// EncodeCall returns selector ‖ abi.encode(args).
func (f *Function) EncodeCall(args ...any) ([]byte, error) {
	body, err := f.Inputs.Encode(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", f.sig)
	}
	return append(f.selector.Bytes(), body...), nil
}

// DecodeCall checks the selector prefix and decodes the arguments into dst.
func (f *Function) DecodeCall(data []byte, dst any) error {
	if err := f.checkSelector(data); err != nil {
		return err
	}
	if err := f.Inputs.DecodeInto(data[4:], dst); err != nil {
		return &DecodeError{Name: f.sig, Err: err}
	}
	return nil
}

// UnpackCall checks the selector prefix and decodes the arguments positionally.
func (f *Function) UnpackCall(data []byte) ([]any, error) {
	if err := f.checkSelector(data); err != nil {
		return nil, err
	}
	values, err := f.Inputs.Decode(data[4:])
	if err != nil {
		return nil, &DecodeError{Name: f.sig, Err: err}
	}
	return values, nil
}

// EncodeReturns encodes output values the way the contract would return them.
func (f *Function) EncodeReturns(values ...any) ([]byte, error) {
	out, err := f.Outputs.Encode(values...)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s returns", f.sig)
	}
	return out, nil
}

// DecodeReturns decodes returned data into dst.
func (f *Function) DecodeReturns(data []byte, dst any) error {
	if err := f.Outputs.DecodeInto(data, dst); err != nil {
		return &DecodeError{Name: f.sig + " returns", Err: err}
	}
	return nil
}

// UnpackReturns decodes returned data positionally.
func (f *Function) UnpackReturns(data []byte) ([]any, error) {
	values, err := f.Outputs.Decode(data)
	if err != nil {
		return nil, &DecodeError{Name: f.sig + " returns", Err: err}
	}
	return values, nil
}

func (f *Function) checkSelector(data []byte) error {
	sel, err := ExtractSelector(data)
	if err != nil {
		return err
	}
	if sel != f.selector {
		return errors.Wrapf(ErrSelectorMismatch, "%s: want %s, got %s", f.Name, f.selector, sel)
	}
	return nil
}

// Error describes a custom Solidity error.
type Error struct {
	Name   string
	Inputs *Schema

	sig      string
	selector Selector
}

// NewError compiles a custom error descriptor.
func NewError(name string, inputs []Param) (*Error, error) {
	in, err := NewSchema(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "error %s inputs", name)
	}
	sig := fmt.Sprintf("%s(%s)", name, in.Types())
	return &Error{Name: name, Inputs: in, sig: sig, selector: SelectorOf(sig)}, nil
}

func (e *Error) Signature() string  { return e.sig }
func (e *Error) Selector() Selector { return e.selector }

// Encode returns selector ‖ abi.encode(args), the revert payload.
func (e *Error) Encode(args ...any) ([]byte, error) {
	body, err := e.Inputs.Encode(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", e.sig)
	}
	return append(e.selector.Bytes(), body...), nil
}

// Decode checks the selector prefix and decodes the error fields into dst.
func (e *Error) Decode(data []byte, dst any) error {
	sel, err := ExtractSelector(data)
	if err != nil {
		return err
	}
	if sel != e.selector {
		return errors.Wrapf(ErrSelectorMismatch, "%s: want %s, got %s", e.Name, e.selector, sel)
	}
	if err := e.Inputs.DecodeInto(data[4:], dst); err != nil {
		return &DecodeError{Name: e.sig, Err: err}
	}
	return nil
}

// Event describes a contract event. Indexed inputs live in topics 1..n,
// the rest in the log data.
type Event struct {
	Name      string
	Anonymous bool
	Inputs    *Schema

	sig   string
	topic common.Hash
}

// NewEvent compiles an event descriptor.
func NewEvent(name string, anonymous bool, inputs []Param) (*Event, error) {
	in, err := NewSchema(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "event %s inputs", name)
	}
	sig := fmt.Sprintf("%s(%s)", name, in.Types())
	return &Event{Name: name, Anonymous: anonymous, Inputs: in, sig: sig, topic: TopicOf(sig)}, nil
}

func (e *Event) Signature() string { return e.sig }

// Topic is keccak256(Signature()), stored as topic 0 of every log.
func (e *Event) Topic() common.Hash { return e.topic }

func (e *Event) indexed() ethabi.Arguments {
	var out ethabi.Arguments
	for _, a := range e.Inputs.args {
		if a.Indexed {
			out = append(out, a)
		}
	}
	return out
}

// EncodeLog builds a log from positional values, in declaration order.
func (e *Event) EncodeLog(values ...any) (types.Log, error) {
	args := e.Inputs.args
	if len(values) != len(args) {
		return types.Log{}, errors.Errorf("event %s: expected %d values, got %d", e.Name, len(args), len(values))
	}
	if err := checkValues(args, values); err != nil {
		return types.Log{}, errors.Wrapf(err, "event %s", e.Name)
	}
	var (
		rules [][]any
		data  []any
	)
	for i, a := range args {
		if a.Indexed {
			rules = append(rules, []any{topicValue(values[i])})
		} else {
			data = append(data, values[i])
		}
	}
	topics, err := ethabi.MakeTopics(rules...)
	if err != nil {
		return types.Log{}, errors.Wrapf(err, "event %s topics", e.Name)
	}
	body, err := args.NonIndexed().Pack(data...)
	if err != nil {
		return types.Log{}, errors.Wrapf(err, "event %s data", e.Name)
	}
	log := types.Log{Data: body}
	if !e.Anonymous {
		log.Topics = append(log.Topics, e.topic)
	}
	for _, t := range topics {
		log.Topics = append(log.Topics, t[0])
	}
	return log, nil
}

// DecodeLog decodes log into dst. Topic 0 must be the event's topic and the
// topic count must match the number of indexed inputs.
func (e *Event) DecodeLog(log types.Log, dst any) (err error) {
	defer recoverDecode(&err)
	topics := log.Topics
	if !e.Anonymous {
		if len(topics) == 0 || topics[0] != e.topic {
			return errors.Wrapf(ErrSelectorMismatch, "event %s: topic 0 mismatch", e.Name)
		}
		topics = topics[1:]
	}
	indexed := e.indexed()
	if len(topics) != len(indexed) {
		return &DecodeError{
			Name: e.sig,
			Err:  errors.Errorf("expected %d indexed topics, got %d", len(indexed), len(topics)),
		}
	}
	if err := e.Inputs.DecodeInto(log.Data, dst); err != nil {
		return &DecodeError{Name: e.sig, Err: err}
	}
	if len(indexed) > 0 {
		if err := ethabi.ParseTopics(dst, indexed, topics); err != nil {
			return &DecodeError{Name: e.sig, Err: err}
		}
	}
	return nil
}

// topicValue normalises fixed 32-byte values to common.Hash so MakeTopics
// stores them verbatim.
func topicValue(v any) any {
	if b, ok := v.([32]byte); ok {
		return common.Hash(b)
	}
	return v
}
