package abi

import (
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Param describes one ABI parameter as it appears in a JSON ABI.
type Param struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	InternalType string  `json:"internalType,omitempty"`
	Indexed      bool    `json:"indexed,omitempty"`
	Components   []Param `json:"components,omitempty"`
}

// CanonicalType returns the type as it appears in a signature, expanding
// tuples into their component lists: "(uint48,uint208)[]".
func (p Param) CanonicalType() string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = c.CanonicalType()
	}
	return "(" + strings.Join(parts, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

func (p Param) marshaling() ethabi.ArgumentMarshaling {
	m := ethabi.ArgumentMarshaling{
		Name:         p.Name,
		Type:         p.Type,
		InternalType: p.InternalType,
		Indexed:      p.Indexed,
	}
	for _, c := range p.Components {
		m.Components = append(m.Components, c.marshaling())
	}
	return m
}

// Schema is an ordered list of parameters compiled into go-ethereum
// Arguments. It is the single codec every call, return, error and event
// type goes through.
type Schema struct {
	params []Param
	args   ethabi.Arguments
}

// NewSchema compiles params. It fails on unknown or malformed types.
func NewSchema(params []Param) (*Schema, error) {
	s := &Schema{params: append([]Param(nil), params...)}
	for i, p := range params {
		var comps []ethabi.ArgumentMarshaling
		for _, c := range p.Components {
			comps = append(comps, c.marshaling())
		}
		typ, err := ethabi.NewType(p.Type, p.InternalType, comps)
		if err != nil {
			return nil, errors.Wrapf(err, "param %d (%s %s)", i, p.Type, p.Name)
		}
		s.args = append(s.args, ethabi.Argument{Name: p.Name, Type: typ, Indexed: p.Indexed})
	}
	return s, nil
}

// Params returns a copy of the schema's parameters.
func (s *Schema) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Len is the number of parameters.
func (s *Schema) Len() int { return len(s.params) }

// Types returns the canonical, comma separated type list used in signatures.
func (s *Schema) Types() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.CanonicalType()
	}
	return strings.Join(parts, ",")
}

// Arguments exposes the compiled go-ethereum arguments.
func (s *Schema) Arguments() ethabi.Arguments { return s.args }

// Encode packs values positionally. Ill-typed Go values fail, and so do
// nil or out-of-range integers (*RangeError).
func (s *Schema) Encode(values ...any) (out []byte, err error) {
	if len(values) != len(s.args) {
		return nil, errors.Errorf("expected %d values, got %d", len(s.args), len(values))
	}
	if err := checkValues(s.args, values); err != nil {
		return nil, err
	}
	defer recoverDecode(&err)
	out, err = s.args.Pack(values...)
	if err != nil {
		return nil, errors.Wrap(err, "pack")
	}
	return out, nil
}

// Decode unpacks data into positional Go values.
func (s *Schema) Decode(data []byte) (values []any, err error) {
	defer recoverDecode(&err)
	values, err = s.args.Unpack(data)
	if err != nil {
		return nil, err
	}
	if err := checkValues(s.args.NonIndexed(), values); err != nil {
		return nil, err
	}
	return values, nil
}

// DecodeInto unpacks data into dst, a pointer to a struct whose exported
// fields are the camel-cased parameter names (or carry an `abi` tag), or a
// pointer to a single value when the schema has one parameter.
func (s *Schema) DecodeInto(data []byte, dst any) (err error) {
	defer recoverDecode(&err)
	values, err := s.args.Unpack(data)
	if err != nil {
		return err
	}
	if err := checkValues(s.args.NonIndexed(), values); err != nil {
		return err
	}
	return s.args.Copy(dst, values)
}

// recoverDecode turns a panic raised while walking malformed input into an
// error. The codec must never crash the caller on bad bytes or values.
func recoverDecode(err *error) {
	if r := recover(); r != nil {
		*err = errors.Errorf("malformed input: %v", r)
	}
}
