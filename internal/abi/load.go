package abi

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// Entry kinds in a JSON ABI.
const (
	KindFunction    = "function"
	KindConstructor = "constructor"
	KindError       = "error"
	KindEvent       = "event"
	KindFallback    = "fallback"
	KindReceive     = "receive"
)

// JSONEntry is one element of a JSON ABI array.
type JSONEntry struct {
	Type            string  `json:"type"`
	Name            string  `json:"name,omitempty"`
	Inputs          []Param `json:"inputs,omitempty"`
	Outputs         []Param `json:"outputs,omitempty"`
	StateMutability string  `json:"stateMutability,omitempty"`
	Anonymous       bool    `json:"anonymous,omitempty"`
}

// Contract is a compiled JSON ABI, indexed by name.
type Contract struct {
	Constructor *Schema
	Functions   map[string]*Function
	Errors      map[string]*Error
	Events      map[string]*Event
	Entries     []JSONEntry
}

// Load parses a raw JSON ABI array, or a Hardhat/Foundry artifact object
// with an "abi" field.
func Load(data []byte) (*Contract, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty ABI")
	}
	var entries []JSONEntry
	if data[0] == '{' {
		var artifact struct {
			ABI []JSONEntry `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, errors.Wrap(err, "parse artifact")
		}
		if artifact.ABI == nil {
			return nil, errors.New("artifact has no \"abi\" field")
		}
		entries = artifact.ABI
	} else if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "parse ABI")
	}
	return Compile(entries)
}

// Compile builds descriptors from parsed entries. Overloaded names are not
// supported and fail.
func Compile(entries []JSONEntry) (*Contract, error) {
	c := &Contract{
		Functions: make(map[string]*Function),
		Errors:    make(map[string]*Error),
		Events:    make(map[string]*Event),
		Entries:   entries,
	}
	for _, e := range entries {
		switch e.Type {
		case KindFunction, "":
			if _, dup := c.Functions[e.Name]; dup {
				return nil, errors.Errorf("overloaded function %s", e.Name)
			}
			fn, err := NewFunction(e.Name, e.StateMutability, e.Inputs, e.Outputs)
			if err != nil {
				return nil, err
			}
			c.Functions[e.Name] = fn
		case KindConstructor:
			s, err := NewSchema(e.Inputs)
			if err != nil {
				return nil, errors.Wrap(err, "constructor")
			}
			c.Constructor = s
		case KindError:
			if _, dup := c.Errors[e.Name]; dup {
				return nil, errors.Errorf("overloaded error %s", e.Name)
			}
			er, err := NewError(e.Name, e.Inputs)
			if err != nil {
				return nil, err
			}
			c.Errors[e.Name] = er
		case KindEvent:
			if _, dup := c.Events[e.Name]; dup {
				return nil, errors.Errorf("overloaded event %s", e.Name)
			}
			ev, err := NewEvent(e.Name, e.Anonymous, e.Inputs)
			if err != nil {
				return nil, err
			}
			c.Events[e.Name] = ev
		case KindFallback, KindReceive:
		default:
			return nil, errors.Errorf("unknown ABI entry type %q", e.Type)
		}
	}
	return c, nil
}

// FunctionNames returns function names sorted alphabetically.
func (c *Contract) FunctionNames() []string {
	return sortedKeys(c.Functions)
}

// ErrorNames returns custom error names sorted alphabetically.
func (c *Contract) ErrorNames() []string {
	return sortedKeys(c.Errors)
}

// EventNames returns event names sorted alphabetically.
func (c *Contract) EventNames() []string {
	return sortedKeys(c.Events)
}

// FunctionBySelector does a linear lookup over all functions.
func (c *Contract) FunctionBySelector(sel Selector) (*Function, bool) {
	for _, fn := range c.Functions {
		if fn.Selector() == sel {
			return fn, true
		}
	}
	return nil, false
}

// ErrorBySelector does a linear lookup over all custom errors.
func (c *Contract) ErrorBySelector(sel Selector) (*Error, bool) {
	for _, e := range c.Errors {
		if e.Selector() == sel {
			return e, true
		}
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
