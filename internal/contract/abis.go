package contract

import (
	"sort"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
)

// BuiltinKind describes a contract type whose ABI is compiled into the
// binary. Built-ins register themselves from init() in their own file.
type BuiltinKind struct {
	ID          string // machine key, e.g. "tangle-token"
	Name        string // human label
	Description string // one-line summary shown in `contract builtins`
	ABI         *abi.Contract
}

var builtinRegistry = map[string]BuiltinKind{}

// RegisterBuiltin adds a built-in ABI to the global registry.
func RegisterBuiltin(b BuiltinKind) {
	builtinRegistry[b.ID] = b
}

// GetBuiltin returns a built-in by ID. ok is false if not found.
func GetBuiltin(id string) (BuiltinKind, bool) {
	b, ok := builtinRegistry[id]
	return b, ok
}

// AllBuiltins returns all registered built-ins sorted by ID.
func AllBuiltins() []BuiltinKind {
	out := make([]BuiltinKind, 0, len(builtinRegistry))
	for _, b := range builtinRegistry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
