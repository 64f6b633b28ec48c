// Package tangletoken holds typed bindings for the TangleToken contract:
// one Go type per function, custom error and event, selector dispatch over
// them, and an Instance that calls, sends and filters against a deployed
// token.
package tangletoken

import (
	_ "embed"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
)

// InterfaceName identifies the token in dispatch errors.
const InterfaceName = "TangleToken"

//go:embed TangleToken.abi.json
var abiJSON []byte

var tokenABI = mustLoadABI()

func mustLoadABI() *abi.Contract {
	c, err := abi.Load(abiJSON)
	if err != nil {
		panic("tangletoken: embedded ABI: " + err.Error())
	}
	return c
}

// ABI returns the compiled token interface.
func ABI() *abi.Contract { return tokenABI }

// ABIJSON returns a copy of the embedded JSON ABI.
func ABIJSON() []byte {
	return append([]byte(nil), abiJSON...)
}

func function(name string) *abi.Function {
	fn, ok := tokenABI.Functions[name]
	if !ok {
		panic("tangletoken: no function " + name)
	}
	return fn
}

func customError(name string) *abi.Error {
	e, ok := tokenABI.Errors[name]
	if !ok {
		panic("tangletoken: no error " + name)
	}
	return e
}

func event(name string) *abi.Event {
	ev, ok := tokenABI.Events[name]
	if !ok {
		panic("tangletoken: no event " + name)
	}
	return ev
}
