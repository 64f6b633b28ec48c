package contract

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
)

// VerifyTangleToken checks that entries declare every function, custom
// error and event of the TangleToken interface with the same signature.
// Extra entries are allowed.
func VerifyTangleToken(entries []abi.JSONEntry) error {
	c, err := abi.Compile(entries)
	if err != nil {
		return fmt.Errorf("compiling ABI: %w", err)
	}
	want := tangletoken.ABI()

	var missing []string
	for _, name := range want.FunctionNames() {
		fn, ok := c.Functions[name]
		if !ok || fn.Selector() != want.Functions[name].Selector() {
			missing = append(missing, want.Functions[name].Signature())
		}
	}
	for _, name := range want.ErrorNames() {
		e, ok := c.Errors[name]
		if !ok || e.Selector() != want.Errors[name].Selector() {
			missing = append(missing, "error "+want.Errors[name].Signature())
		}
	}
	for _, name := range want.EventNames() {
		ev, ok := c.Events[name]
		if !ok || ev.Topic() != want.Events[name].Topic() {
			missing = append(missing, "event "+want.Events[name].Signature())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("ABI is not a TangleToken, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
