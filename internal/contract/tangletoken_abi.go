package contract

import "github.com/Mohsinsiddi/tanglectl/internal/tangletoken"

// KindTangleToken is the built-in ID of the TangleToken ABI.
const KindTangleToken = "tangle-token"

func init() {
	RegisterBuiltin(BuiltinKind{
		ID:          KindTangleToken,
		Name:        "TangleToken (UUPS ERC-20 + Votes + Permit)",
		Description: "Upgradeable ERC-20 with burn, access-controlled mint, EIP-2612 permit and ERC-5805 voting",
		ABI:         tangletoken.ABI(),
	})
}
