package tangletoken

import (
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Role identifiers used by the token's access control.
var (
	DefaultAdminRole [32]byte
	MinterRole       = RoleID("MINTER_ROLE")
	UpgraderRole     = RoleID("UPGRADER_ROLE")
)

// RoleID hashes a role name the way the contract derives its constants.
func RoleID(name string) [32]byte {
	return common.BytesToHash(abi.Keccak256([]byte(name)))
}

// ParseRole accepts "admin", "minter", "upgrader", a constant name such as
// MINTER_ROLE, or a 0x-prefixed 32-byte hex value.
func ParseRole(s string) ([32]byte, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN", "DEFAULT_ADMIN_ROLE":
		return DefaultAdminRole, nil
	case "MINTER", "MINTER_ROLE":
		return MinterRole, nil
	case "UPGRADER", "UPGRADER_ROLE":
		return UpgraderRole, nil
	}
	if strings.HasPrefix(s, "0x") && len(s) == 66 {
		h := common.HexToHash(s)
		if h.Hex() == strings.ToLower(s) {
			return h, nil
		}
	}
	return [32]byte{}, errors.Errorf("unknown role %q", s)
}

// RoleName is the inverse of ParseRole for the known roles. Anything else
// is rendered as hex.
func RoleName(role [32]byte) string {
	switch role {
	case DefaultAdminRole:
		return "DEFAULT_ADMIN_ROLE"
	case MinterRole:
		return "MINTER_ROLE"
	case UpgraderRole:
		return "UPGRADER_ROLE"
	}
	return common.Hash(role).Hex()
}
