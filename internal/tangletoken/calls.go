package tangletoken

import (
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ClockModeCall is the argument list of CLOCK_MODE().
type ClockModeCall struct{}

// ClockModeReturn holds the ERC-6372 clock description.
type ClockModeReturn struct {
	Mode string
}

func (ClockModeCall) Descriptor() *abi.Function { return function("CLOCK_MODE") }
func (ClockModeCall) args() []any { return nil }

// DefaultAdminRoleCall is the argument list of DEFAULT_ADMIN_ROLE().
type DefaultAdminRoleCall struct{}

// DefaultAdminRoleReturn holds the admin role of every role by default.
type DefaultAdminRoleReturn struct {
	Role [32]byte
}

func (DefaultAdminRoleCall) Descriptor() *abi.Function { return function("DEFAULT_ADMIN_ROLE") }
func (DefaultAdminRoleCall) args() []any { return nil }

// DomainSeparatorCall is the argument list of DOMAIN_SEPARATOR().
type DomainSeparatorCall struct{}

// DomainSeparatorReturn holds the EIP-712 domain separator.
type DomainSeparatorReturn struct {
	Separator [32]byte
}

func (DomainSeparatorCall) Descriptor() *abi.Function { return function("DOMAIN_SEPARATOR") }
func (DomainSeparatorCall) args() []any { return nil }

// MaxSupplyCall is the argument list of MAX_SUPPLY().
type MaxSupplyCall struct{}

// MaxSupplyReturn holds the supply cap.
type MaxSupplyReturn struct {
	Supply *big.Int
}

func (MaxSupplyCall) Descriptor() *abi.Function { return function("MAX_SUPPLY") }
func (MaxSupplyCall) args() []any { return nil }

// MinterRoleCall is the argument list of MINTER_ROLE().
type MinterRoleCall struct{}

// MinterRoleReturn holds the role allowed to mint.
type MinterRoleReturn struct {
	Role [32]byte
}

func (MinterRoleCall) Descriptor() *abi.Function { return function("MINTER_ROLE") }
func (MinterRoleCall) args() []any { return nil }

// UpgraderRoleCall is the argument list of UPGRADER_ROLE().
type UpgraderRoleCall struct{}

// UpgraderRoleReturn holds the role allowed to upgrade the implementation.
type UpgraderRoleReturn struct {
	Role [32]byte
}

func (UpgraderRoleCall) Descriptor() *abi.Function { return function("UPGRADER_ROLE") }
func (UpgraderRoleCall) args() []any { return nil }

// UpgradeInterfaceVersionCall is the argument list of UPGRADE_INTERFACE_VERSION().
type UpgradeInterfaceVersionCall struct{}

// UpgradeInterfaceVersionReturn holds the UUPS upgrade interface version.
type UpgradeInterfaceVersionReturn struct {
	Version string
}

func (UpgradeInterfaceVersionCall) Descriptor() *abi.Function { return function("UPGRADE_INTERFACE_VERSION") }
func (UpgradeInterfaceVersionCall) args() []any { return nil }

// AllowanceCall is the argument list of allowance(address,address).
type AllowanceCall struct {
	Owner   common.Address
	Spender common.Address
}

// AllowanceReturn holds spender's remaining allowance over owner's tokens.
type AllowanceReturn struct {
	Remaining *big.Int
}

func (AllowanceCall) Descriptor() *abi.Function { return function("allowance") }
func (c AllowanceCall) args() []any {
	return []any{c.Owner, c.Spender}
}

// ApproveCall is the argument list of approve(address,uint256).
type ApproveCall struct {
	Spender common.Address
	Value   *big.Int
}

// ApproveReturn holds the result of approve.
type ApproveReturn struct {
	Success bool
}

func (ApproveCall) Descriptor() *abi.Function { return function("approve") }
func (c ApproveCall) args() []any {
	return []any{c.Spender, c.Value}
}

// BalanceOfCall is the argument list of balanceOf(address).
type BalanceOfCall struct {
	Account common.Address
}

// BalanceOfReturn holds the token balance of account.
type BalanceOfReturn struct {
	Balance *big.Int
}

func (BalanceOfCall) Descriptor() *abi.Function { return function("balanceOf") }
func (c BalanceOfCall) args() []any {
	return []any{c.Account}
}

// BurnCall is the argument list of burn(uint256).
type BurnCall struct {
	Value *big.Int
}

// BurnReturn is empty: burn returns nothing.
type BurnReturn struct{}

func (BurnCall) Descriptor() *abi.Function { return function("burn") }
func (c BurnCall) args() []any {
	return []any{c.Value}
}

// BurnFromCall is the argument list of burnFrom(address,uint256).
type BurnFromCall struct {
	Account common.Address
	Value   *big.Int
}

// BurnFromReturn is empty: burnFrom returns nothing.
type BurnFromReturn struct{}

func (BurnFromCall) Descriptor() *abi.Function { return function("burnFrom") }
func (c BurnFromCall) args() []any {
	return []any{c.Account, c.Value}
}

// CheckpointsCall is the argument list of checkpoints(address,uint32).
type CheckpointsCall struct {
	Account common.Address
	Pos     uint32
}

// CheckpointsReturn holds the pos-th voting checkpoint of account.
type CheckpointsReturn struct {
	Checkpoint Checkpoint208
}

func (CheckpointsCall) Descriptor() *abi.Function { return function("checkpoints") }
func (c CheckpointsCall) args() []any {
	return []any{c.Account, c.Pos}
}

// ClockCall is the argument list of clock().
type ClockCall struct{}

// ClockReturn holds the current timepoint.
type ClockReturn struct {
	Timepoint *big.Int
}

func (ClockCall) Descriptor() *abi.Function { return function("clock") }
func (ClockCall) args() []any { return nil }

// DecimalsCall is the argument list of decimals().
type DecimalsCall struct{}

// DecimalsReturn holds the number of decimals.
type DecimalsReturn struct {
	Decimals uint8
}

func (DecimalsCall) Descriptor() *abi.Function { return function("decimals") }
func (DecimalsCall) args() []any { return nil }

// DelegateCall is the argument list of delegate(address).
type DelegateCall struct {
	Delegatee common.Address
}

// DelegateReturn is empty: delegate returns nothing.
type DelegateReturn struct{}

func (DelegateCall) Descriptor() *abi.Function { return function("delegate") }
func (c DelegateCall) args() []any {
	return []any{c.Delegatee}
}

// DelegateBySigCall is the argument list of delegateBySig(address,uint256,uint256,uint8,bytes32,bytes32).
type DelegateBySigCall struct {
	Delegatee common.Address
	Nonce     *big.Int
	Expiry    *big.Int
	V         uint8
	R         [32]byte
	S         [32]byte
}

// DelegateBySigReturn is empty: delegateBySig returns nothing.
type DelegateBySigReturn struct{}

func (DelegateBySigCall) Descriptor() *abi.Function { return function("delegateBySig") }
func (c DelegateBySigCall) args() []any {
	return []any{c.Delegatee, c.Nonce, c.Expiry, c.V, c.R, c.S}
}

// DelegatesCall is the argument list of delegates(address).
type DelegatesCall struct {
	Account common.Address
}

// DelegatesReturn holds the current delegate of account.
type DelegatesReturn struct {
	Delegatee common.Address
}

func (DelegatesCall) Descriptor() *abi.Function { return function("delegates") }
func (c DelegatesCall) args() []any {
	return []any{c.Account}
}

// EIP712DomainCall is the argument list of eip712Domain().
type EIP712DomainCall struct{}

// EIP712DomainReturn holds the EIP-5267 domain fields.
type EIP712DomainReturn struct {
	Fields            [1]byte
	Name              string
	Version           string
	ChainID           *big.Int `abi:"chainId"`
	VerifyingContract common.Address
	Salt              [32]byte
	Extensions        []*big.Int
}

func (EIP712DomainCall) Descriptor() *abi.Function { return function("eip712Domain") }
func (EIP712DomainCall) args() []any { return nil }

// GetPastTotalSupplyCall is the argument list of getPastTotalSupply(uint256).
type GetPastTotalSupplyCall struct {
	Timepoint *big.Int
}

// GetPastTotalSupplyReturn holds the total supply at a past timepoint.
type GetPastTotalSupplyReturn struct {
	Supply *big.Int
}

func (GetPastTotalSupplyCall) Descriptor() *abi.Function { return function("getPastTotalSupply") }
func (c GetPastTotalSupplyCall) args() []any {
	return []any{c.Timepoint}
}

// GetPastVotesCall is the argument list of getPastVotes(address,uint256).
type GetPastVotesCall struct {
	Account   common.Address
	Timepoint *big.Int
}

// GetPastVotesReturn holds the votes of account at a past timepoint.
type GetPastVotesReturn struct {
	Votes *big.Int
}

func (GetPastVotesCall) Descriptor() *abi.Function { return function("getPastVotes") }
func (c GetPastVotesCall) args() []any {
	return []any{c.Account, c.Timepoint}
}

// GetRoleAdminCall is the argument list of getRoleAdmin(bytes32).
type GetRoleAdminCall struct {
	Role [32]byte
}

// GetRoleAdminReturn holds the admin role that controls role.
type GetRoleAdminReturn struct {
	AdminRole [32]byte
}

func (GetRoleAdminCall) Descriptor() *abi.Function { return function("getRoleAdmin") }
func (c GetRoleAdminCall) args() []any {
	return []any{c.Role}
}

// GetVotesCall is the argument list of getVotes(address).
type GetVotesCall struct {
	Account common.Address
}

// GetVotesReturn holds the current votes of account.
type GetVotesReturn struct {
	Votes *big.Int
}

func (GetVotesCall) Descriptor() *abi.Function { return function("getVotes") }
func (c GetVotesCall) args() []any {
	return []any{c.Account}
}

// GrantRoleCall is the argument list of grantRole(bytes32,address).
type GrantRoleCall struct {
	Role    [32]byte
	Account common.Address
}

// GrantRoleReturn is empty: grantRole returns nothing.
type GrantRoleReturn struct{}

func (GrantRoleCall) Descriptor() *abi.Function { return function("grantRole") }
func (c GrantRoleCall) args() []any {
	return []any{c.Role, c.Account}
}

// HasRoleCall is the argument list of hasRole(bytes32,address).
type HasRoleCall struct {
	Role    [32]byte
	Account common.Address
}

// HasRoleReturn holds whether account has role.
type HasRoleReturn struct {
	Granted bool
}

func (HasRoleCall) Descriptor() *abi.Function { return function("hasRole") }
func (c HasRoleCall) args() []any {
	return []any{c.Role, c.Account}
}

// InitializeCall is the argument list of initialize(address,uint256).
type InitializeCall struct {
	Admin         common.Address
	InitialSupply *big.Int
}

// InitializeReturn is empty: initialize returns nothing.
type InitializeReturn struct{}

func (InitializeCall) Descriptor() *abi.Function { return function("initialize") }
func (c InitializeCall) args() []any {
	return []any{c.Admin, c.InitialSupply}
}

// MintCall is the argument list of mint(address,uint256).
type MintCall struct {
	To     common.Address
	Amount *big.Int
}

// MintReturn is empty: mint returns nothing.
type MintReturn struct{}

func (MintCall) Descriptor() *abi.Function { return function("mint") }
func (c MintCall) args() []any {
	return []any{c.To, c.Amount}
}

// NameCall is the argument list of name().
type NameCall struct{}

// NameReturn holds the token name.
type NameReturn struct {
	Name string
}

func (NameCall) Descriptor() *abi.Function { return function("name") }
func (NameCall) args() []any { return nil }

// NoncesCall is the argument list of nonces(address).
type NoncesCall struct {
	Owner common.Address
}

// NoncesReturn holds the current EIP-2612 / delegation nonce of owner.
type NoncesReturn struct {
	Nonce *big.Int
}

func (NoncesCall) Descriptor() *abi.Function { return function("nonces") }
func (c NoncesCall) args() []any {
	return []any{c.Owner}
}

// NumCheckpointsCall is the argument list of numCheckpoints(address).
type NumCheckpointsCall struct {
	Account common.Address
}

// NumCheckpointsReturn holds the number of voting checkpoints of account.
type NumCheckpointsReturn struct {
	Count uint32
}

func (NumCheckpointsCall) Descriptor() *abi.Function { return function("numCheckpoints") }
func (c NumCheckpointsCall) args() []any {
	return []any{c.Account}
}

// PermitCall is the argument list of permit(address,address,uint256,uint256,uint8,bytes32,bytes32).
type PermitCall struct {
	Owner    common.Address
	Spender  common.Address
	Value    *big.Int
	Deadline *big.Int
	V        uint8
	R        [32]byte
	S        [32]byte
}

// PermitReturn is empty: permit returns nothing.
type PermitReturn struct{}

func (PermitCall) Descriptor() *abi.Function { return function("permit") }
func (c PermitCall) args() []any {
	return []any{c.Owner, c.Spender, c.Value, c.Deadline, c.V, c.R, c.S}
}

// ProxiableUUIDCall is the argument list of proxiableUUID().
type ProxiableUUIDCall struct{}

// ProxiableUUIDReturn holds the ERC-1967 implementation slot.
type ProxiableUUIDReturn struct {
	Slot [32]byte
}

func (ProxiableUUIDCall) Descriptor() *abi.Function { return function("proxiableUUID") }
func (ProxiableUUIDCall) args() []any { return nil }

// RenounceRoleCall is the argument list of renounceRole(bytes32,address).
type RenounceRoleCall struct {
	Role               [32]byte
	CallerConfirmation common.Address
}

// RenounceRoleReturn is empty: renounceRole returns nothing.
type RenounceRoleReturn struct{}

func (RenounceRoleCall) Descriptor() *abi.Function { return function("renounceRole") }
func (c RenounceRoleCall) args() []any {
	return []any{c.Role, c.CallerConfirmation}
}

// RevokeRoleCall is the argument list of revokeRole(bytes32,address).
type RevokeRoleCall struct {
	Role    [32]byte
	Account common.Address
}

// RevokeRoleReturn is empty: revokeRole returns nothing.
type RevokeRoleReturn struct{}

func (RevokeRoleCall) Descriptor() *abi.Function { return function("revokeRole") }
func (c RevokeRoleCall) args() []any {
	return []any{c.Role, c.Account}
}

// SupportsInterfaceCall is the argument list of supportsInterface(bytes4).
type SupportsInterfaceCall struct {
	InterfaceID [4]byte
}

// SupportsInterfaceReturn holds ERC-165 interface detection.
type SupportsInterfaceReturn struct {
	Supported bool
}

func (SupportsInterfaceCall) Descriptor() *abi.Function { return function("supportsInterface") }
func (c SupportsInterfaceCall) args() []any {
	return []any{c.InterfaceID}
}

// SymbolCall is the argument list of symbol().
type SymbolCall struct{}

// SymbolReturn holds the token symbol.
type SymbolReturn struct {
	Symbol string
}

func (SymbolCall) Descriptor() *abi.Function { return function("symbol") }
func (SymbolCall) args() []any { return nil }

// TotalSupplyCall is the argument list of totalSupply().
type TotalSupplyCall struct{}

// TotalSupplyReturn holds the total supply.
type TotalSupplyReturn struct {
	Supply *big.Int
}

func (TotalSupplyCall) Descriptor() *abi.Function { return function("totalSupply") }
func (TotalSupplyCall) args() []any { return nil }

// TransferCall is the argument list of transfer(address,uint256).
type TransferCall struct {
	To    common.Address
	Value *big.Int
}

// TransferReturn holds the result of transfer.
type TransferReturn struct {
	Success bool
}

func (TransferCall) Descriptor() *abi.Function { return function("transfer") }
func (c TransferCall) args() []any {
	return []any{c.To, c.Value}
}

// TransferFromCall is the argument list of transferFrom(address,address,uint256).
type TransferFromCall struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

// TransferFromReturn holds the result of transferFrom.
type TransferFromReturn struct {
	Success bool
}

func (TransferFromCall) Descriptor() *abi.Function { return function("transferFrom") }
func (c TransferFromCall) args() []any {
	return []any{c.From, c.To, c.Value}
}

// UpgradeToAndCallCall is the argument list of upgradeToAndCall(address,bytes).
type UpgradeToAndCallCall struct {
	NewImplementation common.Address
	Data              []byte
}

// UpgradeToAndCallReturn is empty: upgradeToAndCall returns nothing.
type UpgradeToAndCallReturn struct{}

func (UpgradeToAndCallCall) Descriptor() *abi.Function { return function("upgradeToAndCall") }
func (c UpgradeToAndCallCall) args() []any {
	return []any{c.NewImplementation, c.Data}
}
