package tangletoken

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ClockMode returns the ERC-6372 clock description.
func (t *Instance) ClockMode() *CallBuilder[ClockModeReturn] {
	return newCall[ClockModeReturn](t, ClockModeCall{})
}

// DefaultAdminRole returns the admin role of every role by default.
func (t *Instance) DefaultAdminRole() *CallBuilder[DefaultAdminRoleReturn] {
	return newCall[DefaultAdminRoleReturn](t, DefaultAdminRoleCall{})
}

// DomainSeparator returns the EIP-712 domain separator.
func (t *Instance) DomainSeparator() *CallBuilder[DomainSeparatorReturn] {
	return newCall[DomainSeparatorReturn](t, DomainSeparatorCall{})
}

// MaxSupply returns the supply cap.
func (t *Instance) MaxSupply() *CallBuilder[MaxSupplyReturn] {
	return newCall[MaxSupplyReturn](t, MaxSupplyCall{})
}

// MinterRole returns the role allowed to mint.
func (t *Instance) MinterRole() *CallBuilder[MinterRoleReturn] {
	return newCall[MinterRoleReturn](t, MinterRoleCall{})
}

// UpgraderRole returns the role allowed to upgrade the implementation.
func (t *Instance) UpgraderRole() *CallBuilder[UpgraderRoleReturn] {
	return newCall[UpgraderRoleReturn](t, UpgraderRoleCall{})
}

// UpgradeInterfaceVersion returns the UUPS upgrade interface version.
func (t *Instance) UpgradeInterfaceVersion() *CallBuilder[UpgradeInterfaceVersionReturn] {
	return newCall[UpgradeInterfaceVersionReturn](t, UpgradeInterfaceVersionCall{})
}

// Allowance returns spender's remaining allowance over owner's tokens.
func (t *Instance) Allowance(owner common.Address, spender common.Address) *CallBuilder[AllowanceReturn] {
	return newCall[AllowanceReturn](t, AllowanceCall{Owner: owner, Spender: spender})
}

// Approve sets spender's allowance over the caller's tokens.
func (t *Instance) Approve(spender common.Address, value *big.Int) *CallBuilder[ApproveReturn] {
	return newCall[ApproveReturn](t, ApproveCall{Spender: spender, Value: value})
}

// BalanceOf returns the token balance of account.
func (t *Instance) BalanceOf(account common.Address) *CallBuilder[BalanceOfReturn] {
	return newCall[BalanceOfReturn](t, BalanceOfCall{Account: account})
}

// Burn destroys value tokens from the caller.
func (t *Instance) Burn(value *big.Int) *CallBuilder[BurnReturn] {
	return newCall[BurnReturn](t, BurnCall{Value: value})
}

// BurnFrom destroys value tokens from account, spending the caller's allowance.
func (t *Instance) BurnFrom(account common.Address, value *big.Int) *CallBuilder[BurnFromReturn] {
	return newCall[BurnFromReturn](t, BurnFromCall{Account: account, Value: value})
}

// Checkpoints returns the pos-th voting checkpoint of account.
func (t *Instance) Checkpoints(account common.Address, pos uint32) *CallBuilder[CheckpointsReturn] {
	return newCall[CheckpointsReturn](t, CheckpointsCall{Account: account, Pos: pos})
}

// Clock returns the current timepoint.
func (t *Instance) Clock() *CallBuilder[ClockReturn] {
	return newCall[ClockReturn](t, ClockCall{})
}

// Decimals returns the number of decimals.
func (t *Instance) Decimals() *CallBuilder[DecimalsReturn] {
	return newCall[DecimalsReturn](t, DecimalsCall{})
}

// Delegate delegates the caller's votes to delegatee.
func (t *Instance) Delegate(delegatee common.Address) *CallBuilder[DelegateReturn] {
	return newCall[DelegateReturn](t, DelegateCall{Delegatee: delegatee})
}

// DelegateBySig delegates votes using a signed Delegation message.
func (t *Instance) DelegateBySig(delegatee common.Address, nonce *big.Int, expiry *big.Int, v uint8, r [32]byte, s [32]byte) *CallBuilder[DelegateBySigReturn] {
	return newCall[DelegateBySigReturn](t, DelegateBySigCall{Delegatee: delegatee, Nonce: nonce, Expiry: expiry, V: v, R: r, S: s})
}

// Delegates returns the current delegate of account.
func (t *Instance) Delegates(account common.Address) *CallBuilder[DelegatesReturn] {
	return newCall[DelegatesReturn](t, DelegatesCall{Account: account})
}

// EIP712Domain returns the EIP-5267 domain fields.
func (t *Instance) EIP712Domain() *CallBuilder[EIP712DomainReturn] {
	return newCall[EIP712DomainReturn](t, EIP712DomainCall{})
}

// GetPastTotalSupply returns the total supply at a past timepoint.
func (t *Instance) GetPastTotalSupply(timepoint *big.Int) *CallBuilder[GetPastTotalSupplyReturn] {
	return newCall[GetPastTotalSupplyReturn](t, GetPastTotalSupplyCall{Timepoint: timepoint})
}

// GetPastVotes returns the votes of account at a past timepoint.
func (t *Instance) GetPastVotes(account common.Address, timepoint *big.Int) *CallBuilder[GetPastVotesReturn] {
	return newCall[GetPastVotesReturn](t, GetPastVotesCall{Account: account, Timepoint: timepoint})
}

// GetRoleAdmin returns the admin role that controls role.
func (t *Instance) GetRoleAdmin(role [32]byte) *CallBuilder[GetRoleAdminReturn] {
	return newCall[GetRoleAdminReturn](t, GetRoleAdminCall{Role: role})
}

// GetVotes returns the current votes of account.
func (t *Instance) GetVotes(account common.Address) *CallBuilder[GetVotesReturn] {
	return newCall[GetVotesReturn](t, GetVotesCall{Account: account})
}

// GrantRole grants role to account.
func (t *Instance) GrantRole(role [32]byte, account common.Address) *CallBuilder[GrantRoleReturn] {
	return newCall[GrantRoleReturn](t, GrantRoleCall{Role: role, Account: account})
}

// HasRole reports whether account has role.
func (t *Instance) HasRole(role [32]byte, account common.Address) *CallBuilder[HasRoleReturn] {
	return newCall[HasRoleReturn](t, HasRoleCall{Role: role, Account: account})
}

// Initialize initializes the proxy storage.
func (t *Instance) Initialize(admin common.Address, initialSupply *big.Int) *CallBuilder[InitializeReturn] {
	return newCall[InitializeReturn](t, InitializeCall{Admin: admin, InitialSupply: initialSupply})
}

// Mint creates amount tokens for to.
func (t *Instance) Mint(to common.Address, amount *big.Int) *CallBuilder[MintReturn] {
	return newCall[MintReturn](t, MintCall{To: to, Amount: amount})
}

// Name returns the token name.
func (t *Instance) Name() *CallBuilder[NameReturn] {
	return newCall[NameReturn](t, NameCall{})
}

// Nonces returns the current EIP-2612 / delegation nonce of owner.
func (t *Instance) Nonces(owner common.Address) *CallBuilder[NoncesReturn] {
	return newCall[NoncesReturn](t, NoncesCall{Owner: owner})
}

// NumCheckpoints returns the number of voting checkpoints of account.
func (t *Instance) NumCheckpoints(account common.Address) *CallBuilder[NumCheckpointsReturn] {
	return newCall[NumCheckpointsReturn](t, NumCheckpointsCall{Account: account})
}

// Permit sets spender's allowance over owner's tokens from a signed Permit.
func (t *Instance) Permit(owner common.Address, spender common.Address, value *big.Int, deadline *big.Int, v uint8, r [32]byte, s [32]byte) *CallBuilder[PermitReturn] {
	return newCall[PermitReturn](t, PermitCall{Owner: owner, Spender: spender, Value: value, Deadline: deadline, V: v, R: r, S: s})
}

// ProxiableUUID returns the ERC-1967 implementation slot.
func (t *Instance) ProxiableUUID() *CallBuilder[ProxiableUUIDReturn] {
	return newCall[ProxiableUUIDReturn](t, ProxiableUUIDCall{})
}

// RenounceRole drops role from the caller.
func (t *Instance) RenounceRole(role [32]byte, callerConfirmation common.Address) *CallBuilder[RenounceRoleReturn] {
	return newCall[RenounceRoleReturn](t, RenounceRoleCall{Role: role, CallerConfirmation: callerConfirmation})
}

// RevokeRole revokes role from account.
func (t *Instance) RevokeRole(role [32]byte, account common.Address) *CallBuilder[RevokeRoleReturn] {
	return newCall[RevokeRoleReturn](t, RevokeRoleCall{Role: role, Account: account})
}

// SupportsInterface performs ERC-165 interface detection.
func (t *Instance) SupportsInterface(interfaceId [4]byte) *CallBuilder[SupportsInterfaceReturn] {
	return newCall[SupportsInterfaceReturn](t, SupportsInterfaceCall{InterfaceID: interfaceId})
}

// Symbol returns the token symbol.
func (t *Instance) Symbol() *CallBuilder[SymbolReturn] {
	return newCall[SymbolReturn](t, SymbolCall{})
}

// TotalSupply returns the total supply.
func (t *Instance) TotalSupply() *CallBuilder[TotalSupplyReturn] {
	return newCall[TotalSupplyReturn](t, TotalSupplyCall{})
}

// Transfer moves value tokens from the caller to to.
func (t *Instance) Transfer(to common.Address, value *big.Int) *CallBuilder[TransferReturn] {
	return newCall[TransferReturn](t, TransferCall{To: to, Value: value})
}

// TransferFrom moves value tokens from from to to using the allowance mechanism.
func (t *Instance) TransferFrom(from common.Address, to common.Address, value *big.Int) *CallBuilder[TransferFromReturn] {
	return newCall[TransferFromReturn](t, TransferFromCall{From: from, To: to, Value: value})
}

// UpgradeToAndCall upgrades the implementation and optionally calls it.
func (t *Instance) UpgradeToAndCall(newImplementation common.Address, data []byte) *CallBuilder[UpgradeToAndCallReturn] {
	return newCall[UpgradeToAndCallReturn](t, UpgradeToAndCallCall{NewImplementation: newImplementation, Data: data})
}
