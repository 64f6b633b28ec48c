package tangletoken

import "github.com/ethereum/go-ethereum/common"

// ApprovalFilter queries Approval logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) ApprovalFilter(owner []common.Address, spender []common.Address) *EventFilter[ApprovalEvent] {
	return newFilter[ApprovalEvent](t, toAny(owner), toAny(spender))
}

// DelegateChangedFilter queries DelegateChanged logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) DelegateChangedFilter(delegator []common.Address, fromDelegate []common.Address, toDelegate []common.Address) *EventFilter[DelegateChangedEvent] {
	return newFilter[DelegateChangedEvent](t, toAny(delegator), toAny(fromDelegate), toAny(toDelegate))
}

// DelegateVotesChangedFilter queries DelegateVotesChanged logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) DelegateVotesChangedFilter(delegate []common.Address) *EventFilter[DelegateVotesChangedEvent] {
	return newFilter[DelegateVotesChangedEvent](t, toAny(delegate))
}

// EIP712DomainChangedFilter queries EIP712DomainChanged logs emitted by the token.
func (t *Instance) EIP712DomainChangedFilter() *EventFilter[EIP712DomainChangedEvent] {
	return newFilter[EIP712DomainChangedEvent](t)
}

// InitializedFilter queries Initialized logs emitted by the token.
func (t *Instance) InitializedFilter() *EventFilter[InitializedEvent] {
	return newFilter[InitializedEvent](t)
}

// RoleAdminChangedFilter queries RoleAdminChanged logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) RoleAdminChangedFilter(role [][32]byte, previousAdminRole [][32]byte, newAdminRole [][32]byte) *EventFilter[RoleAdminChangedEvent] {
	return newFilter[RoleAdminChangedEvent](t, toAny(role), toAny(previousAdminRole), toAny(newAdminRole))
}

// RoleGrantedFilter queries RoleGranted logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) RoleGrantedFilter(role [][32]byte, account []common.Address, sender []common.Address) *EventFilter[RoleGrantedEvent] {
	return newFilter[RoleGrantedEvent](t, toAny(role), toAny(account), toAny(sender))
}

// RoleRevokedFilter queries RoleRevoked logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) RoleRevokedFilter(role [][32]byte, account []common.Address, sender []common.Address) *EventFilter[RoleRevokedEvent] {
	return newFilter[RoleRevokedEvent](t, toAny(role), toAny(account), toAny(sender))
}

// TransferFilter queries Transfer logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) TransferFilter(from []common.Address, to []common.Address) *EventFilter[TransferEvent] {
	return newFilter[TransferEvent](t, toAny(from), toAny(to))
}

// UpgradedFilter queries Upgraded logs emitted by the token.
// An empty slice matches any value; several values match any of them.
func (t *Instance) UpgradedFilter(implementation []common.Address) *EventFilter[UpgradedEvent] {
	return newFilter[UpgradedEvent](t, toAny(implementation))
}
