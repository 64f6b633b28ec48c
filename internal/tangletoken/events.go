package tangletoken

import (
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ApprovalEvent is emitted as Approval(address,address,uint256).
type ApprovalEvent struct {
	Owner   common.Address // indexed
	Spender common.Address // indexed
	Value   *big.Int
}

func (ApprovalEvent) Descriptor() *abi.Event { return event("Approval") }
func (e ApprovalEvent) args() []any { return []any{e.Owner, e.Spender, e.Value} }

// DelegateChangedEvent is emitted as DelegateChanged(address,address,address).
type DelegateChangedEvent struct {
	Delegator    common.Address // indexed
	FromDelegate common.Address // indexed
	ToDelegate   common.Address // indexed
}

func (DelegateChangedEvent) Descriptor() *abi.Event { return event("DelegateChanged") }
func (e DelegateChangedEvent) args() []any { return []any{e.Delegator, e.FromDelegate, e.ToDelegate} }

// DelegateVotesChangedEvent is emitted as DelegateVotesChanged(address,uint256,uint256).
type DelegateVotesChangedEvent struct {
	Delegate      common.Address // indexed
	PreviousVotes *big.Int
	NewVotes      *big.Int
}

func (DelegateVotesChangedEvent) Descriptor() *abi.Event { return event("DelegateVotesChanged") }
func (e DelegateVotesChangedEvent) args() []any { return []any{e.Delegate, e.PreviousVotes, e.NewVotes} }

// EIP712DomainChangedEvent is emitted as EIP712DomainChanged().
type EIP712DomainChangedEvent struct{}

func (EIP712DomainChangedEvent) Descriptor() *abi.Event { return event("EIP712DomainChanged") }
func (EIP712DomainChangedEvent) args() []any { return nil }

// InitializedEvent is emitted as Initialized(uint64).
type InitializedEvent struct {
	Version uint64
}

func (InitializedEvent) Descriptor() *abi.Event { return event("Initialized") }
func (e InitializedEvent) args() []any { return []any{e.Version} }

// RoleAdminChangedEvent is emitted as RoleAdminChanged(bytes32,bytes32,bytes32).
type RoleAdminChangedEvent struct {
	Role              [32]byte // indexed
	PreviousAdminRole [32]byte // indexed
	NewAdminRole      [32]byte // indexed
}

func (RoleAdminChangedEvent) Descriptor() *abi.Event { return event("RoleAdminChanged") }
func (e RoleAdminChangedEvent) args() []any { return []any{e.Role, e.PreviousAdminRole, e.NewAdminRole} }

// RoleGrantedEvent is emitted as RoleGranted(bytes32,address,address).
type RoleGrantedEvent struct {
	Role    [32]byte       // indexed
	Account common.Address // indexed
	Sender  common.Address // indexed
}

func (RoleGrantedEvent) Descriptor() *abi.Event { return event("RoleGranted") }
func (e RoleGrantedEvent) args() []any { return []any{e.Role, e.Account, e.Sender} }

// RoleRevokedEvent is emitted as RoleRevoked(bytes32,address,address).
type RoleRevokedEvent struct {
	Role    [32]byte       // indexed
	Account common.Address // indexed
	Sender  common.Address // indexed
}

func (RoleRevokedEvent) Descriptor() *abi.Event { return event("RoleRevoked") }
func (e RoleRevokedEvent) args() []any { return []any{e.Role, e.Account, e.Sender} }

// TransferEvent is emitted as Transfer(address,address,uint256).
type TransferEvent struct {
	From  common.Address // indexed
	To    common.Address // indexed
	Value *big.Int
}

func (TransferEvent) Descriptor() *abi.Event { return event("Transfer") }
func (e TransferEvent) args() []any { return []any{e.From, e.To, e.Value} }

// UpgradedEvent is emitted as Upgraded(address).
type UpgradedEvent struct {
	Implementation common.Address // indexed
}

func (UpgradedEvent) Descriptor() *abi.Event { return event("Upgraded") }
func (e UpgradedEvent) args() []any { return []any{e.Implementation} }
