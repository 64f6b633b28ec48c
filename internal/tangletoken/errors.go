package tangletoken

import (
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
)

// AccessControlBadConfirmation is the custom error AccessControlBadConfirmation().
type AccessControlBadConfirmation struct{}

func (AccessControlBadConfirmation) Descriptor() *abi.Error { return customError("AccessControlBadConfirmation") }
func (AccessControlBadConfirmation) args() []any { return nil }
func (e AccessControlBadConfirmation) Error() string { return describeError(e) }

// AccessControlUnauthorizedAccount is the custom error AccessControlUnauthorizedAccount(address,bytes32).
type AccessControlUnauthorizedAccount struct {
	Account    common.Address
	NeededRole [32]byte
}

func (AccessControlUnauthorizedAccount) Descriptor() *abi.Error { return customError("AccessControlUnauthorizedAccount") }
func (e AccessControlUnauthorizedAccount) args() []any { return []any{e.Account, e.NeededRole} }
func (e AccessControlUnauthorizedAccount) Error() string { return describeError(e) }

// AddressEmptyCode is the custom error AddressEmptyCode(address).
type AddressEmptyCode struct {
	Target common.Address
}

func (AddressEmptyCode) Descriptor() *abi.Error { return customError("AddressEmptyCode") }
func (e AddressEmptyCode) args() []any { return []any{e.Target} }
func (e AddressEmptyCode) Error() string { return describeError(e) }

// CheckpointUnorderedInsertion is the custom error CheckpointUnorderedInsertion().
type CheckpointUnorderedInsertion struct{}

func (CheckpointUnorderedInsertion) Descriptor() *abi.Error { return customError("CheckpointUnorderedInsertion") }
func (CheckpointUnorderedInsertion) args() []any { return nil }
func (e CheckpointUnorderedInsertion) Error() string { return describeError(e) }

// ECDSAInvalidSignature is the custom error ECDSAInvalidSignature().
type ECDSAInvalidSignature struct{}

func (ECDSAInvalidSignature) Descriptor() *abi.Error { return customError("ECDSAInvalidSignature") }
func (ECDSAInvalidSignature) args() []any { return nil }
func (e ECDSAInvalidSignature) Error() string { return describeError(e) }

// ECDSAInvalidSignatureLength is the custom error ECDSAInvalidSignatureLength(uint256).
type ECDSAInvalidSignatureLength struct {
	Length *big.Int
}

func (ECDSAInvalidSignatureLength) Descriptor() *abi.Error { return customError("ECDSAInvalidSignatureLength") }
func (e ECDSAInvalidSignatureLength) args() []any { return []any{e.Length} }
func (e ECDSAInvalidSignatureLength) Error() string { return describeError(e) }

// ECDSAInvalidSignatureS is the custom error ECDSAInvalidSignatureS(bytes32).
type ECDSAInvalidSignatureS struct {
	S [32]byte
}

func (ECDSAInvalidSignatureS) Descriptor() *abi.Error { return customError("ECDSAInvalidSignatureS") }
func (e ECDSAInvalidSignatureS) args() []any { return []any{e.S} }
func (e ECDSAInvalidSignatureS) Error() string { return describeError(e) }

// ERC1967InvalidImplementation is the custom error ERC1967InvalidImplementation(address).
type ERC1967InvalidImplementation struct {
	Implementation common.Address
}

func (ERC1967InvalidImplementation) Descriptor() *abi.Error { return customError("ERC1967InvalidImplementation") }
func (e ERC1967InvalidImplementation) args() []any { return []any{e.Implementation} }
func (e ERC1967InvalidImplementation) Error() string { return describeError(e) }

// ERC1967NonPayable is the custom error ERC1967NonPayable().
type ERC1967NonPayable struct{}

func (ERC1967NonPayable) Descriptor() *abi.Error { return customError("ERC1967NonPayable") }
func (ERC1967NonPayable) args() []any { return nil }
func (e ERC1967NonPayable) Error() string { return describeError(e) }

// ERC20ExceededSafeSupply is the custom error ERC20ExceededSafeSupply(uint256,uint256).
type ERC20ExceededSafeSupply struct {
	IncreasedSupply *big.Int
	Cap             *big.Int
}

func (ERC20ExceededSafeSupply) Descriptor() *abi.Error { return customError("ERC20ExceededSafeSupply") }
func (e ERC20ExceededSafeSupply) args() []any { return []any{e.IncreasedSupply, e.Cap} }
func (e ERC20ExceededSafeSupply) Error() string { return describeError(e) }

// ERC20InsufficientAllowance is the custom error ERC20InsufficientAllowance(address,uint256,uint256).
type ERC20InsufficientAllowance struct {
	Spender   common.Address
	Allowance *big.Int
	Needed    *big.Int
}

func (ERC20InsufficientAllowance) Descriptor() *abi.Error { return customError("ERC20InsufficientAllowance") }
func (e ERC20InsufficientAllowance) args() []any { return []any{e.Spender, e.Allowance, e.Needed} }
func (e ERC20InsufficientAllowance) Error() string { return describeError(e) }

// ERC20InsufficientBalance is the custom error ERC20InsufficientBalance(address,uint256,uint256).
type ERC20InsufficientBalance struct {
	Sender  common.Address
	Balance *big.Int
	Needed  *big.Int
}

func (ERC20InsufficientBalance) Descriptor() *abi.Error { return customError("ERC20InsufficientBalance") }
func (e ERC20InsufficientBalance) args() []any { return []any{e.Sender, e.Balance, e.Needed} }
func (e ERC20InsufficientBalance) Error() string { return describeError(e) }

// ERC20InvalidApprover is the custom error ERC20InvalidApprover(address).
type ERC20InvalidApprover struct {
	Approver common.Address
}

func (ERC20InvalidApprover) Descriptor() *abi.Error { return customError("ERC20InvalidApprover") }
func (e ERC20InvalidApprover) args() []any { return []any{e.Approver} }
func (e ERC20InvalidApprover) Error() string { return describeError(e) }

// ERC20InvalidReceiver is the custom error ERC20InvalidReceiver(address).
type ERC20InvalidReceiver struct {
	Receiver common.Address
}

func (ERC20InvalidReceiver) Descriptor() *abi.Error { return customError("ERC20InvalidReceiver") }
func (e ERC20InvalidReceiver) args() []any { return []any{e.Receiver} }
func (e ERC20InvalidReceiver) Error() string { return describeError(e) }

// ERC20InvalidSender is the custom error ERC20InvalidSender(address).
type ERC20InvalidSender struct {
	Sender common.Address
}

func (ERC20InvalidSender) Descriptor() *abi.Error { return customError("ERC20InvalidSender") }
func (e ERC20InvalidSender) args() []any { return []any{e.Sender} }
func (e ERC20InvalidSender) Error() string { return describeError(e) }

// ERC20InvalidSpender is the custom error ERC20InvalidSpender(address).
type ERC20InvalidSpender struct {
	Spender common.Address
}

func (ERC20InvalidSpender) Descriptor() *abi.Error { return customError("ERC20InvalidSpender") }
func (e ERC20InvalidSpender) args() []any { return []any{e.Spender} }
func (e ERC20InvalidSpender) Error() string { return describeError(e) }

// ERC2612ExpiredSignature is the custom error ERC2612ExpiredSignature(uint256).
type ERC2612ExpiredSignature struct {
	Deadline *big.Int
}

func (ERC2612ExpiredSignature) Descriptor() *abi.Error { return customError("ERC2612ExpiredSignature") }
func (e ERC2612ExpiredSignature) args() []any { return []any{e.Deadline} }
func (e ERC2612ExpiredSignature) Error() string { return describeError(e) }

// ERC2612InvalidSigner is the custom error ERC2612InvalidSigner(address,address).
type ERC2612InvalidSigner struct {
	Signer common.Address
	Owner  common.Address
}

func (ERC2612InvalidSigner) Descriptor() *abi.Error { return customError("ERC2612InvalidSigner") }
func (e ERC2612InvalidSigner) args() []any { return []any{e.Signer, e.Owner} }
func (e ERC2612InvalidSigner) Error() string { return describeError(e) }

// ERC5805FutureLookup is the custom error ERC5805FutureLookup(uint256,uint48).
type ERC5805FutureLookup struct {
	Timepoint *big.Int
	Clock     *big.Int
}

func (ERC5805FutureLookup) Descriptor() *abi.Error { return customError("ERC5805FutureLookup") }
func (e ERC5805FutureLookup) args() []any { return []any{e.Timepoint, e.Clock} }
func (e ERC5805FutureLookup) Error() string { return describeError(e) }

// ERC6372InconsistentClock is the custom error ERC6372InconsistentClock().
type ERC6372InconsistentClock struct{}

func (ERC6372InconsistentClock) Descriptor() *abi.Error { return customError("ERC6372InconsistentClock") }
func (ERC6372InconsistentClock) args() []any { return nil }
func (e ERC6372InconsistentClock) Error() string { return describeError(e) }

// FailedCall is the custom error FailedCall().
type FailedCall struct{}

func (FailedCall) Descriptor() *abi.Error { return customError("FailedCall") }
func (FailedCall) args() []any { return nil }
func (e FailedCall) Error() string { return describeError(e) }

// InvalidAccountNonce is the custom error InvalidAccountNonce(address,uint256).
type InvalidAccountNonce struct {
	Account      common.Address
	CurrentNonce *big.Int
}

func (InvalidAccountNonce) Descriptor() *abi.Error { return customError("InvalidAccountNonce") }
func (e InvalidAccountNonce) args() []any { return []any{e.Account, e.CurrentNonce} }
func (e InvalidAccountNonce) Error() string { return describeError(e) }

// InvalidInitialization is the custom error InvalidInitialization().
type InvalidInitialization struct{}

func (InvalidInitialization) Descriptor() *abi.Error { return customError("InvalidInitialization") }
func (InvalidInitialization) args() []any { return nil }
func (e InvalidInitialization) Error() string { return describeError(e) }

// NotInitializing is the custom error NotInitializing().
type NotInitializing struct{}

func (NotInitializing) Descriptor() *abi.Error { return customError("NotInitializing") }
func (NotInitializing) args() []any { return nil }
func (e NotInitializing) Error() string { return describeError(e) }

// SafeCastOverflowedUintDowncast is the custom error SafeCastOverflowedUintDowncast(uint8,uint256).
type SafeCastOverflowedUintDowncast struct {
	Bits  uint8
	Value *big.Int
}

func (SafeCastOverflowedUintDowncast) Descriptor() *abi.Error { return customError("SafeCastOverflowedUintDowncast") }
func (e SafeCastOverflowedUintDowncast) args() []any { return []any{e.Bits, e.Value} }
func (e SafeCastOverflowedUintDowncast) Error() string { return describeError(e) }

// UUPSUnauthorizedCallContext is the custom error UUPSUnauthorizedCallContext().
type UUPSUnauthorizedCallContext struct{}

func (UUPSUnauthorizedCallContext) Descriptor() *abi.Error { return customError("UUPSUnauthorizedCallContext") }
func (UUPSUnauthorizedCallContext) args() []any { return nil }
func (e UUPSUnauthorizedCallContext) Error() string { return describeError(e) }

// UUPSUnsupportedProxiableUUID is the custom error UUPSUnsupportedProxiableUUID(bytes32).
type UUPSUnsupportedProxiableUUID struct {
	Slot [32]byte
}

func (UUPSUnsupportedProxiableUUID) Descriptor() *abi.Error { return customError("UUPSUnsupportedProxiableUUID") }
func (e UUPSUnsupportedProxiableUUID) args() []any { return []any{e.Slot} }
func (e UUPSUnsupportedProxiableUUID) Error() string { return describeError(e) }

// VotesExpiredSignature is the custom error VotesExpiredSignature(uint256).
type VotesExpiredSignature struct {
	Expiry *big.Int
}

func (VotesExpiredSignature) Descriptor() *abi.Error { return customError("VotesExpiredSignature") }
func (e VotesExpiredSignature) args() []any { return []any{e.Expiry} }
func (e VotesExpiredSignature) Error() string { return describeError(e) }
