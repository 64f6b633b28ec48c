package tangletoken

import (
	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Calls is the closed set of TangleToken function calls. Every <Name>Call
// type in this package implements it.
type Calls interface {
	Descriptor() *abi.Function
	args() []any
}

// Errors is the closed set of TangleToken custom errors.
type Errors interface {
	error
	Descriptor() *abi.Error
	args() []any
}

// Events is the closed set of TangleToken events. Every <Name>Event type in
// this package implements it.
type Events interface {
	Descriptor() *abi.Event
	args() []any
}

var (
	callTable  *abi.SelectorTable[Calls]
	errorTable *abi.SelectorTable[Errors]
	eventTable *abi.TopicTable[Events]
)

func init() {
	var err error
	callTable, err = abi.NewSelectorTable(InterfaceName,
		callEntry[ClockModeCall](),
		callEntry[DefaultAdminRoleCall](),
		callEntry[DomainSeparatorCall](),
		callEntry[MaxSupplyCall](),
		callEntry[MinterRoleCall](),
		callEntry[UpgraderRoleCall](),
		callEntry[UpgradeInterfaceVersionCall](),
		callEntry[AllowanceCall](),
		callEntry[ApproveCall](),
		callEntry[BalanceOfCall](),
		callEntry[BurnCall](),
		callEntry[BurnFromCall](),
		callEntry[CheckpointsCall](),
		callEntry[ClockCall](),
		callEntry[DecimalsCall](),
		callEntry[DelegateCall](),
		callEntry[DelegateBySigCall](),
		callEntry[DelegatesCall](),
		callEntry[EIP712DomainCall](),
		callEntry[GetPastTotalSupplyCall](),
		callEntry[GetPastVotesCall](),
		callEntry[GetRoleAdminCall](),
		callEntry[GetVotesCall](),
		callEntry[GrantRoleCall](),
		callEntry[HasRoleCall](),
		callEntry[InitializeCall](),
		callEntry[MintCall](),
		callEntry[NameCall](),
		callEntry[NoncesCall](),
		callEntry[NumCheckpointsCall](),
		callEntry[PermitCall](),
		callEntry[ProxiableUUIDCall](),
		callEntry[RenounceRoleCall](),
		callEntry[RevokeRoleCall](),
		callEntry[SupportsInterfaceCall](),
		callEntry[SymbolCall](),
		callEntry[TotalSupplyCall](),
		callEntry[TransferCall](),
		callEntry[TransferFromCall](),
		callEntry[UpgradeToAndCallCall](),
	)
	if err != nil {
		panic(err)
	}

	errorTable, err = abi.NewSelectorTable(InterfaceName,
		errorEntry[AccessControlBadConfirmation](),
		errorEntry[AccessControlUnauthorizedAccount](),
		errorEntry[AddressEmptyCode](),
		errorEntry[CheckpointUnorderedInsertion](),
		errorEntry[ECDSAInvalidSignature](),
		errorEntry[ECDSAInvalidSignatureLength](),
		errorEntry[ECDSAInvalidSignatureS](),
		errorEntry[ERC1967InvalidImplementation](),
		errorEntry[ERC1967NonPayable](),
		errorEntry[ERC20ExceededSafeSupply](),
		errorEntry[ERC20InsufficientAllowance](),
		errorEntry[ERC20InsufficientBalance](),
		errorEntry[ERC20InvalidApprover](),
		errorEntry[ERC20InvalidReceiver](),
		errorEntry[ERC20InvalidSender](),
		errorEntry[ERC20InvalidSpender](),
		errorEntry[ERC2612ExpiredSignature](),
		errorEntry[ERC2612InvalidSigner](),
		errorEntry[ERC5805FutureLookup](),
		errorEntry[ERC6372InconsistentClock](),
		errorEntry[FailedCall](),
		errorEntry[InvalidAccountNonce](),
		errorEntry[InvalidInitialization](),
		errorEntry[NotInitializing](),
		errorEntry[SafeCastOverflowedUintDowncast](),
		errorEntry[UUPSUnauthorizedCallContext](),
		errorEntry[UUPSUnsupportedProxiableUUID](),
		errorEntry[VotesExpiredSignature](),
	)
	if err != nil {
		panic(err)
	}

	eventTable, err = abi.NewTopicTable(InterfaceName,
		eventEntry[ApprovalEvent](),
		eventEntry[DelegateChangedEvent](),
		eventEntry[DelegateVotesChangedEvent](),
		eventEntry[EIP712DomainChangedEvent](),
		eventEntry[InitializedEvent](),
		eventEntry[RoleAdminChangedEvent](),
		eventEntry[RoleGrantedEvent](),
		eventEntry[RoleRevokedEvent](),
		eventEntry[TransferEvent](),
		eventEntry[UpgradedEvent](),
	)
	if err != nil {
		panic(err)
	}
}

func callEntry[C Calls]() abi.Entry[Calls] {
	var zero C
	fn := zero.Descriptor()
	return abi.Entry[Calls]{
		Selector: fn.Selector(),
		Decode: func(data []byte) (Calls, error) {
			var c C
			if err := fn.DecodeCall(data, &c); err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

func errorEntry[E Errors]() abi.Entry[Errors] {
	var zero E
	d := zero.Descriptor()
	return abi.Entry[Errors]{
		Selector: d.Selector(),
		Decode: func(data []byte) (Errors, error) {
			var e E
			if err := d.Decode(data, &e); err != nil {
				return nil, err
			}
			return e, nil
		},
	}
}

func eventEntry[E Events]() abi.TopicEntry[Events] {
	var zero E
	d := zero.Descriptor()
	return abi.TopicEntry[Events]{
		Topic: d.Topic(),
		Decode: func(log types.Log) (Events, error) {
			var e E
			if err := d.DecodeLog(log, &e); err != nil {
				return nil, &abi.InvalidLogError{Interface: InterfaceName, Log: log, Reason: err.Error()}
			}
			return e, nil
		},
	}
}

// EncodeCall returns the calldata of c: selector followed by its arguments.
func EncodeCall(c Calls) ([]byte, error) {
	if c == nil {
		return nil, errors.New("nil call")
	}
	return c.Descriptor().EncodeCall(c.args()...)
}

// DecodeCall decodes calldata into the matching <Name>Call value. An
// unknown selector yields an *abi.UnknownSelectorError.
func DecodeCall(data []byte) (Calls, error) {
	return callTable.Decode(data)
}

// EncodeError returns the revert payload of e.
func EncodeError(e Errors) ([]byte, error) {
	if e == nil {
		return nil, errors.New("nil error")
	}
	return e.Descriptor().Encode(e.args()...)
}

// DecodeError decodes revert data into the matching custom error.
func DecodeError(data []byte) (Errors, error) {
	return errorTable.Decode(data)
}

// EncodeLog builds the log the token would emit for e.
func EncodeLog(e Events) (types.Log, error) {
	if e == nil {
		return types.Log{}, errors.New("nil event")
	}
	return e.Descriptor().EncodeLog(e.args()...)
}

// DecodeLog decodes a raw log into the matching <Name>Event value. Logs
// whose topic 0 is unknown, or whose body does not fit the event, yield an
// *abi.InvalidLogError.
func DecodeLog(log types.Log) (Events, error) {
	return eventTable.Decode(log)
}

// Selector returns the selector of c.
func Selector(c Calls) abi.Selector { return c.Descriptor().Selector() }

// CallSelectors returns every function selector in ascending order.
func CallSelectors() []abi.Selector { return callTable.Selectors() }

// ErrorSelectors returns every custom error selector in ascending order.
func ErrorSelectors() []abi.Selector { return errorTable.Selectors() }

// EventTopics returns the topic of every event.
func EventTopics() []common.Hash { return eventTable.Topics() }

// ValidCallSelector reports whether sel is a TangleToken function.
func ValidCallSelector(sel abi.Selector) bool { return callTable.Valid(sel) }

// ValidErrorSelector reports whether sel is a TangleToken custom error.
func ValidErrorSelector(sel abi.Selector) bool { return errorTable.Valid(sel) }

// ValidEventTopic reports whether topic is a TangleToken event.
func ValidEventTopic(topic common.Hash) bool { return eventTable.Valid(topic) }
