package tangletoken

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCalls = []Calls{
	ClockModeCall{}, DefaultAdminRoleCall{}, DomainSeparatorCall{}, MaxSupplyCall{},
	MinterRoleCall{}, UpgraderRoleCall{}, UpgradeInterfaceVersionCall{}, AllowanceCall{},
	ApproveCall{}, BalanceOfCall{}, BurnCall{}, BurnFromCall{}, CheckpointsCall{},
	ClockCall{}, DecimalsCall{}, DelegateCall{}, DelegateBySigCall{}, DelegatesCall{},
	EIP712DomainCall{}, GetPastTotalSupplyCall{}, GetPastVotesCall{}, GetRoleAdminCall{},
	GetVotesCall{}, GrantRoleCall{}, HasRoleCall{}, InitializeCall{}, MintCall{}, NameCall{},
	NoncesCall{}, NumCheckpointsCall{}, PermitCall{}, ProxiableUUIDCall{}, RenounceRoleCall{},
	RevokeRoleCall{}, SupportsInterfaceCall{}, SymbolCall{}, TotalSupplyCall{}, TransferCall{},
	TransferFromCall{}, UpgradeToAndCallCall{},
}

var allErrors = []Errors{
	AccessControlBadConfirmation{}, AccessControlUnauthorizedAccount{}, AddressEmptyCode{},
	CheckpointUnorderedInsertion{}, ECDSAInvalidSignature{}, ECDSAInvalidSignatureLength{},
	ECDSAInvalidSignatureS{}, ERC1967InvalidImplementation{}, ERC1967NonPayable{},
	ERC20ExceededSafeSupply{}, ERC20InsufficientAllowance{}, ERC20InsufficientBalance{},
	ERC20InvalidApprover{}, ERC20InvalidReceiver{}, ERC20InvalidSender{}, ERC20InvalidSpender{},
	ERC2612ExpiredSignature{}, ERC2612InvalidSigner{}, ERC5805FutureLookup{},
	ERC6372InconsistentClock{}, FailedCall{}, InvalidAccountNonce{}, InvalidInitialization{},
	NotInitializing{}, SafeCastOverflowedUintDowncast{}, UUPSUnauthorizedCallContext{},
	UUPSUnsupportedProxiableUUID{}, VotesExpiredSignature{},
}

var allEvents = []Events{
	ApprovalEvent{}, DelegateChangedEvent{}, DelegateVotesChangedEvent{},
	EIP712DomainChangedEvent{}, InitializedEvent{}, RoleAdminChangedEvent{},
	RoleGrantedEvent{}, RoleRevokedEvent{}, TransferEvent{}, UpgradedEvent{},
}

// sample fills every field of a zero struct with distinct non-zero values.
func sample[T any](t *testing.T, zero T) T {
	t.Helper()
	v := reflect.New(reflect.TypeOf(zero)).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		n := int64(i + 1)
		switch f.Interface().(type) {
		case common.Address:
			f.Set(reflect.ValueOf(common.BigToAddress(big.NewInt(0x1000 + n))))
		case *big.Int:
			f.Set(reflect.ValueOf(big.NewInt(1000 * n)))
		case [32]byte:
			var b [32]byte
			b[0], b[31] = 0xab, byte(n)
			f.Set(reflect.ValueOf(b))
		case [4]byte:
			f.Set(reflect.ValueOf([4]byte{0x01, 0xff, 0xc9, 0xa7}))
		case []byte:
			f.Set(reflect.ValueOf([]byte{0xde, 0xad, byte(n)}))
		case string:
			f.SetString("sample")
		case bool:
			f.SetBool(true)
		default:
			switch f.Kind() {
			case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				f.SetUint(uint64(n + 26))
			default:
				t.Fatalf("%T: no sample for field %s", zero, v.Type().Field(i).Name)
			}
		}
	}
	return v.Interface().(T)
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, CallSelectors(), 40)
	assert.Len(t, ErrorSelectors(), 28)
	assert.Len(t, EventTopics(), 10)
	assert.Len(t, allCalls, len(ABI().Functions))
	assert.Len(t, allErrors, len(ABI().Errors))
	assert.Len(t, allEvents, len(ABI().Events))
}

func TestSelectorsSortedAndUnique(t *testing.T) {
	for _, sels := range [][]abi.Selector{CallSelectors(), ErrorSelectors()} {
		for i := 1; i < len(sels); i++ {
			assert.Negative(t, bytes.Compare(sels[i-1][:], sels[i][:]), "%s >= %s", sels[i-1], sels[i])
		}
	}
}

func TestSelectorsMatchSignatures(t *testing.T) {
	for _, c := range allCalls {
		fn := c.Descriptor()
		assert.Equal(t, abi.SelectorOf(fn.Signature()), Selector(c), fn.Signature())
		assert.True(t, ValidCallSelector(fn.Selector()))
	}
	for _, e := range allErrors {
		d := e.Descriptor()
		assert.Equal(t, abi.SelectorOf(d.Signature()), d.Selector(), d.Signature())
		assert.True(t, ValidErrorSelector(d.Selector()))
	}
	for _, e := range allEvents {
		d := e.Descriptor()
		assert.Equal(t, abi.TopicOf(d.Signature()), d.Topic(), d.Signature())
		assert.True(t, ValidEventTopic(d.Topic()))
	}
}

func TestKnownSelectors(t *testing.T) {
	tests := []struct {
		call Calls
		want string
	}{
		{TransferCall{}, "0xa9059cbb"},
		{TransferFromCall{}, "0x23b872dd"},
		{ApproveCall{}, "0x095ea7b3"},
		{BalanceOfCall{}, "0x70a08231"},
		{TotalSupplyCall{}, "0x18160ddd"},
		{CheckpointsCall{}, "0xf1127ed8"},
		{InitializeCall{}, "0xcd6dc687"},
		{MintCall{}, "0x40c10f19"},
		{PermitCall{}, "0xd505accf"},
		{DelegateBySigCall{}, "0xc3cda520"},
		{EIP712DomainCall{}, "0x84b0196e"},
		{UpgradeToAndCallCall{}, "0x4f1ef286"},
		{ClockModeCall{}, "0x4bf5d7e9"},
		{SupportsInterfaceCall{}, "0x01ffc9a7"},
	}
	for _, tt := range tests {
		t.Run(tt.call.Descriptor().Name, func(t *testing.T) {
			assert.Equal(t, tt.want, Selector(tt.call).String())
		})
	}

	assert.Equal(t, "0xe450d38c", ERC20InsufficientBalance{}.Descriptor().Selector().String())
	assert.Equal(t, "0xfb8f41b2", ERC20InsufficientAllowance{}.Descriptor().Selector().String())
	assert.Equal(t, "0xe2517d3f", AccessControlUnauthorizedAccount{}.Descriptor().Selector().String())
	assert.Equal(t, "0xd6bda275", FailedCall{}.Descriptor().Selector().String())

	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		TransferEvent{}.Descriptor().Topic().Hex())
	assert.Equal(t, "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925",
		ApprovalEvent{}.Descriptor().Topic().Hex())
	assert.Equal(t, "0x2f8788117e7eff1d82e926ec794901d17c78024a50270940304540a733656f0d",
		RoleGrantedEvent{}.Descriptor().Topic().Hex())
}

func TestCallRoundTrip(t *testing.T) {
	for _, zero := range allCalls {
		want := sample(t, zero)
		t.Run(want.Descriptor().Name, func(t *testing.T) {
			data, err := EncodeCall(want)
			require.NoError(t, err)
			assert.Equal(t, want.Descriptor().Selector().Bytes(), data[:4])

			got, err := DecodeCall(data)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestErrorRoundTrip(t *testing.T) {
	for _, zero := range allErrors {
		want := sample(t, zero)
		t.Run(want.Descriptor().Name, func(t *testing.T) {
			data, err := EncodeError(want)
			require.NoError(t, err)

			got, err := DecodeError(data)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	for _, zero := range allEvents {
		want := sample(t, zero)
		t.Run(want.Descriptor().Name, func(t *testing.T) {
			log, err := EncodeLog(want)
			require.NoError(t, err)
			require.NotEmpty(t, log.Topics)
			assert.Equal(t, want.Descriptor().Topic(), log.Topics[0])

			got, err := DecodeLog(log)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeTransfer(t *testing.T) {
	data, err := EncodeCall(TransferCall{
		To:    common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Value: big.NewInt(100),
	})
	require.NoError(t, err)

	want := "a9059cbb" +
		strings.Repeat("0", 24) + strings.Repeat("1", 40) +
		strings.Repeat("0", 62) + "64"
	assert.Equal(t, want, hex.EncodeToString(data))
	assert.Len(t, data, 68)
}

func TestDecodeCallErrors(t *testing.T) {
	_, err := DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.True(t, errors.Is(err, abi.ErrUnknownSelector))
	var unk *abi.UnknownSelectorError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, InterfaceName, unk.Interface)
	assert.Equal(t, "0xdeadbeef", unk.Selector.String())

	_, err = DecodeCall([]byte{0xa9, 0x05})
	assert.True(t, errors.Is(err, abi.ErrShortInput))

	// transfer selector with a truncated body
	_, err = DecodeCall([]byte{0xa9, 0x05, 0x9c, 0xbb, 0x00})
	var decErr *abi.DecodeError
	assert.True(t, errors.As(err, &decErr))
}

func TestDecodeTransferLog(t *testing.T) {
	from := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	to := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	log := types.Log{
		Topics: []common.Hash{
			TransferEvent{}.Descriptor().Topic(),
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.LeftPadBytes(big.NewInt(42).Bytes(), 32),
	}
	ev, err := DecodeLog(log)
	require.NoError(t, err)
	transfer, ok := ev.(TransferEvent)
	require.True(t, ok)
	assert.Equal(t, from, transfer.From)
	assert.Equal(t, to, transfer.To)
	assert.Equal(t, int64(42), transfer.Value.Int64())
}

func TestDecodeLogErrors(t *testing.T) {
	tests := []struct {
		name string
		log  types.Log
	}{
		{"no topics", types.Log{}},
		{"unknown topic", types.Log{Topics: []common.Hash{{0x01}}}},
		{"missing indexed topic", types.Log{
			Topics: []common.Hash{TransferEvent{}.Descriptor().Topic()},
			Data:   make([]byte, 32),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLog(tt.log)
			assert.True(t, errors.Is(err, abi.ErrInvalidLog))
			var inv *abi.InvalidLogError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tt.log.Topics, inv.Log.Topics)
		})
	}
}

func TestErrorString(t *testing.T) {
	e := ERC20InsufficientBalance{
		Sender:  common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Balance: big.NewInt(5),
		Needed:  big.NewInt(10),
	}
	assert.Equal(t,
		"ERC20InsufficientBalance(sender=0x2222222222222222222222222222222222222222, balance=5, needed=10)",
		e.Error())
	assert.Equal(t, "FailedCall()", FailedCall{}.Error())
}

// hasNilInt reports whether v has a nil *big.Int field.
func hasNilInt(v any) bool {
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.NumField(); i++ {
		if n, ok := rv.Field(i).Interface().(*big.Int); ok && n == nil {
			return true
		}
	}
	return false
}

func TestEncodeZeroValues(t *testing.T) {
	for _, zero := range allCalls {
		t.Run(zero.Descriptor().Name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = EncodeCall(zero) })
			if hasNilInt(zero) {
				assert.ErrorIs(t, err, abi.ErrOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
	for _, zero := range allErrors {
		t.Run(zero.Descriptor().Name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = EncodeError(zero) })
			if hasNilInt(zero) {
				assert.ErrorIs(t, err, abi.ErrOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := New(common.Address{}, nil).Transfer(common.HexToAddress("0x11"), nil).Calldata()
	assert.ErrorIs(t, err, abi.ErrOutOfRange)
}

func TestIntegerWidthBoundaries(t *testing.T) {
	pow2 := func(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }
	dec := func(n *big.Int) *big.Int { return new(big.Int).Sub(n, big.NewInt(1)) }
	to := common.HexToAddress("0x1111111111111111111111111111111111111111")

	t.Run("calls", func(t *testing.T) {
		tests := []struct {
			name string
			call Calls
			ok   bool
		}{
			{"transfer uint256 max", TransferCall{To: to, Value: dec(pow2(256))}, true},
			{"transfer 2^256", TransferCall{To: to, Value: pow2(256)}, false},
			{"transfer 2^256+5", TransferCall{To: to, Value: new(big.Int).Add(pow2(256), big.NewInt(5))}, false},
			{"transfer negative", TransferCall{To: to, Value: big.NewInt(-1)}, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := EncodeCall(tt.call)
				if !tt.ok {
					assert.ErrorIs(t, err, abi.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				got, err := DecodeCall(data)
				require.NoError(t, err)
				assert.Equal(t, tt.call, got)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name  string
			clock *big.Int
			ok    bool
		}{
			{"uint48 max", dec(pow2(48)), true},
			{"uint48 max+1", pow2(48), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				want := ERC5805FutureLookup{Timepoint: dec(pow2(256)), Clock: tt.clock}
				data, err := EncodeError(want)
				if !tt.ok {
					assert.ErrorIs(t, err, abi.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				got, err := DecodeError(data)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	})

	t.Run("checkpoint returns", func(t *testing.T) {
		fn := CheckpointsCall{}.Descriptor()
		tests := []struct {
			name  string
			key   *big.Int
			value *big.Int
			ok    bool
		}{
			{"maximums", dec(pow2(48)), dec(pow2(208)), true},
			{"key max+1", pow2(48), big.NewInt(1), false},
			{"value max+1", big.NewInt(1), pow2(208), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := fn.EncodeReturns(Checkpoint208{Key: tt.key, Value: tt.value})
				if !tt.ok {
					assert.ErrorIs(t, err, abi.ErrOutOfRange)
					return
				}
				require.NoError(t, err)
				var out CheckpointsReturn
				require.NoError(t, fn.DecodeReturns(data, &out))
				assert.Equal(t, 0, tt.key.Cmp(out.Checkpoint.Key))
				assert.Equal(t, 0, tt.value.Cmp(out.Checkpoint.Value))
			})
		}
	})

	t.Run("dirty high bits", func(t *testing.T) {
		word := func(b byte) []byte { return bytes.Repeat([]byte{b}, 32) }
		fn := CheckpointsCall{}.Descriptor()

		var out CheckpointsReturn
		err := fn.DecodeReturns(append(word(0xff), word(0x00)...), &out)
		var derr *abi.DecodeError
		require.ErrorAs(t, err, &derr)
		assert.ErrorIs(t, err, abi.ErrOutOfRange)

		// uint208 value with bit 208 set
		high := word(0x00)
		high[5] = 0x01
		err = fn.DecodeReturns(append(word(0x00), high...), &out)
		assert.ErrorIs(t, err, abi.ErrOutOfRange)
	})
}
