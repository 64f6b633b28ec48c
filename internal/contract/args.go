package contract

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseArgs converts command-line strings into Go values for params.
func ParseArgs(params []abi.Param, args []string) ([]any, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("expected %d arguments (%s), got %d", len(params), describeParams(params), len(args))
	}
	out := make([]any, len(params))
	for i, p := range params {
		v, err := ParseArg(p.Type, args[i])
		if err != nil {
			name := p.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, p.Type, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseArg converts one string to the Go type the codec expects for typ.
// Integers accept decimal or 0x hex; byte types take 0x hex.
func ParseArg(typ, val string) (any, error) {
	t, err := ethabi.NewType(typ, "", nil)
	if err != nil {
		return nil, fmt.Errorf("unsupported type: %w", err)
	}
	val = strings.TrimSpace(val)

	switch t.T {
	case ethabi.AddressTy:
		if !common.IsHexAddress(val) {
			return nil, fmt.Errorf("invalid address %q", val)
		}
		return common.HexToAddress(val), nil

	case ethabi.BoolTy:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", val)
		}
		return b, nil

	case ethabi.StringTy:
		return val, nil

	case ethabi.BytesTy:
		b, err := hexutil.Decode(val)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", val, err)
		}
		return b, nil

	case ethabi.FixedBytesTy:
		b, err := hexutil.Decode(val)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", val, err)
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case ethabi.UintTy, ethabi.IntTy:
		return parseInteger(t, val)
	}
	return nil, fmt.Errorf("type %s cannot be given on the command line", typ)
}

func parseInteger(t ethabi.Type, val string) (any, error) {
	n, ok := new(big.Int).SetString(strings.ReplaceAll(val, "_", ""), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", val)
	}
	if t.T == ethabi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for unsigned type", n)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s overflows uint%d", n, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%s overflows int%d", n, t.Size)
		}
	}

	rt := t.GetType()
	if rt.Kind() == reflect.Ptr {
		return n, nil
	}
	v := reflect.New(rt).Elem()
	if t.T == ethabi.UintTy {
		v.SetUint(n.Uint64())
	} else {
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}

func describeParams(params []abi.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strings.TrimSpace(p.Type + " " + p.Name)
	}
	return strings.Join(parts, ", ")
}
