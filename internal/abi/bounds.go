package abi

import (
	"fmt"
	"math/big"
	"reflect"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// checkValues walks values against args and rejects nil integers and
// integers that do not fit their declared width. go-ethereum packs an
// oversized *big.Int modulo 2^256 and unpacks a full word into a narrower
// type without complaint, so both directions go through here.
func checkValues(args ethabi.Arguments, values []any) error {
	for i, a := range args {
		if i >= len(values) {
			break
		}
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if err := checkValue(a.Type, reflect.ValueOf(values[i]), name); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(t ethabi.Type, v reflect.Value, path string) error {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return &RangeError{Param: path, Type: t.String()}
	}

	switch t.T {
	case ethabi.IntTy, ethabi.UintTy:
		if !v.CanInterface() {
			return nil
		}
		n, ok := v.Interface().(*big.Int)
		if !ok {
			// uint8..uint64 and their signed peers map to native Go ints
			return nil
		}
		if n == nil {
			return &RangeError{Param: path, Type: t.String()}
		}
		if !fits(t, n) {
			return &RangeError{Param: path, Type: t.String(), Value: new(big.Int).Set(n)}
		}
	case ethabi.TupleTy:
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return &RangeError{Param: path, Type: t.String()}
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil
		}
		for i, elem := range t.TupleElems {
			raw := t.TupleRawNames[i]
			f := v.FieldByName(ethabi.ToCamelCase(raw))
			if !f.IsValid() && i < v.NumField() {
				f = v.Field(i)
			}
			if !f.IsValid() {
				continue
			}
			if err := checkValue(*elem, f, path+"."+raw); err != nil {
				return err
			}
		}
	case ethabi.SliceTy, ethabi.ArrayTy:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := checkValue(*t.Elem, v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// fits reports whether n is representable as t: [0, 2^N) for uintN and
// [-2^(N-1), 2^(N-1)) for intN.
func fits(t ethabi.Type, n *big.Int) bool {
	if t.T == ethabi.UintTy {
		return n.Sign() >= 0 && n.BitLen() <= t.Size
	}
	m := n
	if n.Sign() < 0 {
		m = new(big.Int).Not(n) // -n-1
	}
	return m.BitLen() <= t.Size-1
}
