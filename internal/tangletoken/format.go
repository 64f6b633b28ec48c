package tangletoken

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// describeError renders e as Name(field=value, ...).
func describeError(e Errors) string {
	d := e.Descriptor()
	params := d.Inputs.Params()
	args := e.args()
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = params[i].Name + "=" + FormatValue(a)
	}
	return d.Name + "(" + strings.Join(parts, ", ") + ")"
}

// FormatValue renders a decoded ABI value for display: addresses in
// checksum form, byte arrays as 0x hex, integers in decimal.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case common.Address:
		return x.Hex()
	case common.Hash:
		return x.Hex()
	case [32]byte:
		return hexutil.Encode(x[:])
	case []byte:
		return hexutil.Encode(x)
	case *big.Int:
		if x == nil {
			return "<nil>"
		}
		return x.String()
	case string:
		return fmt.Sprintf("%q", x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
		fallthrough
	case reflect.Slice:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Struct:
		t := rv.Type()
		parts := make([]string, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			parts = append(parts, t.Field(i).Name+"="+FormatValue(rv.Field(i).Interface()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v)
}

// Fields lists the exported fields of a decoded call, error, event or
// return value in declaration order, each rendered with FormatValue.
func Fields(v any) [][2]string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	t := rv.Type()
	out := make([][2]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		out = append(out, [2]string{t.Field(i).Name, FormatValue(rv.Field(i).Interface())})
	}
	return out
}

// toAny widens a topic filter slice. Fixed 32-byte values become
// common.Hash so they are matched verbatim.
func toAny[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		if b, ok := any(x).([32]byte); ok {
			out[i] = common.Hash(b)
			continue
		}
		out[i] = x
	}
	return out
}
