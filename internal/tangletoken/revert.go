package tangletoken

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// RevertError is a reverted call or transaction with its revert data
// decoded. Decoded is set for TangleToken custom errors, Reason for
// Error(string) and Panic(uint256) payloads.
type RevertError struct {
	Data    []byte
	Decoded Errors
	Reason  string
	Err     error
}

func (e *RevertError) Error() string {
	switch {
	case e.Decoded != nil:
		return "execution reverted: " + e.Decoded.Error()
	case e.Reason != "":
		return "execution reverted: " + e.Reason
	case len(e.Data) > 0:
		return "execution reverted: unrecognised data " + hexutil.Encode(e.Data)
	case e.Err != nil:
		return e.Err.Error()
	}
	return "execution reverted"
}

func (e *RevertError) Unwrap() error { return e.Err }

// ParseRevert decodes revert data. Unknown payloads are kept raw.
func ParseRevert(data []byte) *RevertError {
	r := &RevertError{Data: data}
	if len(data) == 0 {
		return r
	}
	if decoded, err := DecodeError(data); err == nil {
		r.Decoded = decoded
		return r
	}
	if reason, err := ethabi.UnpackRevert(data); err == nil {
		r.Reason = reason
	}
	return r
}

// asRevert turns a JSON-RPC error carrying revert data into a
// *RevertError. Other errors are returned unchanged.
func asRevert(err error) error {
	if err == nil {
		return nil
	}
	var de rpc.DataError
	if !errors.As(err, &de) {
		return err
	}
	data, ok := revertData(de.ErrorData())
	if !ok {
		return err
	}
	r := ParseRevert(data)
	r.Err = err
	return r
}

func revertData(v any) ([]byte, bool) {
	switch d := v.(type) {
	case string:
		b, err := hexutil.Decode(d)
		return b, err == nil
	case []byte:
		return d, true
	}
	return nil, false
}
