package abi

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Selector is the 4-byte identifier of a function or custom error.
type Selector [4]byte

// String returns the 0x-prefixed hex form, e.g. "0xa9059cbb".
func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// Bytes returns a copy of the selector as a byte slice.
func (s Selector) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

// Compare orders selectors by their big-endian byte value.
func (s Selector) Compare(other Selector) int {
	return bytes.Compare(s[:], other[:])
}

// ParseSelector parses a hex selector with or without the 0x prefix.
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	clean := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(clean) != 8 {
		return sel, errors.Errorf("selector must be 4 bytes, got %q", s)
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return sel, errors.Wrapf(err, "invalid selector %q", s)
	}
	copy(sel[:], raw)
	return sel, nil
}

// ExtractSelector returns the leading selector of a call or revert payload.
func ExtractSelector(data []byte) (Selector, error) {
	var sel Selector
	if len(data) < len(sel) {
		return sel, errors.WithStack(ErrShortInput)
	}
	copy(sel[:], data)
	return sel, nil
}

// Keccak256 hashes the concatenation of data with legacy Keccak-256.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// SelectorOf computes keccak256(signature)[0:4].
func SelectorOf(signature string) Selector {
	var sel Selector
	copy(sel[:], Keccak256([]byte(signature)))
	return sel
}

// TopicOf computes the full keccak256 hash of an event signature.
func TopicOf(signature string) common.Hash {
	return common.BytesToHash(Keccak256([]byte(signature)))
}
