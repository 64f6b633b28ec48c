package wallet

import (
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// EIP-712 type strings used by the token's permit and delegateBySig.
const (
	DomainType     = "EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"
	PermitType     = "Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)"
	DelegationType = "Delegation(address delegatee,uint256 nonce,uint256 expiry)"
)

var (
	domainTypeHash     = crypto.Keccak256Hash([]byte(DomainType))
	permitTypeHash     = crypto.Keccak256Hash([]byte(PermitType))
	delegationTypeHash = crypto.Keccak256Hash([]byte(DelegationType))

	domainSchema     = mustWords("bytes32", "bytes32", "bytes32", "uint256", "address")
	permitSchema     = mustWords("bytes32", "address", "address", "uint256", "uint256", "uint256")
	delegationSchema = mustWords("bytes32", "address", "uint256", "uint256")
)

func mustWords(types ...string) *abi.Schema {
	params := make([]abi.Param, len(types))
	for i, t := range types {
		params[i] = abi.Param{Type: t}
	}
	s, err := abi.NewSchema(params)
	if err != nil {
		panic(err)
	}
	return s
}

// Domain is the EIP-712 domain of a token, as reported by eip712Domain().
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// Separator returns the domain separator.
func (d Domain) Separator() (common.Hash, error) {
	if d.ChainID == nil {
		return common.Hash{}, fmt.Errorf("domain chain id is not set")
	}
	enc, err := domainSchema.Encode(
		[32]byte(domainTypeHash),
		[32]byte(crypto.Keccak256Hash([]byte(d.Name))),
		[32]byte(crypto.Keccak256Hash([]byte(d.Version))),
		d.ChainID,
		d.VerifyingContract,
	)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

// Permit is the EIP-2612 permit message.
type Permit struct {
	Owner    common.Address
	Spender  common.Address
	Value    *big.Int
	Nonce    *big.Int
	Deadline *big.Int
}

func (p Permit) structHash() (common.Hash, error) {
	enc, err := permitSchema.Encode([32]byte(permitTypeHash), p.Owner, p.Spender, p.Value, p.Nonce, p.Deadline)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

// Delegation is the ERC-5805 delegateBySig message.
type Delegation struct {
	Delegatee common.Address
	Nonce     *big.Int
	Expiry    *big.Int
}

func (d Delegation) structHash() (common.Hash, error) {
	enc, err := delegationSchema.Encode([32]byte(delegationTypeHash), d.Delegatee, d.Nonce, d.Expiry)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

// TypedDataDigest returns keccak256(0x1901 ‖ domainSeparator ‖ structHash).
func TypedDataDigest(domainSeparator, structHash common.Hash) common.Hash {
	return crypto.Keccak256Hash([]byte{0x19, 0x01}, domainSeparator.Bytes(), structHash.Bytes())
}

// PermitDigest is the digest the owner signs for permit.
func PermitDigest(d Domain, p Permit) (common.Hash, error) {
	return digest(d, p.structHash)
}

// DelegationDigest is the digest the delegator signs for delegateBySig.
func DelegationDigest(d Domain, del Delegation) (common.Hash, error) {
	return digest(d, del.structHash)
}

func digest(d Domain, structHash func() (common.Hash, error)) (common.Hash, error) {
	sep, err := d.Separator()
	if err != nil {
		return common.Hash{}, err
	}
	sh, err := structHash()
	if err != nil {
		return common.Hash{}, err
	}
	return TypedDataDigest(sep, sh), nil
}

// Signature is a secp256k1 signature split the way permit and
// delegateBySig take it.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// SplitSignature splits R || S || V. V is normalised to 27/28.
func SplitSignature(sig []byte) (Signature, error) {
	var out Signature
	if len(sig) != 65 {
		return out, fmt.Errorf("invalid signature length: expected 65 bytes, got %d", len(sig))
	}
	copy(out.R[:], sig[:32])
	copy(out.S[:], sig[32:64])
	out.V = sig[64]
	if out.V < 27 {
		out.V += 27
	}
	return out, nil
}

// Bytes joins the signature back into R || S || V.
func (s Signature) Bytes() []byte {
	out := make([]byte, 0, 65)
	out = append(out, s.R[:]...)
	out = append(out, s.S[:]...)
	return append(out, s.V)
}

// SignPermit signs a permit for the token described by d. The signer must
// be the permit owner.
func (s *Signer) SignPermit(d Domain, p Permit) (Signature, common.Hash, error) {
	if p.Owner != s.Address() {
		return Signature{}, common.Hash{}, fmt.Errorf("permit owner %s is not the signing wallet %s", p.Owner.Hex(), s.Address().Hex())
	}
	h, err := PermitDigest(d, p)
	if err != nil {
		return Signature{}, common.Hash{}, err
	}
	return s.signDigest(h)
}

// SignDelegation signs a delegateBySig message.
func (s *Signer) SignDelegation(d Domain, del Delegation) (Signature, common.Hash, error) {
	h, err := DelegationDigest(d, del)
	if err != nil {
		return Signature{}, common.Hash{}, err
	}
	return s.signDigest(h)
}

func (s *Signer) signDigest(h common.Hash) (Signature, common.Hash, error) {
	raw, err := s.SignHash(h)
	if err != nil {
		return Signature{}, h, err
	}
	sig, err := SplitSignature(raw)
	return sig, h, err
}
