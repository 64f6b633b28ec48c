// Package testutil holds fakes shared by package tests.
package testutil

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// FakeProvider is an in-memory chain.Provider. Sent transactions get a
// successful receipt after PendingPolls lookups.
type FakeProvider struct {
	mu sync.Mutex

	ChainIDValue *big.Int
	BaseFee      *big.Int
	Tip          *big.Int
	Gas          uint64
	Nonce        uint64
	PendingPolls int

	// CallFn answers eth_call. Nil returns empty data.
	CallFn      func(msg ethereum.CallMsg, block *big.Int) ([]byte, error)
	EstimateErr error
	SendErr     error
	Logs        []types.Log

	Calls     []ethereum.CallMsg
	Blocks    []*big.Int
	Queries   []ethereum.FilterQuery
	Sent      []*types.Transaction
	Receipts  map[common.Hash]*types.Receipt
	polls     map[common.Hash]int
	Estimates []ethereum.CallMsg
}

// NewFakeProvider returns a provider for chain 31337 with a 1 gwei base fee.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		ChainIDValue: big.NewInt(31337),
		BaseFee:      big.NewInt(1_000_000_000),
		Tip:          big.NewInt(2_000_000_000),
		Gas:          90_000,
		Receipts:     make(map[common.Hash]*types.Receipt),
		polls:        make(map[common.Hash]int),
	}
}

func (f *FakeProvider) CallContract(_ context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, msg)
	f.Blocks = append(f.Blocks, block)
	fn := f.CallFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(msg, block)
}

func (f *FakeProvider) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Estimates = append(f.Estimates, msg)
	if f.EstimateErr != nil {
		return 0, f.EstimateErr
	}
	return f.Gas, nil
}

// FilterLogs applies address, block range and topic constraints to Logs.
func (f *FakeProvider) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, q)
	var out []types.Log
	for _, l := range f.Logs {
		if matchLog(l, q) {
			out = append(out, l)
		}
	}
	return out, nil
}

func matchLog(l types.Log, q ethereum.FilterQuery) bool {
	if len(q.Addresses) > 0 {
		found := false
		for _, a := range q.Addresses {
			if a == l.Address {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.FromBlock != nil && l.BlockNumber < q.FromBlock.Uint64() {
		return false
	}
	if q.ToBlock != nil && l.BlockNumber > q.ToBlock.Uint64() {
		return false
	}
	if len(q.Topics) > len(l.Topics) {
		return false
	}
	for i, alts := range q.Topics {
		if len(alts) == 0 {
			continue
		}
		ok := false
		for _, t := range alts {
			if t == l.Topics[i] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func (f *FakeProvider) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return f.SendErr
	}
	f.Sent = append(f.Sent, tx)
	receipt := &types.Receipt{
		Type:        tx.Type(),
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		GasUsed:     tx.Gas(),
		BlockNumber: big.NewInt(int64(len(f.Sent))),
	}
	if tx.To() == nil {
		if from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx); err == nil {
			receipt.ContractAddress = crypto.CreateAddress(from, tx.Nonce())
		}
	}
	f.Receipts[tx.Hash()] = receipt
	f.Nonce++
	return nil
}

func (f *FakeProvider) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Nonce, nil
}

func (f *FakeProvider) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.Tip), nil
}

func (f *FakeProvider) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	h := &types.Header{Number: big.NewInt(100)}
	if f.BaseFee != nil {
		h.BaseFee = new(big.Int).Set(f.BaseFee)
	}
	return h, nil
}

func (f *FakeProvider) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.ChainIDValue), nil
}

func (f *FakeProvider) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.Receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	if f.polls[hash] < f.PendingPolls {
		f.polls[hash]++
		return nil, ethereum.NotFound
	}
	return r, nil
}

// KeySigner signs with a raw private key.
type KeySigner struct {
	Key *ecdsa.PrivateKey
}

// NewKeySigner generates a fresh key.
func NewKeySigner() *KeySigner {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return &KeySigner{Key: key}
}

func (s *KeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

func (s *KeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.Key)
}
