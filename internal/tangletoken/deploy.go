package tangletoken

import (
	"context"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// ErrNoBytecode is returned when Deploy is given empty creation code.
var ErrNoBytecode = errors.New("no deployment bytecode")

// DeployTx sends a contract creation transaction for the token
// implementation. No creation code is compiled into this package: bytecode
// must come from a Hardhat or Foundry artifact (contract.LoadArtifactFull),
// and empty bytecode fails with ErrNoBytecode. The returned Instance is
// bound to the address the contract will have once the transaction is mined.
func DeployTx(ctx context.Context, provider chain.Provider, signer chain.TxSigner, bytecode []byte, opts ...Option) (*Instance, *types.Transaction, error) {
	if len(bytecode) == 0 {
		return nil, nil, ErrNoBytecode
	}
	ctorArgs, err := tokenABI.Constructor.Encode()
	if err != nil {
		return nil, nil, errors.Wrap(err, "encoding constructor")
	}
	t := New(common.Address{}, provider, opts...)
	data := append(append([]byte(nil), bytecode...), ctorArgs...)
	tx, err := t.tx.Send(ctx, signer, chain.TxRequest{Data: data})
	if err != nil {
		return nil, nil, asRevert(err)
	}
	t.address = crypto.CreateAddress(signer.Address(), tx.Nonce())
	t.log.Debug().Str("hash", tx.Hash().Hex()).Str("address", t.address.Hex()).Msg("Deployment sent")
	return t, tx, nil
}

// Deploy sends the creation transaction and waits for it to be mined.
// bytecode is artifact creation code, as for DeployTx; there is no
// built-in default.
func Deploy(ctx context.Context, provider chain.Provider, signer chain.TxSigner, bytecode []byte, opts ...Option) (*Instance, *types.Receipt, error) {
	t, tx, err := DeployTx(ctx, provider, signer, bytecode, opts...)
	if err != nil {
		return nil, nil, err
	}
	receipt, err := t.tx.Wait(ctx, tx.Hash())
	if err != nil {
		return nil, receipt, err
	}
	if receipt.ContractAddress != (common.Address{}) && receipt.ContractAddress != t.address {
		return nil, receipt, errors.Errorf("contract deployed at %s, expected %s", receipt.ContractAddress.Hex(), t.address.Hex())
	}
	return t, receipt, nil
}
