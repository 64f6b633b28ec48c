package contract_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/contract"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/testutil"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holder = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func TestPrepare(t *testing.T) {
	call, err := contract.Prepare("transfer", []string{holder.Hex(), "100"})
	require.NoError(t, err)
	assert.Equal(t, tangletoken.TransferCall{To: holder, Value: big.NewInt(100)}, call)

	_, err = contract.Prepare("nope", nil)
	assert.Error(t, err)
	_, err = contract.Prepare("transfer", []string{holder.Hex()})
	assert.Error(t, err)
}

func TestCallerCall(t *testing.T) {
	p := testutil.NewFakeProvider()
	p.CallFn = func(msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		return tangletoken.BalanceOfCall{}.Descriptor().EncodeReturns(big.NewInt(1234))
	}
	tok := tangletoken.New(common.HexToAddress(tokenHex), p)

	results, err := contract.NewCaller(tok).From(holder).Call(context.Background(), "balanceOf", holder.Hex())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1234", results[0].Value)
	assert.Equal(t, "uint256", results[0].Type)
	assert.Equal(t, holder, p.Calls[0].From)
}

func TestCallerRejectsWriteFunction(t *testing.T) {
	tok := tangletoken.New(common.HexToAddress(tokenHex), testutil.NewFakeProvider())
	_, err := contract.NewCaller(tok).Call(context.Background(), "transfer", holder.Hex(), "1")
	assert.ErrorContains(t, err, "not a read function")
}

func TestSenderSendAndWait(t *testing.T) {
	p := testutil.NewFakeProvider()
	tok := tangletoken.New(common.HexToAddress(tokenHex), p, tangletoken.WithPollInterval(time.Millisecond))
	signer := testutil.NewKeySigner()

	receipt, err := contract.NewSender(tok, signer).SendAndWait(context.Background(), "mint", holder.Hex(), "5000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.Status)

	require.Len(t, p.Sent, 1)
	call, err := tangletoken.DecodeCall(p.Sent[0].Data())
	require.NoError(t, err)
	assert.Equal(t, tangletoken.MintCall{To: holder, Amount: big.NewInt(5000)}, call)
}

func TestSenderRejects(t *testing.T) {
	tok := tangletoken.New(common.HexToAddress(tokenHex), testutil.NewFakeProvider())
	s := contract.NewSender(tok, testutil.NewKeySigner())

	_, err := s.Send(context.Background(), "balanceOf", holder.Hex())
	assert.ErrorContains(t, err, "not a write function")

	_, err = s.Value(big.NewInt(1)).Send(context.Background(), "transfer", holder.Hex(), "1")
	assert.ErrorContains(t, err, "not payable")
}
