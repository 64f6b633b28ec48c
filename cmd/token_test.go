package cmd

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/testutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		raw  bool
		want string
		err  bool
	}{
		{"1", false, "1000000000000000000", false},
		{"1.5", false, "1500000000000000000", false},
		{"0.000000000000000001", false, "1", false},
		{"1000", true, "1000", false},
		{"0x10", true, "16", false},
		{"-1", true, "", true},
		{"abc", false, "", true},
		{"1.5", true, "", true},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", true, "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639941", true, "", true},
		{"0x1" + strings.Repeat("0", 64), true, "", true},
		{"2" + strings.Repeat("0", 59), false, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in, tt.raw)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	n, _ := new(big.Int).SetString("2500000000000000000", 10)
	assert.Equal(t, "2.5 TNT", formatAmount(n, "TNT"))
	assert.Equal(t, "2.5", formatAmount(n, ""))
}

func TestParseDeadline(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	got, err := parseDeadline("1h", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_003_600), got.Int64())

	got, err = parseDeadline("1800000000", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1_800_000_000), got.Int64())

	for _, bad := range []string{"soon", "-5", "7d"} {
		_, err := parseDeadline(bad, now)
		assert.Error(t, err, bad)
	}
}

func TestBlockArg(t *testing.T) {
	assert.Nil(t, blockArg(-1))
	assert.Equal(t, int64(0), blockArg(0).Int64())
	assert.Equal(t, int64(42), blockArg(42).Int64())
}

func TestTransferHistory(t *testing.T) {
	alice := common.HexToAddress(hardhatAddr)
	bob := common.HexToAddress(otherAddr)
	token := common.HexToAddress(tokenHex)

	mk := func(from, to common.Address, value int64, block uint64, index uint) types.Log {
		l, err := tangletoken.EncodeLog(tangletoken.TransferEvent{From: from, To: to, Value: big.NewInt(value)})
		require.NoError(t, err)
		l.Address = token
		l.BlockNumber = block
		l.Index = index
		l.TxHash = common.BigToHash(big.NewInt(int64(block)))
		return l
	}

	p := testutil.NewFakeProvider()
	p.Logs = []types.Log{
		mk(bob, alice, 2, 20, 0),
		mk(alice, bob, 1, 10, 0),
		mk(alice, alice, 3, 20, 1), // self transfer matches both queries
		mk(bob, bob, 4, 15, 0),
	}

	logs, err := transferHistory(context.Background(), tangletoken.New(token, p), alice, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	values := make([]int64, len(logs))
	for i, l := range logs {
		values[i] = l.Event.Value.Int64()
	}
	assert.Equal(t, []int64{1, 2, 3}, values)
	assert.Len(t, p.Queries, 2)
}

func word(n int64) string {
	return hexutil.Encode(common.LeftPadBytes(big.NewInt(n).Bytes(), 32))
}

func TestCallCommand(t *testing.T) {
	srv := testutil.NewRPCServer(t, map[string]testutil.RPCHandler{
		"eth_call": func(params []json.RawMessage) (any, *testutil.RPCError) {
			var msg struct {
				Input string `json:"input"`
				Data  string `json:"data"`
			}
			if err := json.Unmarshal(params[0], &msg); err != nil {
				return nil, &testutil.RPCError{Code: -32602, Message: err.Error()}
			}
			input := msg.Input + msg.Data
			if !strings.HasPrefix(input, "0x70a08231") {
				return nil, &testutil.RPCError{Code: -32000, Message: "unexpected call " + input}
			}
			return word(1000), nil
		},
	})

	c := newCLI(t)
	out := c.mustRun("--rpc", srv.URL, "--token", tokenHex, "call", "balanceOf", otherAddr)
	assert.Contains(t, out, "balanceOf(address)")
	assert.Contains(t, out, "1000")
	assert.Contains(t, srv.Methods(), "eth_call")
}

func TestCallCommand_RejectsWriteFunction(t *testing.T) {
	c := newCLI(t)
	_, _, err := c.run("", "--token", tokenHex, "call", "transfer", otherAddr, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a read function")
}

func TestCallCommand_DecodesRevert(t *testing.T) {
	revert, err := tangletoken.EncodeError(tangletoken.ERC20InsufficientBalance{
		Sender:  common.HexToAddress(otherAddr),
		Balance: big.NewInt(5),
		Needed:  big.NewInt(10),
	})
	require.NoError(t, err)

	srv := testutil.NewRPCServer(t, map[string]testutil.RPCHandler{
		"eth_call": func([]json.RawMessage) (any, *testutil.RPCError) {
			return nil, &testutil.RPCError{Code: 3, Message: "execution reverted", Data: hexutil.Encode(revert)}
		},
	})

	c := newCLI(t)
	_, errOut, err := c.run("", "--rpc", srv.URL, "--token", tokenHex, "call", "totalSupply")
	require.Error(t, err)
	var rev *tangletoken.RevertError
	require.ErrorAs(t, err, &rev)
	assert.Contains(t, errOut, "Reverted")
	assert.Contains(t, errOut, "ERC20InsufficientBalance")
}

func TestTokenBalanceCommand(t *testing.T) {
	symbol := "0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000003" +
		"544e540000000000000000000000000000000000000000000000000000000000"

	srv := testutil.NewRPCServer(t, map[string]testutil.RPCHandler{
		"eth_call": func(params []json.RawMessage) (any, *testutil.RPCError) {
			raw := string(params[0])
			switch {
			case strings.Contains(raw, "0x70a08231"):
				return hexutil.Encode(common.LeftPadBytes(new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18)).Bytes(), 32)), nil
			case strings.Contains(raw, "0x95d89b41"):
				return symbol, nil
			}
			return nil, &testutil.RPCError{Code: -32000, Message: "unexpected call"}
		},
	})

	c := newCLI(t)
	c.mustRun("wallet", "add", "bob", otherAddr)
	out := c.mustRun("--rpc", srv.URL, "--token", tokenHex, "token", "balance", "bob")
	assert.Contains(t, out, "3 TNT")
}
