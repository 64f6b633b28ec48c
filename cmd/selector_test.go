package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// normalizeSignature
// ---------------------------------------------------------------------------

func TestNormalizeSignature_AlreadyCanonical(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address,uint256)"))
}

func TestNormalizeSignature_WithNames(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address to, uint256 amount)"))
}

func TestNormalizeSignature_NoParams(t *testing.T) {
	assert.Equal(t, "name()", normalizeSignature("name()"))
}

func TestNormalizeSignature_SingleParam(t *testing.T) {
	assert.Equal(t, "balanceOf(address)", normalizeSignature("balanceOf(address account)"))
}

func TestNormalizeSignature_ThreeParams(t *testing.T) {
	assert.Equal(t, "transferFrom(address,address,uint256)", normalizeSignature("transferFrom(address from, address to, uint256 amount)"))
}

func TestNormalizeSignature_NoParens(t *testing.T) {
	// Edge case: no parentheses.
	assert.Equal(t, "noop", normalizeSignature("noop"))
}

func TestNormalizeSignature_ExtraSpaces(t *testing.T) {
	assert.Equal(t, "approve(address,uint256)", normalizeSignature("approve(  address  spender ,  uint256  amount  )"))
}

// ---------------------------------------------------------------------------
// computeEventTopic
// ---------------------------------------------------------------------------

func TestComputeEventTopic_Transfer(t *testing.T) {
	topic := computeEventTopic("Transfer(address,address,uint256)")
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", topic)
}

func TestComputeEventTopic_Approval(t *testing.T) {
	topic := computeEventTopic("Approval(address,address,uint256)")
	assert.Equal(t, "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925", topic)
}

func TestComputeEventTopic_Deterministic(t *testing.T) {
	t1 := computeEventTopic("Transfer(address,address,uint256)")
	t2 := computeEventTopic("Transfer(address,address,uint256)")
	assert.Equal(t, t1, t2)
}

// ---------------------------------------------------------------------------
// lookupSelector
// ---------------------------------------------------------------------------

func pairValue(pairs [][2]string, key string) string {
	for _, p := range pairs {
		if p[0] == key {
			return p[1]
		}
	}
	return ""
}

func TestLookupSelector(t *testing.T) {
	tests := []struct {
		input string
		key   string
		want  string
	}{
		{"0xa9059cbb", "Signature", "transfer(address,uint256)"},
		{"0xF1127ED8", "Signature", "checkpoints(address,uint32)"},
		{"0xe450d38c", "Signature", "ERC20InsufficientBalance(address,uint256,uint256)"},
		{"0xd6bda275", "Signature", "FailedCall()"},
		{"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", "Signature", "Transfer(address,address,uint256)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pairs, err := lookupSelector(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pairValue(pairs, tt.key))
		})
	}
}

func TestLookupSelector_Unknown(t *testing.T) {
	_, err := lookupSelector("0xdeadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not part of the TangleToken ABI")

	_, err = lookupSelector("0x" + strings.Repeat("ab", 32))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a TangleToken event")

	_, err = lookupSelector("0xabc")
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// selectorRows
// ---------------------------------------------------------------------------

func TestSelectorRows(t *testing.T) {
	for _, kind := range []string{"functions", "errors", "events"} {
		rows, err := selectorRows(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, rows, kind)
		for _, r := range rows {
			assert.True(t, strings.HasPrefix(r[0], "0x"), r[0])
			assert.Contains(t, r[1], "(")
		}
	}
	_, err := selectorRows("structs")
	assert.Error(t, err)
}

func TestSelectorCommand(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("selector", "transfer(address to, uint256 value)")
	assert.Contains(t, out, "0xa9059cbb")
	assert.Contains(t, out, "function transfer")

	out = c.mustRun("selectors", "errors")
	assert.Contains(t, out, "0xe450d38c")
	assert.Contains(t, out, "ERC20InsufficientBalance(address,uint256,uint256)")
}
