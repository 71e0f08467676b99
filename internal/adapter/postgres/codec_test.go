package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "1000000000000000000", maxUint256} {
		v, err := amount(s)
		require.NoError(t, err, s)

		n := numeric(v)
		assert.True(t, n.Valid)
		assert.Zero(t, n.Exp)
		assert.Equal(t, s, n.Int.String())
	}
}

func TestNumericNil(t *testing.T) {
	n := numeric(nil)
	assert.True(t, n.Valid)
	assert.Equal(t, "0", n.Int.String())
}

func TestAmountRejects(t *testing.T) {
	for _, s := range []string{"-1", "1.5", "0x10", maxUint256 + "0"} {
		_, err := amount(s)
		assert.Error(t, err, s)
	}
}

func TestAmounts(t *testing.T) {
	var a, b *uint256.Int
	require.NoError(t, amounts(&a, "7", &b, "42"))
	assert.Equal(t, uint64(7), a.Uint64())
	assert.Equal(t, uint64(42), b.Uint64())

	require.Error(t, amounts(&a, "x"))
	require.Error(t, amounts("7", "7"))
}

func TestAddressText(t *testing.T) {
	a := common.HexToAddress("0x00000000000000000000000000000000000000d1")
	assert.Equal(t, a, common.HexToAddress(addr(a)))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}
