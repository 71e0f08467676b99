package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maxAmount = new(uint256.Int).SetAllOne()

func TestCheckedArithmetic(t *testing.T) {
	sum, err := CheckedAdd(Units(2), Units(3))
	require.NoError(t, err)
	assert.Equal(t, Units(5), sum)

	_, err = CheckedAdd(maxAmount, Units(1))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	diff, err := CheckedSub(Units(3), Units(3))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = CheckedSub(Units(2), Units(3))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	prod, err := CheckedMul(Units(10_000), DefaultFeeRate)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", prod.Dec())

	_, err = CheckedMul(maxAmount, Units(2))
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestNilAmountsReadAsZero(t *testing.T) {
	sum, err := CheckedAdd(nil, Units(4))
	require.NoError(t, err)
	assert.Equal(t, Units(4), sum)
	assert.True(t, Copy(nil).IsZero())
	assert.True(t, Quo(nil, Units(3)).IsZero())
}

func TestQuo(t *testing.T) {
	assert.Equal(t, Units(2), Quo(Units(2500), Units(1000)))
	assert.True(t, Quo(Units(999), Units(1000)).IsZero())
	assert.True(t, Quo(Units(5), Zero()).IsZero())
}

func TestCopyIsIndependent(t *testing.T) {
	v := Units(7)
	cp := Copy(v)
	cp.SetUint64(8)
	assert.Equal(t, uint64(7), v.Uint64())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeSoldOut, CodeOf(ErrSoldOut))
	assert.Equal(t, CodeTransferFailed, CodeOf(fmt.Errorf("%w: deliver units: boom", ErrTransferFailed)))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
	assert.False(t, errors.Is(ErrEnded, ErrNotStarted))
}
