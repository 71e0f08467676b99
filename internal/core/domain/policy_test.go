package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	owner := common.HexToAddress("0xa0")
	p := DefaultPolicy(owner)
	assert.True(t, p.IsOwner(owner))
	assert.False(t, p.IsOwner(common.HexToAddress("0xa1")))
	assert.False(t, p.Locked)
	assert.True(t, p.CollectedFees.IsZero())

	fee, err := p.ProtocolFee(Units(10_000))
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", fee.Dec())

	p.FeeRate.SetUint64(1)
	assert.Equal(t, "100000000000000", DefaultFeeRate.Dec(), "default rate is not shared")
}

func TestCheckDuration(t *testing.T) {
	p := DefaultPolicy(common.Address{})
	assert.NoError(t, p.CheckDuration(DefaultMinDays))
	assert.NoError(t, p.CheckDuration(DefaultMaxDays))
	assert.ErrorIs(t, p.CheckDuration(0), ErrDurationOutOfRange)
	assert.ErrorIs(t, p.CheckDuration(DefaultMaxDays+1), ErrDurationOutOfRange)
}

func TestCheckBounds(t *testing.T) {
	assert.NoError(t, CheckBounds(1, 1))
	assert.NoError(t, CheckBounds(3, 90))
	assert.ErrorIs(t, CheckBounds(0, 10), ErrInvalidBounds)
	assert.ErrorIs(t, CheckBounds(11, 10), ErrInvalidBounds)
}

func TestPolicyClone(t *testing.T) {
	p := DefaultPolicy(common.HexToAddress("0xa0"))
	cp := p.Clone()
	cp.CollectedFees.SetUint64(9)
	cp.MinSupply.SetUint64(1)
	assert.True(t, p.CollectedFees.IsZero())
	assert.Equal(t, Units(DefaultMinSupply), p.MinSupply)
}
