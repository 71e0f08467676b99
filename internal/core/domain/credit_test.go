package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditEntry(t *testing.T) {
	key := CreditKey{Account: common.HexToAddress("0xb1"), CampaignID: 1}
	e := NewCreditEntry(key, common.HexToAddress("0xa55"))

	_, err := e.Take()
	require.ErrorIs(t, err, ErrNothingToWithdraw)

	require.NoError(t, e.Add(Units(2), Units(2000)))
	require.NoError(t, e.Add(Units(1), Units(1500)))
	assert.Equal(t, Units(3), e.Units)
	assert.Equal(t, Units(3500), e.Paid)

	claim, err := e.Take()
	require.NoError(t, err)
	assert.Equal(t, Units(3), claim.Units)
	assert.Equal(t, Units(3500), claim.Paid)
	assert.Equal(t, e.Asset, claim.Asset)
	assert.True(t, e.Units.IsZero())
	assert.True(t, e.Withdrawn)

	_, err = e.Take()
	require.ErrorIs(t, err, ErrNothingToWithdraw)
	require.ErrorIs(t, e.Add(Units(1), Units(1)), ErrAlreadySettled)
}

func TestCreditEntryOverflow(t *testing.T) {
	e := NewCreditEntry(CreditKey{}, common.Address{})
	require.NoError(t, e.Add(maxAmount, Zero()))
	require.ErrorIs(t, e.Add(Units(1), Zero()), ErrAmountOverflow)
	assert.Equal(t, maxAmount, e.Units, "failed add leaves entry unchanged")
}

func TestNewEvent(t *testing.T) {
	a := NewEvent(EventSettled, 4, common.Address{}, t0)
	b := NewEvent(EventSettled, 4, common.Address{}, t0)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, t0, a.At)
}
