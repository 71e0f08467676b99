package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func pending() *Campaign {
	return &Campaign{
		StartTime:    t0,
		EndTime:      t0.Add(10 * day),
		PricePerUnit: Units(1000),
		Milestone:    Units(60),
		Original:     Units(1000),
		Remaining:    Units(1000),
		Raised:       Zero(),
		Outcome:      OutcomePending,
	}
}

func TestWindowEnd(t *testing.T) {
	end, err := WindowEnd(t0, 30)
	require.NoError(t, err)
	assert.Equal(t, t0.Add(30*day), end)

	for _, days := range []int64{0, -1, maxDurationDays + 1, math.MaxInt64} {
		_, err = WindowEnd(t0, days)
		assert.ErrorIs(t, err, ErrInvalidWindow, days)
	}
}

func TestCheckPurchasable(t *testing.T) {
	c := pending()
	assert.ErrorIs(t, c.CheckPurchasable(t0.Add(-time.Second)), ErrNotStarted)
	assert.NoError(t, c.CheckPurchasable(t0))
	assert.NoError(t, c.CheckPurchasable(c.EndTime))
	assert.ErrorIs(t, c.CheckPurchasable(c.EndTime.Add(time.Second)), ErrEnded)

	c.Remaining = Zero()
	assert.ErrorIs(t, c.CheckPurchasable(t0), ErrSoldOut)
	assert.ErrorIs(t, c.CheckPurchasable(t0.Add(-time.Hour)), ErrSoldOut, "before start")
	assert.ErrorIs(t, c.CheckPurchasable(c.EndTime.Add(time.Hour)), ErrSoldOut, "after end")

	c.Remaining = Units(1)
	c.Outcome = OutcomeRefund
	assert.ErrorIs(t, c.CheckPurchasable(t0), ErrAlreadySettled)
}

func TestClosed(t *testing.T) {
	c := pending()
	assert.False(t, c.Closed(t0))
	assert.False(t, c.Closed(c.EndTime))
	assert.True(t, c.Closed(c.EndTime.Add(time.Nanosecond)))

	c.Remaining = Zero()
	assert.True(t, c.Closed(t0))
}

func TestDecide(t *testing.T) {
	tests := []struct {
		sold, milestone uint64
		want            Outcome
	}{
		{59, 60, OutcomeRefund},
		{60, 60, OutcomeDistribute},
		{61, 60, OutcomeDistribute},
		{0, 0, OutcomeDistribute},
		{0, 1, OutcomeRefund},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decide(Units(tt.sold), Units(tt.milestone)), "sold %d milestone %d", tt.sold, tt.milestone)
	}
}

func TestSoldAndUnsold(t *testing.T) {
	c := pending()
	c.Remaining = Units(300)
	assert.Equal(t, Units(700), c.Sold())
	assert.True(t, c.Unsold().IsZero(), "nothing is unsold while pending")

	c.Outcome = OutcomeDistribute
	assert.Equal(t, Units(300), c.Unsold())

	c.Outcome = OutcomeRefund
	assert.Equal(t, Units(1000), c.Unsold())
}

func TestCloneIsDeep(t *testing.T) {
	c := pending()
	cp := c.Clone()
	cp.Remaining.SetUint64(1)
	cp.Raised.SetUint64(5)
	assert.Equal(t, Units(1000), c.Remaining)
	assert.True(t, c.Raised.IsZero())
}

func TestOutcomeValid(t *testing.T) {
	assert.True(t, OutcomePending.Valid())
	assert.True(t, OutcomeDistribute.Valid())
	assert.False(t, Outcome("cancelled").Valid())
}
