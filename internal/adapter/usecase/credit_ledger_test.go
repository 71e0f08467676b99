package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/adapter/memory"
	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

func TestCreditLedger(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(func() time.Time { return epoch })
	key := domain.CreditKey{Account: buyer, CampaignID: 7}
	var ledger creditLedger

	for _, n := range []uint64{2, 3} {
		require.NoError(t, store.InTx(ctx, func(tx port.Tx) error {
			return ledger.credit(ctx, tx, key, asset, domain.Units(n), domain.Units(n*1000))
		}))
	}
	e, err := store.Credit(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(5), e.Units)
	assert.Equal(t, domain.Units(5000), e.Paid)

	var claim domain.Claim
	require.NoError(t, store.InTx(ctx, func(tx port.Tx) error {
		claim, err = ledger.takeClaim(ctx, tx, key)
		return err
	}))
	assert.Equal(t, domain.Units(5), claim.Units)
	assert.Equal(t, domain.Units(5000), claim.Paid)
	assert.Equal(t, asset, claim.Asset)

	err = store.InTx(ctx, func(tx port.Tx) error {
		_, err := ledger.takeClaim(ctx, tx, key)
		return err
	})
	require.ErrorIs(t, err, domain.ErrNothingToWithdraw)

	err = store.InTx(ctx, func(tx port.Tx) error {
		return ledger.credit(ctx, tx, key, asset, domain.Units(1), domain.Units(1000))
	})
	require.ErrorIs(t, err, domain.ErrAlreadySettled)
}

func TestCreditLedgerMissingEntry(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(time.Now)
	var ledger creditLedger

	err := store.InTx(ctx, func(tx port.Tx) error {
		_, err := ledger.takeClaim(ctx, tx, domain.CreditKey{Account: buyer2, CampaignID: 1})
		return err
	})
	require.ErrorIs(t, err, domain.ErrNothingToWithdraw)
}

func TestTakeClaimRolledBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(time.Now)
	key := domain.CreditKey{Account: buyer, CampaignID: 1}
	var ledger creditLedger
	require.NoError(t, store.InTx(ctx, func(tx port.Tx) error {
		return ledger.credit(ctx, tx, key, asset, domain.Units(4), domain.Units(4000))
	}))

	boom := errors.New("boom")
	err := store.InTx(ctx, func(tx port.Tx) error {
		if _, err := ledger.takeClaim(ctx, tx, key); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	e, err := store.Credit(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(4), e.Units)
	assert.False(t, e.Withdrawn)
}
