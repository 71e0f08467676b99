package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// creditLedger keeps the per-(account, campaign) claims. It does not look
// at campaign state; it only guarantees that credits are additive and that
// a claim is read out exactly once.
type creditLedger struct{}

// credit adds units and paid wei to the entry for key, creating it on first
// purchase.
func (creditLedger) credit(ctx context.Context, tx port.Tx, key domain.CreditKey, asset common.Address, units, paid *uint256.Int) error {
	e, err := tx.CreditForUpdate(ctx, key)
	if err != nil {
		return err
	}
	if e == nil {
		e = domain.NewCreditEntry(key, asset)
	}
	if err = e.Add(units, paid); err != nil {
		return err
	}
	return tx.SaveCredit(ctx, e)
}

// takeClaim reads the entry for key and zeroes it in the same transaction.
func (creditLedger) takeClaim(ctx context.Context, tx port.Tx, key domain.CreditKey) (domain.Claim, error) {
	e, err := tx.CreditForUpdate(ctx, key)
	if err != nil {
		return domain.Claim{}, err
	}
	if e == nil {
		return domain.Claim{}, domain.ErrNothingToWithdraw
	}
	claim, err := e.Take()
	if err != nil {
		return domain.Claim{}, err
	}
	if err = tx.SaveCredit(ctx, e); err != nil {
		return domain.Claim{}, err
	}
	return claim, nil
}
