package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// GovernanceUseCase owns the policy. Only the current owner may change it;
// changes apply to launches that start after the commit.
type GovernanceUseCase struct {
	Deps
}

// NewGovernanceUseCase creates the governance use case.
func NewGovernanceUseCase(d Deps) *GovernanceUseCase {
	return &GovernanceUseCase{Deps: d.withDefaults()}
}

var _ port.GovernanceUseCase = (*GovernanceUseCase)(nil)

func (g *GovernanceUseCase) Policy(ctx context.Context) (*domain.Policy, error) {
	return g.Store.Policy(ctx)
}

func (g *GovernanceUseCase) SetFeeRate(ctx context.Context, caller common.Address, rate *uint256.Int) error {
	if rate == nil {
		return fmt.Errorf("%w: fee rate is required", domain.ErrInvalidArgument)
	}
	return g.update(ctx, "set_fee_rate", caller, func(p *domain.Policy) error {
		p.FeeRate = domain.Copy(rate)
		return nil
	})
}

// SetMinDays changes the shortest allowed sale window. The bound must stay
// at least one day and not exceed the maximum.
func (g *GovernanceUseCase) SetMinDays(ctx context.Context, caller common.Address, days int64) error {
	return g.update(ctx, "set_min_days", caller, func(p *domain.Policy) error {
		if err := domain.CheckBounds(days, p.MaxDays); err != nil {
			return err
		}
		p.MinDays = days
		return nil
	})
}

// SetMaxDays changes the longest allowed sale window.
func (g *GovernanceUseCase) SetMaxDays(ctx context.Context, caller common.Address, days int64) error {
	return g.update(ctx, "set_max_days", caller, func(p *domain.Policy) error {
		if err := domain.CheckBounds(p.MinDays, days); err != nil {
			return err
		}
		p.MaxDays = days
		return nil
	})
}

func (g *GovernanceUseCase) SetMinSupply(ctx context.Context, caller common.Address, supply *uint256.Int) error {
	if supply == nil {
		return fmt.Errorf("%w: minimum supply is required", domain.ErrInvalidArgument)
	}
	return g.update(ctx, "set_min_supply", caller, func(p *domain.Policy) error {
		p.MinSupply = domain.Copy(supply)
		return nil
	})
}

// SetLocked blocks or unblocks new launches. Running campaigns are not
// affected.
func (g *GovernanceUseCase) SetLocked(ctx context.Context, caller common.Address, locked bool) error {
	return g.update(ctx, "set_locked", caller, func(p *domain.Policy) error {
		p.Locked = locked
		return nil
	})
}

func (g *GovernanceUseCase) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	if newOwner == (common.Address{}) {
		return fmt.Errorf("%w: new owner is required", domain.ErrInvalidArgument)
	}
	return g.update(ctx, "transfer_ownership", caller, func(p *domain.Policy) error {
		p.Owner = newOwner
		return nil
	})
}

// WithdrawFees pays every collected protocol fee from escrow to the owner.
func (g *GovernanceUseCase) WithdrawFees(ctx context.Context, caller common.Address) (*uint256.Int, error) {
	var fees *uint256.Int
	err := atomically(ctx, g.Store, g.Logger, "withdraw_fees", func(tx port.Tx, j *journal) error {
		p, err := tx.PolicyForUpdate(ctx)
		if err != nil {
			return err
		}
		if !p.IsOwner(caller) {
			return domain.ErrNotOwner
		}
		if p.CollectedFees.IsZero() {
			return domain.ErrNothingToWithdraw
		}
		fees = domain.Copy(p.CollectedFees)
		if err = g.Bank.Transfer(ctx, g.Escrow, caller, fees); err != nil {
			return transferFailed("pay fees", err)
		}
		j.onAbort("reclaim fees", func(ctx context.Context) error {
			return g.Bank.Transfer(ctx, caller, g.Escrow, fees)
		})
		p.CollectedFees = domain.Zero()
		return tx.SavePolicy(ctx, p)
	})
	if err != nil {
		g.Logger.Debug("withdraw_fees rejected", slog.String("caller", caller.Hex()), slog.Any("error", err))
		return nil, err
	}
	g.Logger.Info("protocol fees withdrawn", slog.String("owner", caller.Hex()), slog.String("amount", fees.Dec()))
	evt := domain.NewEvent(domain.EventWithdrawn, 0, caller, g.Now())
	evt.Amount, evt.Detail = domain.Copy(fees), "protocol_fees"
	publish(ctx, g.Events, g.Logger, evt)
	return fees, nil
}

func (g *GovernanceUseCase) update(ctx context.Context, op string, caller common.Address, mutate func(p *domain.Policy) error) error {
	err := atomically(ctx, g.Store, g.Logger, op, func(tx port.Tx, _ *journal) error {
		p, err := tx.PolicyForUpdate(ctx)
		if err != nil {
			return err
		}
		if !p.IsOwner(caller) {
			return domain.ErrNotOwner
		}
		if err = mutate(p); err != nil {
			return err
		}
		return tx.SavePolicy(ctx, p)
	})
	if err != nil {
		g.Logger.Debug(op+" rejected", slog.String("caller", caller.Hex()), slog.Any("error", err))
		return err
	}
	g.Logger.Info("policy changed", slog.String("op", op), slog.String("caller", caller.Hex()))
	evt := domain.NewEvent(domain.EventPolicyChanged, 0, caller, g.Now())
	evt.Detail = op
	publish(ctx, g.Events, g.Logger, evt)
	return nil
}
