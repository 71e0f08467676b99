package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// Deps bundles the collaborators shared by the launchpad and governance
// use cases. Escrow is the account that holds escrowed asset units and
// native currency. Now defaults to time.Now.
type Deps struct {
	Store  port.Store
	Assets port.AssetRegistry
	Bank   port.NativeBank
	Events port.EventPublisher
	Escrow common.Address
	Logger *slog.Logger
	Now    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// LaunchpadUseCase is the campaign registry. It orchestrates the store,
// the credit ledger and the external registries to implement
// port.LaunchpadUseCase.
type LaunchpadUseCase struct {
	Deps
	ledger creditLedger
}

// NewLaunchpadUseCase creates the campaign registry.
func NewLaunchpadUseCase(d Deps) *LaunchpadUseCase {
	return &LaunchpadUseCase{Deps: d.withDefaults()}
}

var _ port.LaunchpadUseCase = (*LaunchpadUseCase)(nil)

// Launch validates the request against the current policy, collects the
// attached payment as protocol fee, pulls the supply into escrow and
// records a pending campaign. The developer is marked as launched for good.
func (u *LaunchpadUseCase) Launch(ctx context.Context, req port.LaunchReq) (int64, error) {
	if err := validateLaunch(req); err != nil {
		return 0, err
	}
	now := u.Now()
	var c *domain.Campaign
	err := atomically(ctx, u.Store, u.Logger, "launch", func(tx port.Tx, j *journal) error {
		policy, err := tx.PolicyForUpdate(ctx)
		if err != nil {
			return err
		}
		if policy.Locked {
			return domain.ErrContractLocked
		}
		launched, err := tx.HasLaunched(ctx, req.Developer)
		if err != nil {
			return err
		}
		if launched {
			return domain.ErrAlreadyLaunched
		}
		if err = policy.CheckDuration(req.DurationDays); err != nil {
			return err
		}
		if req.Supply.Lt(policy.MinSupply) {
			return fmt.Errorf("%w: %s < %s", domain.ErrSupplyTooLow, req.Supply, policy.MinSupply)
		}
		start := req.StartTime
		if start.Before(now) {
			start = now
		}
		end, err := domain.WindowEnd(start, req.DurationDays)
		if err != nil {
			return err
		}
		fee, err := policy.ProtocolFee(req.Supply)
		if err != nil {
			return err
		}
		if req.Value.Lt(fee) {
			return fmt.Errorf("%w: paid %s, fee %s", domain.ErrInsufficientFee, req.Value, fee)
		}
		allowance, err := u.Assets.AllowanceOf(ctx, req.Asset, req.Developer, u.Escrow)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInsufficientAllowance, err)
		}
		if allowance.Lt(req.Supply) {
			return fmt.Errorf("%w: %s < %s", domain.ErrInsufficientAllowance, allowance, req.Supply)
		}
		collected, err := domain.CheckedAdd(policy.CollectedFees, req.Value)
		if err != nil {
			return err
		}

		if err = u.Bank.Transfer(ctx, req.Developer, u.Escrow, req.Value); err != nil {
			return transferFailed("collect fee", err)
		}
		j.onAbort("return fee", func(ctx context.Context) error {
			return u.Bank.Transfer(ctx, u.Escrow, req.Developer, req.Value)
		})
		if err = u.Assets.TransferFrom(ctx, req.Asset, req.Developer, u.Escrow, req.Supply); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInsufficientAllowance, err)
		}
		j.onAbort("return supply", func(ctx context.Context) error {
			return u.Assets.Transfer(ctx, req.Asset, u.Escrow, req.Developer, req.Supply)
		})

		policy.CollectedFees = collected
		if err = tx.SavePolicy(ctx, policy); err != nil {
			return err
		}
		c = &domain.Campaign{
			Developer:    req.Developer,
			Asset:        req.Asset,
			StartTime:    start.UTC(),
			EndTime:      end.UTC(),
			PricePerUnit: domain.Copy(req.PricePerUnit),
			Milestone:    domain.Copy(req.Milestone),
			Original:     domain.Copy(req.Supply),
			Remaining:    domain.Copy(req.Supply),
			Raised:       domain.Zero(),
			Outcome:      domain.OutcomePending,
		}
		c.ID, err = tx.InsertCampaign(ctx, c)
		return err
	})
	if err != nil {
		u.rejected("launch", 0, req.Developer, err)
		return 0, err
	}
	u.Logger.Info("campaign launched",
		slog.Int64("campaign_id", c.ID),
		slog.String("developer", req.Developer.Hex()),
		slog.String("asset", req.Asset.Hex()),
		slog.String("supply", req.Supply.Dec()),
		slog.Time("start", c.StartTime),
		slog.Time("end", c.EndTime))
	evt := domain.NewEvent(domain.EventLaunched, c.ID, req.Developer, now)
	evt.Units, evt.Amount = domain.Copy(req.Supply), domain.Copy(req.Value)
	u.publish(ctx, evt)
	return c.ID, nil
}

// Purchase buys value / price units. The whole value is collected and
// credited; paying less than one unit or more than the remaining supply is
// rejected.
func (u *LaunchpadUseCase) Purchase(ctx context.Context, id int64, payer common.Address, value *uint256.Int) (*uint256.Int, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: value is required", domain.ErrInvalidArgument)
	}
	now := u.Now()
	var units *uint256.Int
	err := atomically(ctx, u.Store, u.Logger, "purchase", func(tx port.Tx, j *journal) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = c.CheckPurchasable(now); err != nil {
			return err
		}
		if payer == c.Developer {
			return domain.ErrSelfPurchase
		}
		units = domain.Quo(value, c.PricePerUnit)
		if units.IsZero() {
			return fmt.Errorf("%w: %s < %s", domain.ErrInsufficientPayment, value, c.PricePerUnit)
		}
		if units.Gt(c.Remaining) {
			return fmt.Errorf("%w: %s units requested, %s left", domain.ErrExceedsRemaining, units, c.Remaining)
		}
		remaining, err := domain.CheckedSub(c.Remaining, units)
		if err != nil {
			return err
		}
		raised, err := domain.CheckedAdd(c.Raised, value)
		if err != nil {
			return err
		}
		key := domain.CreditKey{Account: payer, CampaignID: id}
		if err = u.ledger.credit(ctx, tx, key, c.Asset, units, value); err != nil {
			return err
		}

		if err = u.Bank.Transfer(ctx, payer, u.Escrow, value); err != nil {
			return transferFailed("collect payment", err)
		}
		j.onAbort("return payment", func(ctx context.Context) error {
			return u.Bank.Transfer(ctx, u.Escrow, payer, value)
		})

		c.Remaining, c.Raised = remaining, raised
		return tx.UpdateCampaign(ctx, c)
	})
	if err != nil {
		u.rejected("purchase", id, payer, err)
		return nil, err
	}
	u.Logger.Info("units purchased",
		slog.Int64("campaign_id", id),
		slog.String("account", payer.Hex()),
		slog.String("units", units.Dec()),
		slog.String("value", value.Dec()))
	evt := domain.NewEvent(domain.EventPurchased, id, payer, now)
	evt.Units, evt.Amount = domain.Copy(units), domain.Copy(value)
	u.publish(ctx, evt)
	return units, nil
}

// Settle resolves a campaign that is sold out or past its end. The outcome
// is written once and never re-evaluated.
func (u *LaunchpadUseCase) Settle(ctx context.Context, id int64, caller common.Address) (domain.Outcome, error) {
	now := u.Now()
	var c *domain.Campaign
	err := atomically(ctx, u.Store, u.Logger, "settle", func(tx port.Tx, _ *journal) error {
		var err error
		if c, err = tx.CampaignForUpdate(ctx, id); err != nil {
			return err
		}
		if c.Resolved() {
			return domain.ErrAlreadySettled
		}
		if !c.Closed(now) {
			return domain.ErrNotYetClosed
		}
		c.Outcome = domain.Decide(c.Sold(), c.Milestone)
		return tx.UpdateCampaign(ctx, c)
	})
	if err != nil {
		u.rejected("settle", id, caller, err)
		return "", err
	}
	u.Logger.Info("campaign settled",
		slog.Int64("campaign_id", id),
		slog.String("caller", caller.Hex()),
		slog.String("outcome", string(c.Outcome)),
		slog.String("sold", c.Sold().Dec()),
		slog.String("milestone", c.Milestone.Dec()))
	evt := domain.NewEvent(domain.EventSettled, id, caller, now)
	evt.Outcome, evt.Units = c.Outcome, c.Sold()
	u.publish(ctx, evt)
	return c.Outcome, nil
}

// Withdraw pays out the account's claim. Buyers receive their units after
// Distribute or their payment after Refund; the developer receives the
// raised proceeds after Distribute. The claim is zeroed in the same
// transaction as the transfer.
func (u *LaunchpadUseCase) Withdraw(ctx context.Context, id int64, account common.Address) (*port.Payout, error) {
	now := u.Now()
	var payout *port.Payout
	err := atomically(ctx, u.Store, u.Logger, "withdraw", func(tx port.Tx, j *journal) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !c.Resolved() {
			return domain.ErrNotSettled
		}
		if account == c.Developer {
			payout, err = u.payDeveloper(ctx, tx, j, c)
			return err
		}
		claim, err := u.ledger.takeClaim(ctx, tx, domain.CreditKey{Account: account, CampaignID: id})
		if err != nil {
			return err
		}
		switch c.Outcome {
		case domain.OutcomeDistribute:
			if claim.Units.IsZero() {
				return domain.ErrNothingToWithdraw
			}
			if err = u.Assets.Transfer(ctx, c.Asset, u.Escrow, account, claim.Units); err != nil {
				return transferFailed("deliver units", err)
			}
			j.onAbort("reclaim units", func(ctx context.Context) error {
				return u.Assets.Transfer(ctx, c.Asset, account, u.Escrow, claim.Units)
			})
			payout = &port.Payout{Kind: port.PayoutAsset, Asset: c.Asset, Amount: claim.Units}
		default:
			if claim.Paid.IsZero() {
				return domain.ErrNothingToWithdraw
			}
			if err = u.Bank.Transfer(ctx, u.Escrow, account, claim.Paid); err != nil {
				return transferFailed("refund payment", err)
			}
			j.onAbort("reclaim refund", func(ctx context.Context) error {
				return u.Bank.Transfer(ctx, account, u.Escrow, claim.Paid)
			})
			payout = &port.Payout{Kind: port.PayoutNative, Amount: claim.Paid}
		}
		return nil
	})
	if err != nil {
		u.rejected("withdraw", id, account, err)
		return nil, err
	}
	u.Logger.Info("claim withdrawn",
		slog.Int64("campaign_id", id),
		slog.String("account", account.Hex()),
		slog.String("kind", string(payout.Kind)),
		slog.String("amount", payout.Amount.Dec()))
	evt := domain.NewEvent(domain.EventWithdrawn, id, account, now)
	evt.Amount, evt.Detail = domain.Copy(payout.Amount), string(payout.Kind)
	u.publish(ctx, evt)
	return payout, nil
}

func (u *LaunchpadUseCase) payDeveloper(ctx context.Context, tx port.Tx, j *journal, c *domain.Campaign) (*port.Payout, error) {
	if c.Outcome != domain.OutcomeDistribute || c.Paid || c.Raised.IsZero() {
		return nil, domain.ErrNothingToWithdraw
	}
	proceeds := domain.Copy(c.Raised)
	if err := u.Bank.Transfer(ctx, u.Escrow, c.Developer, proceeds); err != nil {
		return nil, transferFailed("pay proceeds", err)
	}
	j.onAbort("reclaim proceeds", func(ctx context.Context) error {
		return u.Bank.Transfer(ctx, c.Developer, u.Escrow, proceeds)
	})
	c.Paid = true
	if err := tx.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return &port.Payout{Kind: port.PayoutNative, Amount: proceeds}, nil
}

// AdminRemove neutralises a pending campaign: the outcome becomes Refund,
// nothing is left for sale and the developer forfeits the proceeds.
func (u *LaunchpadUseCase) AdminRemove(ctx context.Context, id int64, owner common.Address) error {
	now := u.Now()
	err := atomically(ctx, u.Store, u.Logger, "admin_remove", func(tx port.Tx, _ *journal) error {
		policy, err := tx.PolicyForUpdate(ctx)
		if err != nil {
			return err
		}
		if !policy.IsOwner(owner) {
			return domain.ErrNotOwner
		}
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c.Resolved() {
			return domain.ErrAlreadySettled
		}
		c.Outcome = domain.OutcomeRefund
		c.Remaining = domain.Zero()
		c.Paid = true
		return tx.UpdateCampaign(ctx, c)
	})
	if err != nil {
		u.rejected("admin_remove", id, owner, err)
		return err
	}
	u.Logger.Info("campaign removed", slog.Int64("campaign_id", id), slog.String("owner", owner.Hex()))
	evt := domain.NewEvent(domain.EventRemoved, id, owner, now)
	evt.Outcome = domain.OutcomeRefund
	u.publish(ctx, evt)
	return nil
}

// RetrieveAdditionalTokens sends the unsold escrowed units back to the
// developer. Either the developer or the owner may trigger it, once.
func (u *LaunchpadUseCase) RetrieveAdditionalTokens(ctx context.Context, id int64, caller common.Address) (*uint256.Int, error) {
	now := u.Now()
	var units *uint256.Int
	err := atomically(ctx, u.Store, u.Logger, "retrieve", func(tx port.Tx, j *journal) error {
		policy, err := tx.PolicyForUpdate(ctx)
		if err != nil {
			return err
		}
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if caller != c.Developer && !policy.IsOwner(caller) {
			return domain.ErrNotAuthorized
		}
		if !c.Resolved() {
			return domain.ErrNotSettled
		}
		if c.Retrieved {
			return domain.ErrAlreadyRetrieved
		}
		units = c.Unsold()
		if units.IsZero() {
			return domain.ErrNothingToWithdraw
		}
		held, err := u.Assets.BalanceOf(ctx, c.Asset, u.Escrow)
		if err != nil {
			return transferFailed("read escrow balance", err)
		}
		if held.Lt(units) {
			return transferFailed("escrow short", fmt.Errorf("holds %s, owes %s", held, units))
		}
		if err = u.Assets.Transfer(ctx, c.Asset, u.Escrow, c.Developer, units); err != nil {
			return transferFailed("return unsold units", err)
		}
		j.onAbort("reclaim unsold units", func(ctx context.Context) error {
			return u.Assets.Transfer(ctx, c.Asset, c.Developer, u.Escrow, units)
		})
		c.Retrieved = true
		return tx.UpdateCampaign(ctx, c)
	})
	if err != nil {
		u.rejected("retrieve", id, caller, err)
		return nil, err
	}
	u.Logger.Info("unsold units retrieved",
		slog.Int64("campaign_id", id),
		slog.String("caller", caller.Hex()),
		slog.String("units", units.Dec()))
	evt := domain.NewEvent(domain.EventRetrieved, id, caller, now)
	evt.Units = domain.Copy(units)
	u.publish(ctx, evt)
	return units, nil
}

func (u *LaunchpadUseCase) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.Store.Campaign(ctx, id)
}

func (u *LaunchpadUseCase) CampaignCount(ctx context.Context) (int64, error) {
	return u.Store.CampaignCount(ctx)
}

// PriceForUnit returns the smallest payment that buys a unit.
func (u *LaunchpadUseCase) PriceForUnit(ctx context.Context, id int64) (*uint256.Int, error) {
	c, err := u.Store.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.PricePerUnit, nil
}

func (u *LaunchpadUseCase) CreditOf(ctx context.Context, id int64, account common.Address) (*domain.CreditEntry, error) {
	if _, err := u.Store.Campaign(ctx, id); err != nil {
		return nil, err
	}
	return u.Store.Credit(ctx, domain.CreditKey{Account: account, CampaignID: id})
}

func (u *LaunchpadUseCase) EstimateProtocolFee(ctx context.Context, supply *uint256.Int) (*uint256.Int, error) {
	if supply == nil {
		return nil, fmt.Errorf("%w: supply is required", domain.ErrInvalidArgument)
	}
	policy, err := u.Store.Policy(ctx)
	if err != nil {
		return nil, err
	}
	return policy.ProtocolFee(supply)
}

func (u *LaunchpadUseCase) rejected(op string, id int64, account common.Address, err error) {
	level := slog.LevelDebug
	if domain.CodeOf(err) == domain.CodeUnknown {
		level = slog.LevelError
	}
	u.Logger.Log(context.Background(), level, op+" rejected",
		slog.Int64("campaign_id", id),
		slog.String("account", account.Hex()),
		slog.Any("error", err))
}

func (u *LaunchpadUseCase) publish(ctx context.Context, events ...domain.Event) {
	publish(ctx, u.Events, u.Logger, events...)
}

func publish(ctx context.Context, p port.EventPublisher, logger *slog.Logger, events ...domain.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, events...); err != nil {
		logger.Error("publish events", slog.Int("count", len(events)), slog.Any("error", err))
	}
}

func transferFailed(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrTransferFailed, what, err)
}

func validateLaunch(req port.LaunchReq) error {
	var problems []error
	if req.Developer == (common.Address{}) {
		problems = append(problems, errors.New("developer is required"))
	}
	if req.Asset == (common.Address{}) {
		problems = append(problems, errors.New("asset is required"))
	}
	if req.Supply == nil || req.Milestone == nil || req.PricePerUnit == nil || req.Value == nil {
		problems = append(problems, errors.New("supply, milestone, price and value are required"))
	} else {
		if req.PricePerUnit.IsZero() {
			problems = append(problems, errors.New("price per unit must be positive"))
		}
		if req.Milestone.Gt(req.Supply) {
			problems = append(problems, errors.New("milestone exceeds supply"))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, errors.Join(problems...))
	}
	return nil
}
