package port

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
)

// LaunchpadUseCase defines the campaign operations exposed by the engine.
// This interface represents the primary port into the application domain.
// Every mutating call either commits fully or fails with a *domain.Error
// and leaves no trace.
type LaunchpadUseCase interface {
	// Launch escrows Supply units of Asset from the developer and opens a
	// campaign. Value is the native payment attached to the call and must
	// cover the protocol fee.
	Launch(ctx context.Context, req LaunchReq) (int64, error)

	// Purchase buys Value / PricePerUnit units for payer.
	Purchase(ctx context.Context, id int64, payer common.Address, value *uint256.Int) (*uint256.Int, error)

	// Settle resolves a closed campaign into Distribute or Refund. Any
	// account may call it.
	Settle(ctx context.Context, id int64, caller common.Address) (domain.Outcome, error)

	// Withdraw pays out the caller's claim on a resolved campaign: asset
	// units after Distribute, native currency after Refund, raised proceeds
	// for the developer after Distribute. It succeeds at most once.
	Withdraw(ctx context.Context, id int64, account common.Address) (*Payout, error)

	// AdminRemove force-resolves a campaign to Refund. Owner only.
	AdminRemove(ctx context.Context, id int64, owner common.Address) error

	// RetrieveAdditionalTokens returns unsold escrowed units to the
	// developer once the campaign is resolved.
	RetrieveAdditionalTokens(ctx context.Context, id int64, caller common.Address) (*uint256.Int, error)

	// Campaign returns a read-only snapshot.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CampaignCount returns the total number of campaigns launched.
	CampaignCount(ctx context.Context) (int64, error)
	// PriceForUnit returns the minimum payment that buys one unit.
	PriceForUnit(ctx context.Context, id int64) (*uint256.Int, error)
	// CreditOf returns an account's credit on a campaign.
	CreditOf(ctx context.Context, id int64, account common.Address) (*domain.CreditEntry, error)
	// EstimateProtocolFee returns the fee a launch of supply units costs.
	EstimateProtocolFee(ctx context.Context, supply *uint256.Int) (*uint256.Int, error)
}

// GovernanceUseCase is the owner-gated policy surface. Every setter fails
// with domain.ErrNotOwner when caller is not the current owner.
type GovernanceUseCase interface {
	Policy(ctx context.Context) (*domain.Policy, error)
	SetFeeRate(ctx context.Context, caller common.Address, rate *uint256.Int) error
	SetMinDays(ctx context.Context, caller common.Address, days int64) error
	SetMaxDays(ctx context.Context, caller common.Address, days int64) error
	SetMinSupply(ctx context.Context, caller common.Address, supply *uint256.Int) error
	SetLocked(ctx context.Context, caller common.Address, locked bool) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error
	// WithdrawFees pays all collected protocol fees to the owner.
	WithdrawFees(ctx context.Context, caller common.Address) (*uint256.Int, error)
}

// LaunchReq carries the arguments of a launch. It is a DTO used by the
// inbound adapters and does not contain domain behaviour.
type LaunchReq struct {
	Developer    common.Address
	StartTime    time.Time
	DurationDays int64
	Milestone    *uint256.Int
	PricePerUnit *uint256.Int
	Supply       *uint256.Int
	Asset        common.Address
	Value        *uint256.Int
}

// PayoutKind tells which ledger a withdrawal paid from.
type PayoutKind string

const (
	PayoutAsset  PayoutKind = "asset"
	PayoutNative PayoutKind = "native"
)

// Payout describes a completed withdrawal.
type Payout struct {
	Kind   PayoutKind
	Asset  common.Address
	Amount *uint256.Int
}
