package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"launchpad/internal/core/domain"
)

// Store is the persistence layer for campaigns, credits and policy. It is an
// outbound port in hexagonal architecture. Every state change happens inside
// InTx; implementations must apply concurrent transactions touching the same
// campaign or credit entry as a strict serial sequence.
type Store interface {
	// InTx runs fn in a transaction. If fn returns an error nothing fn wrote
	// is persisted. The returned error is fn's error or a commit failure.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// InitPolicy stores p unless a policy already exists.
	InitPolicy(ctx context.Context, p *domain.Policy) error

	// Policy returns the current policy.
	Policy(ctx context.Context) (*domain.Policy, error)
	// Campaign returns a snapshot of a campaign or domain.ErrCampaignNotFound.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CampaignCount returns the number of campaigns ever launched.
	CampaignCount(ctx context.Context) (int64, error)
	// Credit returns the entry for key, or an empty entry if none exists.
	Credit(ctx context.Context, key domain.CreditKey) (*domain.CreditEntry, error)
}

// Tx is the transactional view handed to Store.InTx callbacks. Reads that
// end in ForUpdate lock the row until the transaction finishes.
type Tx interface {
	PolicyForUpdate(ctx context.Context) (*domain.Policy, error)
	SavePolicy(ctx context.Context, p *domain.Policy) error

	// HasLaunched reports whether developer ever launched a campaign.
	HasLaunched(ctx context.Context, developer common.Address) (bool, error)
	// InsertCampaign assigns the next sequential id to c, stores it, bumps
	// the campaign counter and records the developer as launched. It
	// returns domain.ErrAlreadyLaunched if the developer is already known.
	InsertCampaign(ctx context.Context, c *domain.Campaign) (int64, error)
	CampaignForUpdate(ctx context.Context, id int64) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error

	// CreditForUpdate returns the entry for key, or nil if none exists.
	CreditForUpdate(ctx context.Context, key domain.CreditKey) (*domain.CreditEntry, error)
	SaveCredit(ctx context.Context, e *domain.CreditEntry) error
}
