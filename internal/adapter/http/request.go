package httpadapter

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// Amounts travel as decimal strings to keep 256-bit precision in JSON.

type launchRequest struct {
	StartTime    time.Time      `json:"start_time"`
	DurationDays int64          `json:"duration_days"`
	Milestone    *uint256.Int   `json:"milestone"`
	PricePerUnit *uint256.Int   `json:"price_per_unit"`
	Supply       *uint256.Int   `json:"supply"`
	Asset        common.Address `json:"asset"`
	Value        *uint256.Int   `json:"value"`
}

func (r launchRequest) toPort(developer common.Address) port.LaunchReq {
	return port.LaunchReq{
		Developer:    developer,
		StartTime:    r.StartTime,
		DurationDays: r.DurationDays,
		Milestone:    r.Milestone,
		PricePerUnit: r.PricePerUnit,
		Supply:       r.Supply,
		Asset:        r.Asset,
		Value:        r.Value,
	}
}

type valueRequest struct {
	Value *uint256.Int `json:"value"`
}

type daysRequest struct {
	Days int64 `json:"days"`
}

type lockRequest struct {
	Locked bool `json:"locked"`
}

type ownerRequest struct {
	Owner common.Address `json:"owner"`
}

type campaignResponse struct {
	ID           int64          `json:"id"`
	Developer    common.Address `json:"developer"`
	Asset        common.Address `json:"asset"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	PricePerUnit *uint256.Int   `json:"price_per_unit"`
	Milestone    *uint256.Int   `json:"milestone"`
	Original     *uint256.Int   `json:"original"`
	Remaining    *uint256.Int   `json:"remaining"`
	Sold         *uint256.Int   `json:"sold"`
	Raised       *uint256.Int   `json:"raised"`
	Outcome      domain.Outcome `json:"outcome"`
	Paid         bool           `json:"developer_paid"`
	Retrieved    bool           `json:"retrieved"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		Developer:    c.Developer,
		Asset:        c.Asset,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		PricePerUnit: c.PricePerUnit,
		Milestone:    c.Milestone,
		Original:     c.Original,
		Remaining:    c.Remaining,
		Sold:         c.Sold(),
		Raised:       c.Raised,
		Outcome:      c.Outcome,
		Paid:         c.Paid,
		Retrieved:    c.Retrieved,
	}
}

type creditResponse struct {
	Account    common.Address `json:"account"`
	CampaignID int64          `json:"campaign_id"`
	Units      *uint256.Int   `json:"units"`
	Paid       *uint256.Int   `json:"paid"`
	Withdrawn  bool           `json:"withdrawn"`
}

type payoutResponse struct {
	Kind   port.PayoutKind `json:"kind"`
	Asset  *common.Address `json:"asset,omitempty"`
	Amount *uint256.Int    `json:"amount"`
}

func newPayoutResponse(p *port.Payout) payoutResponse {
	resp := payoutResponse{Kind: p.Kind, Amount: p.Amount}
	if p.Kind == port.PayoutAsset {
		resp.Asset = &p.Asset
	}
	return resp
}

type policyResponse struct {
	Owner         common.Address `json:"owner"`
	FeeRate       *uint256.Int   `json:"fee_rate"`
	MinDays       int64          `json:"min_days"`
	MaxDays       int64          `json:"max_days"`
	MinSupply     *uint256.Int   `json:"min_supply"`
	Locked        bool           `json:"locked"`
	CollectedFees *uint256.Int   `json:"collected_fees"`
}

func newPolicyResponse(p *domain.Policy) policyResponse {
	return policyResponse{
		Owner:         p.Owner,
		FeeRate:       p.FeeRate,
		MinDays:       p.MinDays,
		MaxDays:       p.MaxDays,
		MinSupply:     p.MinSupply,
		Locked:        p.Locked,
		CollectedFees: p.CollectedFees,
	}
}
