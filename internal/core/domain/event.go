package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// EventKind names a committed state change.
type EventKind string

const (
	EventLaunched      EventKind = "launched"
	EventPurchased     EventKind = "purchased"
	EventSettled       EventKind = "settled"
	EventWithdrawn     EventKind = "withdrawn"
	EventRemoved       EventKind = "removed"
	EventRetrieved     EventKind = "retrieved"
	EventPolicyChanged EventKind = "policy_changed"
)

// Event is a record of a committed operation, published after commit.
type Event struct {
	ID         string         `json:"id"`
	Kind       EventKind      `json:"kind"`
	CampaignID int64          `json:"campaign_id,omitempty"`
	Account    common.Address `json:"account"`
	Units      *uint256.Int   `json:"units,omitempty"`
	Amount     *uint256.Int   `json:"amount,omitempty"`
	Outcome    Outcome        `json:"outcome,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	At         time.Time      `json:"at"`
}

// NewEvent stamps an event with a fresh id.
func NewEvent(kind EventKind, campaignID int64, account common.Address, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		CampaignID: campaignID,
		Account:    account,
		At:         at.UTC(),
	}
}
