package domain

import (
	"math"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Outcome is the resolution of a campaign.
type Outcome string

const (
	OutcomePending    Outcome = "pending"
	OutcomeRefund     Outcome = "refund"
	OutcomeDistribute Outcome = "distribute"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeRefund, OutcomeDistribute:
		return true
	}
	return false
}

const day = 24 * time.Hour

// maxDurationDays is the largest day count representable as a time.Duration.
const maxDurationDays = math.MaxInt64 / int64(day)

// Campaign is one developer's time-boxed offer to sell a fixed supply of an
// asset at a fixed unit price. Amounts are never nil once loaded.
type Campaign struct {
	ID           int64
	Developer    common.Address
	Asset        common.Address
	StartTime    time.Time
	EndTime      time.Time
	PricePerUnit *uint256.Int // wei per asset unit
	Milestone    *uint256.Int // units that must be sold for success
	Original     *uint256.Int // units escrowed at launch
	Remaining    *uint256.Int // units still for sale, never increases
	Raised       *uint256.Int // wei collected from buyers
	Outcome      Outcome
	Paid         bool // developer proceeds paid out or forfeited
	Retrieved    bool // unsold units returned to the developer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WindowEnd returns start + days. It fails with ErrInvalidWindow when the
// duration is not representable or the result does not follow start.
func WindowEnd(start time.Time, days int64) (time.Time, error) {
	if days <= 0 || days > maxDurationDays {
		return time.Time{}, ErrInvalidWindow
	}
	end := start.Add(time.Duration(days) * day)
	if !end.After(start) {
		return time.Time{}, ErrInvalidWindow
	}
	return end, nil
}

// Sold returns the number of units bought so far.
func (c *Campaign) Sold() *uint256.Int {
	sold, err := CheckedSub(c.Original, c.Remaining)
	if err != nil {
		// remaining never exceeds original
		return Zero()
	}
	return sold
}

// Resolved reports whether the outcome has been decided.
func (c *Campaign) Resolved() bool {
	return c.Outcome != OutcomePending
}

// CheckPurchasable validates the sale window at now. A campaign with no
// units left reports ErrSoldOut whatever the time, so a removed campaign
// stays sold out before its start and after its end.
func (c *Campaign) CheckPurchasable(now time.Time) error {
	switch {
	case c.Remaining.IsZero():
		return ErrSoldOut
	case now.Before(c.StartTime):
		return ErrNotStarted
	case now.After(c.EndTime):
		return ErrEnded
	case c.Resolved():
		return ErrAlreadySettled
	}
	return nil
}

// Closed reports whether the campaign can be settled at now: sold out or
// past its end timestamp.
func (c *Campaign) Closed(now time.Time) bool {
	return c.Remaining.IsZero() || now.After(c.EndTime)
}

// Decide returns the outcome implied by the units sold. It is a pure
// function of sold and milestone.
func Decide(sold, milestone *uint256.Int) Outcome {
	if sold.Cmp(milestone) >= 0 {
		return OutcomeDistribute
	}
	return OutcomeRefund
}

// Unsold returns the asset units the developer may recover after
// resolution. Buyers of a refunded campaign never receive units, so the
// whole original supply stays recoverable.
func (c *Campaign) Unsold() *uint256.Int {
	switch c.Outcome {
	case OutcomeDistribute:
		return Copy(c.Remaining)
	case OutcomeRefund:
		return Copy(c.Original)
	}
	return Zero()
}

// Clone returns a deep copy.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.PricePerUnit = Copy(c.PricePerUnit)
	cp.Milestone = Copy(c.Milestone)
	cp.Original = Copy(c.Original)
	cp.Remaining = Copy(c.Remaining)
	cp.Raised = Copy(c.Raised)
	return &cp
}
