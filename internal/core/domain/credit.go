package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// CreditKey identifies a buyer's claim against a campaign.
type CreditKey struct {
	Account    common.Address
	CampaignID int64
}

// CreditEntry is the accumulated claim of one account on one campaign.
// Once Withdrawn is set the entry is closed for good.
type CreditEntry struct {
	CreditKey
	Asset     common.Address
	Units     *uint256.Int
	Paid      *uint256.Int // wei
	Withdrawn bool
	UpdatedAt time.Time
}

// Claim is what a withdrawal reads out of an entry.
type Claim struct {
	Units *uint256.Int
	Paid  *uint256.Int
	Asset common.Address
}

// NewCreditEntry returns an empty entry for key.
func NewCreditEntry(key CreditKey, asset common.Address) *CreditEntry {
	return &CreditEntry{CreditKey: key, Asset: asset, Units: Zero(), Paid: Zero()}
}

// Add credits units and paid wei to the entry.
func (e *CreditEntry) Add(units, paid *uint256.Int) error {
	if e.Withdrawn {
		return ErrAlreadySettled
	}
	u, err := CheckedAdd(e.Units, units)
	if err != nil {
		return err
	}
	p, err := CheckedAdd(e.Paid, paid)
	if err != nil {
		return err
	}
	e.Units, e.Paid = u, p
	return nil
}

// Take reads the claim and zeroes the entry. A zeroed entry always yields
// ErrNothingToWithdraw.
func (e *CreditEntry) Take() (Claim, error) {
	if e.Withdrawn || (e.Units.IsZero() && e.Paid.IsZero()) {
		return Claim{}, ErrNothingToWithdraw
	}
	c := Claim{Units: e.Units, Paid: e.Paid, Asset: e.Asset}
	e.Units, e.Paid, e.Withdrawn = Zero(), Zero(), true
	return c, nil
}

// Clone returns a deep copy.
func (e *CreditEntry) Clone() *CreditEntry {
	cp := *e
	cp.Units = Copy(e.Units)
	cp.Paid = Copy(e.Paid)
	return &cp
}
