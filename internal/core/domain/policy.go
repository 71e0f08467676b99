package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// DefaultFeeRate charges one native unit (1e18 wei) per 10,000 asset units.
var DefaultFeeRate = uint256.NewInt(100_000_000_000_000)

const (
	DefaultMinDays   = 1
	DefaultMaxDays   = 90
	DefaultMinSupply = 100
)

// Policy is the process-wide governance state. It is owned by the
// governance use case and read by every launch.
type Policy struct {
	Owner         common.Address
	FeeRate       *uint256.Int // wei per asset unit
	MinDays       int64
	MaxDays       int64
	MinSupply     *uint256.Int
	Locked        bool
	CollectedFees *uint256.Int // protocol fees held in escrow
}

// DefaultPolicy returns the policy a fresh deployment starts with.
func DefaultPolicy(owner common.Address) *Policy {
	return &Policy{
		Owner:         owner,
		FeeRate:       Copy(DefaultFeeRate),
		MinDays:       DefaultMinDays,
		MaxDays:       DefaultMaxDays,
		MinSupply:     Units(DefaultMinSupply),
		CollectedFees: Zero(),
	}
}

// ProtocolFee returns supply * FeeRate.
func (p *Policy) ProtocolFee(supply *uint256.Int) (*uint256.Int, error) {
	return CheckedMul(supply, p.FeeRate)
}

// CheckDuration validates a sale window length in days.
func (p *Policy) CheckDuration(days int64) error {
	if days < p.MinDays || days > p.MaxDays {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrDurationOutOfRange, days, p.MinDays, p.MaxDays)
	}
	return nil
}

// CheckBounds validates a candidate pair of day bounds.
func CheckBounds(minDays, maxDays int64) error {
	if minDays < 1 || minDays > maxDays {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, minDays, maxDays)
	}
	return nil
}

// IsOwner reports whether account owns the policy.
func (p *Policy) IsOwner(account common.Address) bool {
	return account == p.Owner
}

// Clone returns a deep copy.
func (p *Policy) Clone() *Policy {
	cp := *p
	cp.FeeRate = Copy(p.FeeRate)
	cp.MinSupply = Copy(p.MinSupply)
	cp.CollectedFees = Copy(p.CollectedFees)
	return &cp
}
