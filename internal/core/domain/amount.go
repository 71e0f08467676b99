package domain

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Amounts are unsigned 256-bit integers. Native currency is expressed in its
// smallest unit (wei) and assets in raw units. All arithmetic goes through
// the checked helpers below so nothing can silently wrap.

// Zero returns a fresh zero amount.
func Zero() *uint256.Int {
	return new(uint256.Int)
}

// Units is a shorthand for uint256.NewInt.
func Units(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// Copy returns an independent copy of v. A nil v copies as zero.
func Copy(v *uint256.Int) *uint256.Int {
	if v == nil {
		return Zero()
	}
	return new(uint256.Int).Set(v)
}

// CheckedAdd returns a+b or ErrAmountOverflow.
func CheckedAdd(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(orZero(a), orZero(b))
	if overflow {
		return nil, fmt.Errorf("%w: %s + %s", ErrAmountOverflow, a, b)
	}
	return sum, nil
}

// CheckedSub returns a-b or ErrAmountOverflow when b > a.
func CheckedSub(a, b *uint256.Int) (*uint256.Int, error) {
	diff, underflow := new(uint256.Int).SubOverflow(orZero(a), orZero(b))
	if underflow {
		return nil, fmt.Errorf("%w: %s - %s", ErrAmountOverflow, a, b)
	}
	return diff, nil
}

// CheckedMul returns a*b or ErrAmountOverflow.
func CheckedMul(a, b *uint256.Int) (*uint256.Int, error) {
	prod, overflow := new(uint256.Int).MulOverflow(orZero(a), orZero(b))
	if overflow {
		return nil, fmt.Errorf("%w: %s * %s", ErrAmountOverflow, a, b)
	}
	return prod, nil
}

// Quo returns floor(a/b). Division by zero yields zero, matching uint256.
func Quo(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Div(orZero(a), orZero(b))
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return Zero()
	}
	return v
}
