package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// AssetRegistry is the fungible-asset ledger the launchpad escrows into.
// Each call names the asset contract it targets. The core never relies on
// anything beyond these four operations and treats any error as a failed
// transfer.
type AssetRegistry interface {
	// AllowanceOf returns how many units spender may pull from owner.
	AllowanceOf(ctx context.Context, asset, owner, spender common.Address) (*uint256.Int, error)
	// TransferFrom moves units from owner to spender, consuming allowance.
	TransferFrom(ctx context.Context, asset, owner, spender common.Address, units *uint256.Int) error
	// BalanceOf returns the units held by account.
	BalanceOf(ctx context.Context, asset, account common.Address) (*uint256.Int, error)
	// Transfer moves units held by from to to.
	Transfer(ctx context.Context, asset, from, to common.Address, units *uint256.Int) error
}

// NativeBank moves native currency (wei). Payments attached to a call are
// collected into escrow with Transfer and paid back out the same way.
type NativeBank interface {
	BalanceOf(ctx context.Context, account common.Address) (*uint256.Int, error)
	Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error
}
