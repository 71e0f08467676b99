package db

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpad/internal/adapter/postgres"
)

// DemoDeveloper owns a demo asset with enough units and native currency to
// launch a campaign.
type DemoDeveloper struct {
	Account common.Address
	Asset   common.Address
}

// Demo holds the accounts funded by Seed.
type Demo struct {
	Developers []DemoDeveloper
	Buyers     []common.Address
	Units      *uint256.Int // asset units minted and approved per developer
	Wei        *uint256.Int // native balance per account
}

// DemoAccounts returns the fixed demo accounts: three developers, each with
// its own asset, and five buyers.
func DemoAccounts() Demo {
	d := Demo{
		Units: uint256.NewInt(1_000_000),
		Wei:   new(uint256.Int).Mul(uint256.NewInt(10), uint256.NewInt(1_000_000_000_000_000_000)),
	}
	for i := 1; i <= 3; i++ {
		d.Developers = append(d.Developers, DemoDeveloper{
			Account: common.HexToAddress(fmt.Sprintf("0x%040x", 0xd0+i)),
			Asset:   common.HexToAddress(fmt.Sprintf("0x%040x", 0xa550+i)),
		})
	}
	for i := 1; i <= 5; i++ {
		d.Buyers = append(d.Buyers, common.HexToAddress(fmt.Sprintf("0x%040x", 0xb0+i)))
	}
	return d
}

// Seed funds the demo accounts in the PostgreSQL ledger and approves escrow
// to pull each developer's units. Balances are added, so seeding twice
// doubles them.
func Seed(ctx context.Context, pool *pgxpool.Pool, escrow common.Address) error {
	assets, bank := postgres.NewAssetLedger(pool), postgres.NewBank(pool)
	demo := DemoAccounts()

	for _, dev := range demo.Developers {
		if err := assets.Mint(ctx, dev.Asset, dev.Account, demo.Units); err != nil {
			return fmt.Errorf("mint %s: %w", dev.Asset.Hex(), err)
		}
		if err := assets.Approve(ctx, dev.Asset, dev.Account, escrow, demo.Units); err != nil {
			return fmt.Errorf("approve %s: %w", dev.Asset.Hex(), err)
		}
		if err := bank.Deposit(ctx, dev.Account, demo.Wei); err != nil {
			return fmt.Errorf("fund %s: %w", dev.Account.Hex(), err)
		}
	}
	for _, b := range demo.Buyers {
		if err := bank.Deposit(ctx, b, demo.Wei); err != nil {
			return fmt.Errorf("fund %s: %w", b.Hex(), err)
		}
	}
	return nil
}
