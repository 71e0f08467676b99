package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// AssetLedger implements port.AssetRegistry over the asset_balances and
// asset_allowances tables. Every call is its own transaction, independent
// of the launchpad store, and must run on a pool separate from the Store's.
type AssetLedger struct {
	pool *pgxpool.Pool
}

func NewAssetLedger(pool *pgxpool.Pool) *AssetLedger {
	return &AssetLedger{pool: pool}
}

var _ port.AssetRegistry = (*AssetLedger)(nil)

// Mint credits units to an account. Used by seeding and tests.
func (l *AssetLedger) Mint(ctx context.Context, asset, to common.Address, units *uint256.Int) error {
	return pgx.BeginTxFunc(ctx, l.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return creditAsset(ctx, tx, asset, to, units)
	})
}

// Approve sets the allowance of spender over owner's units.
func (l *AssetLedger) Approve(ctx context.Context, asset, owner, spender common.Address, units *uint256.Int) error {
	_, err := l.pool.Exec(ctx, `INSERT INTO asset_allowances (asset, owner, spender, units) VALUES ($1,$2,$3,$4)
ON CONFLICT (asset, owner, spender) DO UPDATE SET units = EXCLUDED.units`,
		addr(asset), addr(owner), addr(spender), numeric(units))
	return err
}

func (l *AssetLedger) AllowanceOf(ctx context.Context, asset, owner, spender common.Address) (*uint256.Int, error) {
	return queryAmount(ctx, l.pool, `SELECT units::text FROM asset_allowances
WHERE asset = $1 AND owner = $2 AND spender = $3`, addr(asset), addr(owner), addr(spender))
}

func (l *AssetLedger) BalanceOf(ctx context.Context, asset, account common.Address) (*uint256.Int, error) {
	return queryAmount(ctx, l.pool, `SELECT units::text FROM asset_balances WHERE asset = $1 AND account = $2`,
		addr(asset), addr(account))
}

func (l *AssetLedger) TransferFrom(ctx context.Context, asset, owner, spender common.Address, units *uint256.Int) error {
	return pgx.BeginTxFunc(ctx, l.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE asset_allowances SET units = units - $4
WHERE asset = $1 AND owner = $2 AND spender = $3 AND units >= $4`,
			addr(asset), addr(owner), addr(spender), numeric(units))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 && !units.IsZero() {
			return ErrInsufficientAllowance
		}
		return moveAsset(ctx, tx, asset, owner, spender, units)
	})
}

func (l *AssetLedger) Transfer(ctx context.Context, asset, from, to common.Address, units *uint256.Int) error {
	return pgx.BeginTxFunc(ctx, l.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return moveAsset(ctx, tx, asset, from, to, units)
	})
}

func moveAsset(ctx context.Context, tx pgx.Tx, asset, from, to common.Address, units *uint256.Int) error {
	if units.IsZero() {
		return nil
	}
	tag, err := tx.Exec(ctx, `UPDATE asset_balances SET units = units - $3
WHERE asset = $1 AND account = $2 AND units >= $3`, addr(asset), addr(from), numeric(units))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s of %s", ErrInsufficientBalance, from.Hex(), asset.Hex())
	}
	return creditAsset(ctx, tx, asset, to, units)
}

func creditAsset(ctx context.Context, tx pgx.Tx, asset, to common.Address, units *uint256.Int) error {
	_, err := tx.Exec(ctx, `INSERT INTO asset_balances (asset, account, units) VALUES ($1,$2,$3)
ON CONFLICT (asset, account) DO UPDATE SET units = asset_balances.units + EXCLUDED.units`,
		addr(asset), addr(to), numeric(units))
	return err
}

// Bank implements port.NativeBank over the native_balances table.
type Bank struct {
	pool *pgxpool.Pool
}

func NewBank(pool *pgxpool.Pool) *Bank {
	return &Bank{pool: pool}
}

var _ port.NativeBank = (*Bank)(nil)

// Deposit credits wei to an account. Used by seeding and tests.
func (b *Bank) Deposit(ctx context.Context, account common.Address, amount *uint256.Int) error {
	return pgx.BeginTxFunc(ctx, b.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return creditNative(ctx, tx, account, amount)
	})
}

func (b *Bank) BalanceOf(ctx context.Context, account common.Address) (*uint256.Int, error) {
	return queryAmount(ctx, b.pool, `SELECT amount::text FROM native_balances WHERE account = $1`, addr(account))
}

func (b *Bank) Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	return pgx.BeginTxFunc(ctx, b.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE native_balances SET amount = amount - $2
WHERE account = $1 AND amount >= $2`, addr(from), numeric(amount))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", ErrInsufficientBalance, from.Hex())
		}
		return creditNative(ctx, tx, to, amount)
	})
}

func creditNative(ctx context.Context, tx pgx.Tx, to common.Address, amount *uint256.Int) error {
	_, err := tx.Exec(ctx, `INSERT INTO native_balances (account, amount) VALUES ($1,$2)
ON CONFLICT (account) DO UPDATE SET amount = native_balances.amount + EXCLUDED.amount`,
		addr(to), numeric(amount))
	return err
}

// queryAmount runs a single-column amount query. A missing row reads as zero.
func queryAmount(ctx context.Context, pool *pgxpool.Pool, query string, args ...any) (*uint256.Int, error) {
	var s string
	err := pool.QueryRow(ctx, query, args...).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Zero(), nil
	}
	if err != nil {
		return nil, err
	}
	return amount(s)
}
