package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// AssetLedger is an in-process ERC-20 style ledger holding balances and
// allowances for any number of asset contracts.
type AssetLedger struct {
	mu         sync.Mutex
	balances   map[common.Address]map[common.Address]*uint256.Int
	allowances map[common.Address]map[[2]common.Address]*uint256.Int
}

func NewAssetLedger() *AssetLedger {
	return &AssetLedger{
		balances:   make(map[common.Address]map[common.Address]*uint256.Int),
		allowances: make(map[common.Address]map[[2]common.Address]*uint256.Int),
	}
}

var _ port.AssetRegistry = (*AssetLedger)(nil)

// Mint credits units of asset to account.
func (l *AssetLedger) Mint(asset, to common.Address, units *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.credit(asset, to, units)
}

// Approve sets the allowance of spender over owner's units.
func (l *AssetLedger) Approve(asset, owner, spender common.Address, units *uint256.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[asset] == nil {
		l.allowances[asset] = make(map[[2]common.Address]*uint256.Int)
	}
	l.allowances[asset][[2]common.Address{owner, spender}] = domain.Copy(units)
}

func (l *AssetLedger) AllowanceOf(_ context.Context, asset, owner, spender common.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.Copy(l.allowances[asset][[2]common.Address{owner, spender}]), nil
}

func (l *AssetLedger) BalanceOf(_ context.Context, asset, account common.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.Copy(l.balances[asset][account]), nil
}

func (l *AssetLedger) TransferFrom(_ context.Context, asset, owner, spender common.Address, units *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := [2]common.Address{owner, spender}
	left, err := domain.CheckedSub(l.allowances[asset][key], units)
	if err != nil {
		return fmt.Errorf("%w: %s of %s", ErrInsufficientAllowance, units, owner.Hex())
	}
	if err = l.move(asset, owner, spender, units); err != nil {
		return err
	}
	if l.allowances[asset] == nil {
		l.allowances[asset] = make(map[[2]common.Address]*uint256.Int)
	}
	l.allowances[asset][key] = left
	return nil
}

func (l *AssetLedger) Transfer(_ context.Context, asset, from, to common.Address, units *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(asset, from, to, units)
}

func (l *AssetLedger) move(asset, from, to common.Address, units *uint256.Int) error {
	left, err := domain.CheckedSub(l.balances[asset][from], units)
	if err != nil {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from.Hex(), domain.Copy(l.balances[asset][from]), units)
	}
	if from == to {
		return nil
	}
	if err = l.credit(asset, to, units); err != nil {
		return err
	}
	l.balances[asset][from] = left
	return nil
}

func (l *AssetLedger) credit(asset, to common.Address, units *uint256.Int) error {
	if l.balances[asset] == nil {
		l.balances[asset] = make(map[common.Address]*uint256.Int)
	}
	sum, err := domain.CheckedAdd(l.balances[asset][to], units)
	if err != nil {
		return err
	}
	l.balances[asset][to] = sum
	return nil
}

// Bank is an in-process native currency ledger.
type Bank struct {
	mu       sync.Mutex
	balances map[common.Address]*uint256.Int
}

func NewBank() *Bank {
	return &Bank{balances: make(map[common.Address]*uint256.Int)}
}

var _ port.NativeBank = (*Bank)(nil)

// Deposit credits amount wei to account.
func (b *Bank) Deposit(account common.Address, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	sum, err := domain.CheckedAdd(b.balances[account], amount)
	if err != nil {
		return err
	}
	b.balances[account] = sum
	return nil
}

func (b *Bank) BalanceOf(_ context.Context, account common.Address) (*uint256.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.Copy(b.balances[account]), nil
}

func (b *Bank) Transfer(_ context.Context, from, to common.Address, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	left, err := domain.CheckedSub(b.balances[from], amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from.Hex(), domain.Copy(b.balances[from]), amount)
	}
	if from == to {
		return nil
	}
	sum, err := domain.CheckedAdd(b.balances[to], amount)
	if err != nil {
		return err
	}
	b.balances[from], b.balances[to] = left, sum
	return nil
}
