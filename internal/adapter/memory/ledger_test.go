package memory

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/core/domain"
)

var (
	alice  = common.HexToAddress("0xa1")
	bob    = common.HexToAddress("0xb0b")
	escrow = common.HexToAddress("0xe5")
)

func TestAssetLedgerTransferFrom(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(coin, alice, domain.Units(100)))

	err := l.TransferFrom(ctx, coin, alice, escrow, domain.Units(10))
	require.ErrorIs(t, err, ErrInsufficientAllowance)

	l.Approve(coin, alice, escrow, domain.Units(60))
	require.NoError(t, l.TransferFrom(ctx, coin, alice, escrow, domain.Units(50)))

	allowance, err := l.AllowanceOf(ctx, coin, alice, escrow)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(10), allowance)

	bal, err := l.BalanceOf(ctx, coin, escrow)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(50), bal)

	// allowance is kept when the balance is short
	l.Approve(coin, alice, escrow, domain.Units(1000))
	err = l.TransferFrom(ctx, coin, alice, escrow, domain.Units(51))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	allowance, err = l.AllowanceOf(ctx, coin, alice, escrow)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(1000), allowance)
}

func TestAssetLedgerTransfer(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(coin, alice, domain.Units(5)))

	require.ErrorIs(t, l.Transfer(ctx, coin, bob, alice, domain.Units(1)), ErrInsufficientBalance)
	require.NoError(t, l.Transfer(ctx, coin, alice, bob, domain.Units(5)))
	require.NoError(t, l.Transfer(ctx, coin, bob, bob, domain.Units(5)))

	a, _ := l.BalanceOf(ctx, coin, alice)
	b, _ := l.BalanceOf(ctx, coin, bob)
	assert.True(t, a.IsZero())
	assert.Equal(t, domain.Units(5), b)

	other, _ := l.BalanceOf(ctx, common.HexToAddress("0xbeef"), bob)
	assert.True(t, other.IsZero())
}

func TestBank(t *testing.T) {
	ctx := context.Background()
	b := NewBank()
	require.NoError(t, b.Deposit(alice, domain.Units(1000)))

	require.ErrorIs(t, b.Transfer(ctx, alice, bob, domain.Units(1001)), ErrInsufficientBalance)
	require.NoError(t, b.Transfer(ctx, alice, bob, domain.Units(400)))

	a, err := b.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(600), a)
	got, err := b.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(400), got)
}
