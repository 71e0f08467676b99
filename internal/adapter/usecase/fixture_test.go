package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"launchpad/internal/adapter/memory"
	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000a0")
	escrow    = common.HexToAddress("0x00000000000000000000000000000000000000e5")
	developer = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	buyer     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	buyer2    = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	asset     = common.HexToAddress("0x0000000000000000000000000000000000000a55")

	epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ether = uint256.NewInt(1_000_000_000_000_000_000)
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Publish(_ context.Context, events ...domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *recorder) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]domain.EventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type fixture struct {
	t      *testing.T
	ctx    context.Context
	store  *memory.Store
	assets *memory.AssetLedger
	bank   *memory.Bank
	clock  *fakeClock
	events *recorder
	svc    *LaunchpadUseCase
	gov    *GovernanceUseCase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		clock:  &fakeClock{t: epoch},
		assets: memory.NewAssetLedger(),
		bank:   memory.NewBank(),
		events: &recorder{},
	}
	f.store = memory.NewStore(f.clock.Now)
	require.NoError(t, f.store.InitPolicy(f.ctx, domain.DefaultPolicy(owner)))
	deps := f.deps(f.assets, f.bank)
	f.svc = NewLaunchpadUseCase(deps)
	f.gov = NewGovernanceUseCase(deps)

	f.fund(developer, ether)
	f.fund(buyer, ether)
	f.fund(buyer2, ether)
	require.NoError(t, f.assets.Mint(asset, developer, domain.Units(10_000)))
	f.assets.Approve(asset, developer, escrow, domain.Units(10_000))
	return f
}

func (f *fixture) deps(assets port.AssetRegistry, bank port.NativeBank) Deps {
	return Deps{
		Store:  f.store,
		Assets: assets,
		Bank:   bank,
		Events: f.events,
		Escrow: escrow,
		Logger: discardLogger(),
		Now:    f.clock.Now,
	}
}

func (f *fixture) fund(account common.Address, wei *uint256.Int) {
	f.t.Helper()
	require.NoError(f.t, f.bank.Deposit(account, wei))
}

// launchReq returns the request used across tests: 1000 units, milestone
// 60, price 1000 wei, 30 days starting now.
func (f *fixture) launchReq() port.LaunchReq {
	return port.LaunchReq{
		Developer:    developer,
		StartTime:    f.clock.Now(),
		DurationDays: 30,
		Milestone:    domain.Units(60),
		PricePerUnit: domain.Units(1000),
		Supply:       domain.Units(1000),
		Asset:        asset,
		Value:        f.fee(1000),
	}
}

func (f *fixture) fee(supply uint64) *uint256.Int {
	f.t.Helper()
	fee, err := f.svc.EstimateProtocolFee(f.ctx, domain.Units(supply))
	require.NoError(f.t, err)
	return fee
}

func (f *fixture) launch() int64 {
	f.t.Helper()
	id, err := f.svc.Launch(f.ctx, f.launchReq())
	require.NoError(f.t, err)
	return id
}

func (f *fixture) campaign(id int64) *domain.Campaign {
	f.t.Helper()
	c, err := f.svc.Campaign(f.ctx, id)
	require.NoError(f.t, err)
	return c
}

func (f *fixture) nativeOf(account common.Address) *uint256.Int {
	f.t.Helper()
	b, err := f.bank.BalanceOf(f.ctx, account)
	require.NoError(f.t, err)
	return b
}

func (f *fixture) unitsOf(account common.Address) *uint256.Int {
	f.t.Helper()
	b, err := f.assets.BalanceOf(f.ctx, asset, account)
	require.NoError(f.t, err)
	return b
}

func sub(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(a, b)
}
