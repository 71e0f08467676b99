package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var errNoPolicy = errors.New("policy not initialised")

// Store implements port.Store in process memory. Transactions are fully
// serialised by a single mutex and stage their writes in an overlay that is
// merged only when the callback succeeds.
type Store struct {
	mu        sync.Mutex
	policy    *domain.Policy
	campaigns map[int64]*domain.Campaign
	credits   map[domain.CreditKey]*domain.CreditEntry
	launched  map[common.Address]struct{}
	count     int64
	now       func() time.Time
}

// NewStore returns an empty store. now stamps CreatedAt/UpdatedAt; nil
// means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		campaigns: make(map[int64]*domain.Campaign),
		credits:   make(map[domain.CreditKey]*domain.CreditEntry),
		launched:  make(map[common.Address]struct{}),
		now:       now,
	}
}

var _ port.Store = (*Store)(nil)

// InTx runs fn against an overlay and merges it on success.
func (s *Store) InTx(ctx context.Context, fn func(tx port.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{
		s:         s,
		count:     s.count,
		campaigns: make(map[int64]*domain.Campaign),
		credits:   make(map[domain.CreditKey]*domain.CreditEntry),
		launched:  make(map[common.Address]struct{}),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.merge()
	return nil
}

func (s *Store) InitPolicy(_ context.Context, p *domain.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == nil {
		s.policy = p.Clone()
	}
	return nil
}

func (s *Store) Policy(_ context.Context) (*domain.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == nil {
		return nil, errNoPolicy
	}
	return s.policy.Clone(), nil
}

func (s *Store) Campaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	return c.Clone(), nil
}

func (s *Store) CampaignCount(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

func (s *Store) Credit(_ context.Context, key domain.CreditKey) (*domain.CreditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.credits[key]
	if !ok {
		return domain.NewCreditEntry(key, common.Address{}), nil
	}
	return e.Clone(), nil
}

type memTx struct {
	s         *Store
	policy    *domain.Policy
	count     int64
	campaigns map[int64]*domain.Campaign
	credits   map[domain.CreditKey]*domain.CreditEntry
	launched  map[common.Address]struct{}
}

func (t *memTx) merge() {
	if t.policy != nil {
		t.s.policy = t.policy
	}
	for id, c := range t.campaigns {
		t.s.campaigns[id] = c
	}
	for k, e := range t.credits {
		t.s.credits[k] = e
	}
	for a := range t.launched {
		t.s.launched[a] = struct{}{}
	}
	t.s.count = t.count
}

func (t *memTx) PolicyForUpdate(_ context.Context) (*domain.Policy, error) {
	if t.policy != nil {
		return t.policy.Clone(), nil
	}
	if t.s.policy == nil {
		return nil, errNoPolicy
	}
	return t.s.policy.Clone(), nil
}

func (t *memTx) SavePolicy(_ context.Context, p *domain.Policy) error {
	t.policy = p.Clone()
	return nil
}

func (t *memTx) HasLaunched(_ context.Context, developer common.Address) (bool, error) {
	if _, ok := t.launched[developer]; ok {
		return true, nil
	}
	_, ok := t.s.launched[developer]
	return ok, nil
}

func (t *memTx) InsertCampaign(ctx context.Context, c *domain.Campaign) (int64, error) {
	launched, _ := t.HasLaunched(ctx, c.Developer)
	if launched {
		return 0, domain.ErrAlreadyLaunched
	}
	t.count++
	now := t.s.now().UTC()
	stored := c.Clone()
	stored.ID = t.count
	stored.CreatedAt, stored.UpdatedAt = now, now
	t.campaigns[stored.ID] = stored
	t.launched[c.Developer] = struct{}{}
	return stored.ID, nil
}

func (t *memTx) CampaignForUpdate(_ context.Context, id int64) (*domain.Campaign, error) {
	if c, ok := t.campaigns[id]; ok {
		return c.Clone(), nil
	}
	if c, ok := t.s.campaigns[id]; ok {
		return c.Clone(), nil
	}
	return nil, domain.ErrCampaignNotFound
}

func (t *memTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	if _, err := t.CampaignForUpdate(ctx, c.ID); err != nil {
		return err
	}
	stored := c.Clone()
	stored.UpdatedAt = t.s.now().UTC()
	t.campaigns[c.ID] = stored
	return nil
}

func (t *memTx) CreditForUpdate(_ context.Context, key domain.CreditKey) (*domain.CreditEntry, error) {
	if e, ok := t.credits[key]; ok {
		return e.Clone(), nil
	}
	if e, ok := t.s.credits[key]; ok {
		return e.Clone(), nil
	}
	return nil, nil
}

func (t *memTx) SaveCredit(_ context.Context, e *domain.CreditEntry) error {
	stored := e.Clone()
	stored.UpdatedAt = t.s.now().UTC()
	t.credits[e.CreditKey] = stored
	return nil
}
