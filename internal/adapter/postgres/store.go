package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

var errNoPolicy = errors.New("policy not initialised")

const (
	policyColumns = `owner, fee_rate::text, min_days, max_days, min_supply::text, locked, collected_fees::text`

	campaignColumns = `id, developer, asset, start_time, end_time,
        price_per_unit::text, milestone::text, original::text, remaining::text, raised::text,
        outcome, paid, retrieved, created_at, updated_at`

	creditColumns = `account, campaign_id, asset, units::text, paid::text, withdrawn, updated_at`
)

// Store implements port.Store on PostgreSQL using pgxpool. Transactions run
// at READ COMMITTED and serialise on row locks: every mutation first locks
// the campaign or the single launchpad_state row with SELECT ... FOR UPDATE.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var _ port.Store = (*Store)(nil)

func (s *Store) InTx(ctx context.Context, fn func(tx port.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()
	if err = fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// InitPolicy inserts p as the single state row unless one exists.
func (s *Store) InitPolicy(ctx context.Context, p *domain.Policy) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO launchpad_state
    (id, owner, fee_rate, min_days, max_days, min_supply, locked, collected_fees, campaign_count)
VALUES (1,$1,$2,$3,$4,$5,$6,$7,0) ON CONFLICT (id) DO NOTHING`,
		addr(p.Owner), numeric(p.FeeRate), p.MinDays, p.MaxDays, numeric(p.MinSupply), p.Locked, numeric(p.CollectedFees))
	return err
}

func (s *Store) Policy(ctx context.Context) (*domain.Policy, error) {
	return scanPolicy(s.pool.QueryRow(ctx, `SELECT `+policyColumns+` FROM launchpad_state WHERE id = 1`))
}

func (s *Store) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

func (s *Store) CampaignCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT campaign_count FROM launchpad_state WHERE id = 1`).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (s *Store) Credit(ctx context.Context, key domain.CreditKey) (*domain.CreditEntry, error) {
	e, err := scanCredit(s.pool.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits
WHERE account = $1 AND campaign_id = $2`, addr(key.Account), key.CampaignID))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return domain.NewCreditEntry(key, common.Address{}), nil
	}
	return e, nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) PolicyForUpdate(ctx context.Context) (*domain.Policy, error) {
	return scanPolicy(t.tx.QueryRow(ctx, `SELECT `+policyColumns+` FROM launchpad_state WHERE id = 1 FOR UPDATE`))
}

func (t *pgTx) SavePolicy(ctx context.Context, p *domain.Policy) error {
	_, err := t.tx.Exec(ctx, `UPDATE launchpad_state
SET owner = $1, fee_rate = $2, min_days = $3, max_days = $4, min_supply = $5,
    locked = $6, collected_fees = $7, updated_at = now()
WHERE id = 1`,
		addr(p.Owner), numeric(p.FeeRate), p.MinDays, p.MaxDays, numeric(p.MinSupply), p.Locked, numeric(p.CollectedFees))
	return err
}

func (t *pgTx) HasLaunched(ctx context.Context, developer common.Address) (bool, error) {
	var ok bool
	err := t.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM launched_developers WHERE developer = $1)`, addr(developer)).Scan(&ok)
	return ok, err
}

func (t *pgTx) InsertCampaign(ctx context.Context, c *domain.Campaign) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `UPDATE launchpad_state SET campaign_count = campaign_count + 1, updated_at = now()
WHERE id = 1 RETURNING campaign_count`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errNoPolicy
	}
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO campaigns
    (id, developer, asset, start_time, end_time, price_per_unit, milestone, original, remaining, raised,
     outcome, paid, retrieved, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())`,
		id, addr(c.Developer), addr(c.Asset), c.StartTime, c.EndTime,
		numeric(c.PricePerUnit), numeric(c.Milestone), numeric(c.Original), numeric(c.Remaining), numeric(c.Raised),
		string(c.Outcome), c.Paid, c.Retrieved)
	if err != nil {
		return 0, err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO launched_developers (developer, campaign_id) VALUES ($1,$2)`, addr(c.Developer), id)
	if isUniqueViolation(err) {
		return 0, domain.ErrAlreadyLaunched
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *pgTx) CampaignForUpdate(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(t.tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
}

// UpdateCampaign writes the mutable columns. Terms fixed at launch are never
// rewritten.
func (t *pgTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns
SET remaining = $2, raised = $3, outcome = $4, paid = $5, retrieved = $6, updated_at = now()
WHERE id = $1`,
		c.ID, numeric(c.Remaining), numeric(c.Raised), string(c.Outcome), c.Paid, c.Retrieved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (t *pgTx) CreditForUpdate(ctx context.Context, key domain.CreditKey) (*domain.CreditEntry, error) {
	return scanCredit(t.tx.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits
WHERE account = $1 AND campaign_id = $2 FOR UPDATE`, addr(key.Account), key.CampaignID))
}

func (t *pgTx) SaveCredit(ctx context.Context, e *domain.CreditEntry) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO credits (account, campaign_id, asset, units, paid, withdrawn, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now())
ON CONFLICT (account, campaign_id) DO UPDATE
SET units = EXCLUDED.units, paid = EXCLUDED.paid, withdrawn = EXCLUDED.withdrawn, updated_at = now()`,
		addr(e.Account), e.CampaignID, addr(e.Asset), numeric(e.Units), numeric(e.Paid), e.Withdrawn)
	return err
}

func scanPolicy(row pgx.Row) (*domain.Policy, error) {
	var p domain.Policy
	var owner, feeRate, minSupply, collected string
	err := row.Scan(&owner, &feeRate, &p.MinDays, &p.MaxDays, &minSupply, &p.Locked, &collected)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errNoPolicy
	}
	if err != nil {
		return nil, err
	}
	p.Owner = common.HexToAddress(owner)
	if err = amounts(&p.FeeRate, feeRate, &p.MinSupply, minSupply, &p.CollectedFees, collected); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	var developer, asset, outcome string
	var price, milestone, original, remaining, raised string
	err := row.Scan(&c.ID, &developer, &asset, &c.StartTime, &c.EndTime,
		&price, &milestone, &original, &remaining, &raised,
		&outcome, &c.Paid, &c.Retrieved, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Developer, c.Asset = common.HexToAddress(developer), common.HexToAddress(asset)
	c.Outcome = domain.Outcome(outcome)
	if !c.Outcome.Valid() {
		return nil, fmt.Errorf("campaign %d: unknown outcome %q", c.ID, outcome)
	}
	c.StartTime, c.EndTime = c.StartTime.UTC(), c.EndTime.UTC()
	err = amounts(&c.PricePerUnit, price, &c.Milestone, milestone, &c.Original, original,
		&c.Remaining, remaining, &c.Raised, raised)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// scanCredit returns nil without error when the row does not exist.
func scanCredit(row pgx.Row) (*domain.CreditEntry, error) {
	var e domain.CreditEntry
	var account, asset, units, paid string
	err := row.Scan(&account, &e.CampaignID, &asset, &units, &paid, &e.Withdrawn, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Account, e.Asset = common.HexToAddress(account), common.HexToAddress(asset)
	if err = amounts(&e.Units, units, &e.Paid, paid); err != nil {
		return nil, err
	}
	return &e, nil
}
