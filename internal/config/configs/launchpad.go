package configs

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"launchpad/internal/core/domain"
)

// Store driver names accepted by STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Policy is the governance policy a fresh deployment starts with. It is
// written once when no policy exists; afterwards only governance calls
// change it.
type Policy struct {
	Owner     common.Address `env:"OWNER"`
	FeeRate   uint256.Int    `env:"FEE_RATE" envDefault:"100000000000000"`
	MinDays   int64          `env:"MIN_DAYS" envDefault:"1"`
	MaxDays   int64          `env:"MAX_DAYS" envDefault:"90"`
	MinSupply uint256.Int    `env:"MIN_SUPPLY" envDefault:"100"`
	Locked    bool           `env:"LOCKED" envDefault:"false"`
}

// Domain validates the section and converts it to a domain.Policy.
func (c Policy) Domain() (*domain.Policy, error) {
	if c.Owner == (common.Address{}) {
		return nil, errors.New("POLICY_OWNER is required")
	}
	if err := domain.CheckBounds(c.MinDays, c.MaxDays); err != nil {
		return nil, fmt.Errorf("policy day bounds: %w", err)
	}
	p := domain.DefaultPolicy(c.Owner)
	p.FeeRate = domain.Copy(&c.FeeRate)
	p.MinDays, p.MaxDays = c.MinDays, c.MaxDays
	p.MinSupply = domain.Copy(&c.MinSupply)
	p.Locked = c.Locked
	return p, nil
}

// Kafka configures the lifecycle event stream. With no brokers events are
// only logged.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"launchpad.events"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
