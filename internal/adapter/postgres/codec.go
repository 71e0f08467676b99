package postgres

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"launchpad/internal/core/domain"
)

// Amounts are stored as NUMERIC(78,0), wide enough for any 256-bit value.
// They are written as pgtype.Numeric and read back through a ::text cast.

const uniqueViolation = "23505"

func numeric(v *uint256.Int) pgtype.Numeric {
	return pgtype.Numeric{Int: domain.Copy(v).ToBig(), Valid: true}
}

func amount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("decode numeric %q: %w", s, err)
	}
	return v, nil
}

// amounts decodes pairs of (destination, column text).
func amounts(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		dst, ok := pairs[i].(**uint256.Int)
		if !ok {
			return fmt.Errorf("amounts: argument %d is %T", i, pairs[i])
		}
		v, err := amount(pairs[i+1].(string))
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}

func addr(a common.Address) string {
	return a.Hex()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
