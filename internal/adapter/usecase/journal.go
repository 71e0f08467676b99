package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"launchpad/internal/core/port"
)

// journal records the external transfers executed inside a store
// transaction together with their reversal. When the transaction does not
// commit, the reversals run newest first so the caller sees no transfer at
// all.
type journal struct {
	id   string
	undo []compensation
}

type compensation struct {
	what string
	fn   func(ctx context.Context) error
}

func newJournal() *journal {
	return &journal{id: uuid.NewString()}
}

// onAbort registers fn to reverse a transfer that has just succeeded.
func (j *journal) onAbort(what string, fn func(ctx context.Context) error) {
	j.undo = append(j.undo, compensation{what: what, fn: fn})
}

func (j *journal) rollback(ctx context.Context, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	for i := len(j.undo) - 1; i >= 0; i-- {
		c := j.undo[i]
		if err := c.fn(ctx); err != nil {
			logger.Error("compensation failed",
				slog.String("journal", j.id),
				slog.String("transfer", c.what),
				slog.Any("error", err))
			continue
		}
		logger.Warn("transfer reversed", slog.String("journal", j.id), slog.String("transfer", c.what))
	}
	j.undo = nil
}

// atomically runs fn in a store transaction and reverses the journaled
// transfers if fn or the commit fails. The outcome is counted under op.
func atomically(ctx context.Context, store port.Store, logger *slog.Logger, op string, fn func(tx port.Tx, j *journal) error) error {
	j := newJournal()
	err := store.InTx(ctx, func(tx port.Tx) error {
		return fn(tx, j)
	})
	if err != nil {
		j.rollback(ctx, logger)
	}
	observe(op, err)
	return err
}
