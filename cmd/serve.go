package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "launchpad/internal/adapter/http"
	"launchpad/internal/adapter/kafka"
	"launchpad/internal/adapter/memory"
	"launchpad/internal/adapter/postgres"
	"launchpad/internal/adapter/usecase"
	"launchpad/internal/config"
	"launchpad/internal/config/configs"
	"launchpad/internal/db"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.serve(cmd.Context()); err != nil {
				a.logger.Error("serve error", slog.Any("error", err))
				return err
			}
			return nil
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	policy, err := a.cfg.Policy.Domain()
	if err != nil {
		return err
	}
	deps := usecase.Deps{Escrow: a.cfg.Escrow, Logger: a.logger}

	switch a.cfg.StoreDriver {
	case configs.StoreMemory:
		assets, bank := memory.NewAssetLedger(), memory.NewBank()
		if err = fundDemo(assets, bank, a.cfg); err != nil {
			return err
		}
		deps.Store, deps.Assets, deps.Bank = memory.NewStore(nil), assets, bank
		a.logger.Warn("using in-memory store; state is lost on exit")
	default:
		// Optionally run migrations if configured.
		if a.cfg.Psql.RunMigrations {
			if err = db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		// Ledger calls run inside store transactions; a shared pool could
		// be exhausted by transactions parked on row locks.
		ledgerPool, err := db.NewPostgresPool(ctx, a.cfg.Psql.Ledger())
		if err != nil {
			return fmt.Errorf("ledger connection: %w", err)
		}
		defer ledgerPool.Close()
		deps.Store = postgres.NewStore(pool)
		deps.Assets, deps.Bank = postgres.NewAssetLedger(ledgerPool), postgres.NewBank(ledgerPool)
	}

	if err = deps.Store.InitPolicy(ctx, policy); err != nil {
		return fmt.Errorf("init policy: %w", err)
	}

	if a.cfg.Kafka.Enabled() {
		pub := kafka.NewPublisher(a.cfg.Kafka, a.logger)
		defer func() {
			if err := pub.Close(); err != nil {
				a.logger.Error("kafka close error", slog.Any("error", err))
			}
		}()
		deps.Events = pub
	} else {
		deps.Events = kafka.NewLogPublisher(a.logger)
	}

	handler := httpadapter.NewHandler(usecase.NewLaunchpadUseCase(deps), usecase.NewGovernanceUseCase(deps),
		a.logger, a.cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.logger.Info("server gracefully stopped")
	return nil
}

// fundDemo gives the in-memory ledger the same demo balances the seed
// command writes to PostgreSQL.
func fundDemo(assets *memory.AssetLedger, bank *memory.Bank, cfg config.Config) error {
	demo := db.DemoAccounts()
	for _, dev := range demo.Developers {
		if err := assets.Mint(dev.Asset, dev.Account, demo.Units); err != nil {
			return err
		}
		assets.Approve(dev.Asset, dev.Account, cfg.Escrow, demo.Units)
		if err := bank.Deposit(dev.Account, demo.Wei); err != nil {
			return err
		}
	}
	for _, b := range demo.Buyers {
		if err := bank.Deposit(b, demo.Wei); err != nil {
			return err
		}
	}
	return nil
}
