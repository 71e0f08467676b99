package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launchpad/internal/config"
	"launchpad/internal/db"
)

// app carries what every subcommand needs once the root command has
// loaded configuration.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of the launchpad service. The root command loads
// configuration from the environment and builds the logger; subcommands
// serve the API, apply migrations or seed demo balances. SIGINT and
// SIGTERM cancel the command context, which shuts the server down
// gracefully.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "launchpad",
		Short:         "Milestone-gated token sale engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg, a.logger = cfg, newLogger(cfg)
			return nil
		},
	}
	cmd.AddCommand(newServeCommand(a), newMigrateCommand(a), newSeedCommand(a))
	return cmd
}

func newLogger(cfg config.Config) *slog.Logger {
	var handler slog.Handler
	level := cfg.Log.SlogLevel()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler).With(slog.String("env", cfg.Env))
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				a.logger.Error("migration error", slog.Any("error", err))
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fund demo accounts in the PostgreSQL ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), a.cfg.Psql)
			if err != nil {
				a.logger.Error("database connection error", slog.Any("error", err))
				return err
			}
			defer pool.Close()
			if err = db.Seed(cmd.Context(), pool, a.cfg.Escrow); err != nil {
				a.logger.Error("seed error", slog.Any("error", err))
				return err
			}
			a.logger.Info("demo accounts funded")
			return nil
		},
	}
}
