package cli

import (
	"context"
	"fmt"

	"dsa-quiz-service/internal/config"
	"dsa-quiz-service/internal/infra/memory"
	pginfra "dsa-quiz-service/internal/infra/postgres"
	pgmigrations "dsa-quiz-service/internal/infra/postgres/migrations"
	"dsa-quiz-service/internal/logging"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"
)

// NewMigrateCmd applies database migrations and installs the built-in catalog.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := logging.New(appName, cfg.Log.Env, cfg.Log.Level)
			return runMigrationsWithConfig(cmd.Context(), cfg, seed, logger)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "upsert the built-in question catalog")
	return cmd
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config, seed bool, logger zerolog.Logger) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	logger = logger.With().Str("component", "migrate").Logger()

	db := pginfra.OpenBun(cfg.Postgres.URL)
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return err
	}
	logger.Info().Str("group", group.String()).Msg("migrations applied")

	if !seed {
		return nil
	}
	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	catalog := memory.BuiltinCatalog()
	if err := pginfra.SeedCatalog(ctx, pool, catalog); err != nil {
		return err
	}
	logger.Info().Int("questions", len(catalog)).Msg("catalog seeded")
	return nil
}
