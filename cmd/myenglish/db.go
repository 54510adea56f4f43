package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-suite/internal/adapter/postgres"
	pgcatalog "github.com/heartmarshall/myenglish-suite/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/myenglish-suite/internal/adapter/tomlpack"
	"github.com/heartmarshall/myenglish-suite/internal/app"
	"github.com/heartmarshall/myenglish-suite/internal/config"
	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/migrations"
)

func loadDatabaseConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	return cfg, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply catalog schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDatabaseConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			db, err := sql.Open("pgx", cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("goose provider: %w", err)
			}

			action := "up"
			if len(args) == 1 {
				action = args[0]
			}
			ctx := cmd.Context()
			switch action {
			case "down":
				res, err := provider.Down(ctx)
				if err != nil {
					return fmt.Errorf("goose down: %w", err)
				}
				if res != nil {
					logger.Info("migration rolled back", slog.Int64("version", res.Source.Version))
				}
			case "status":
				statuses, err := provider.Status(ctx)
				if err != nil {
					return fmt.Errorf("goose status: %w", err)
				}
				for _, s := range statuses {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s.State, s.Source.Path)
				}
			default:
				results, err := provider.Up(ctx)
				if err != nil {
					return fmt.Errorf("goose up: %w", err)
				}
				logger.Info("migrations applied", slog.Int("count", len(results)))
			}
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the postgres catalog with the built-in content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadDatabaseConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			pack := content.Builtin()
			if file != "" {
				overlay, err := tomlpack.Load(file)
				if err != nil {
					return err
				}
				pack = pack.Merge(overlay)
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pgcatalog.New(pool).Seed(ctx, postgres.NewTxManager(pool), pack); err != nil {
				return err
			}
			logger.Info("catalog seeded",
				slog.Int("sets", len(pack.Sets)),
				slog.Int("pool", len(pack.Pool)),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "TOML content pack overlaid on the built-in content")
	return cmd
}
