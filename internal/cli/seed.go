package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"esl-arcade-service/internal/config"
	"esl-arcade-service/internal/generator"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// NewSeedCmd generates the level set and upserts it into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate levels and write them to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for level generation (0 = time-based)")
	return cmd
}

func runSeed(ctx context.Context, configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewSource(seed))
	}
	levels := generator.New(rnd).Levels()

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	for _, level := range levels {
		data, err := json.Marshal(level)
		if err != nil {
			return fmt.Errorf("marshal level %s: %w", level.ID, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO levels (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`,
			level.ID, string(data)); err != nil {
			return fmt.Errorf("upsert level %s: %w", level.ID, err)
		}
	}
	log.Printf("seeded %d levels", len(levels))
	return nil
}
