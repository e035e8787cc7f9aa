package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Uaq907/estateflow-sub002/internal/core"
	"github.com/Uaq907/estateflow-sub002/internal/demo"
	"github.com/Uaq907/estateflow-sub002/internal/infrastructure"
)

var (
	seedCount int
	seedValue int64
	seedFull  bool
	seedWipe  bool
)

// seedCmd generates demo data and loads it into the database.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate and load demo data",
	Long:  `Generates a synthetic portfolio of properties, tenants, leases, payment schedules, and cheques, and loads it into the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of records per entity type (default from config)")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed for reproducible datasets (0 uses the clock)")
	seedCmd.Flags().BoolVar(&seedFull, "full", true, "include the fixed starter records")
	seedCmd.Flags().BoolVar(&seedWipe, "wipe", false, "remove existing data before loading")
	rootCmd.AddCommand(seedCmd)
}

func runSeed() error {
	db, err := infrastructure.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store := core.NewRepository(db.DB)
	ctx := context.Background()

	if seedWipe {
		logger.Warn("Wiping existing data...")
		if err := demo.Wipe(ctx, store); err != nil {
			return fmt.Errorf("failed to wipe data: %w", err)
		}
	}

	count := seedCount
	if count <= 0 {
		count = cfg.Demo.DefaultCount
	}

	source := seedValue
	if source == 0 {
		source = cfg.Demo.Seed
	}
	if source == 0 {
		source = time.Now().UnixNano()
	}

	generator := demo.NewGenerator(rand.New(rand.NewSource(source)))

	var dataset *demo.Dataset
	if seedFull {
		dataset = generator.Full(count)
	} else {
		dataset = generator.Generate(count)
	}

	if err := demo.Load(ctx, store, dataset, logger); err != nil {
		return fmt.Errorf("failed to load demo data: %w", err)
	}

	logger.Info("Demo data seeding completed")
	return nil
}
