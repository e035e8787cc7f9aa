package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Uaq907/estateflow-sub002/internal/core"
	"github.com/Uaq907/estateflow-sub002/internal/demo"
	"github.com/Uaq907/estateflow-sub002/internal/infrastructure"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Applies all pending database migrations to ensure the schema is up to date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations() error {
	logger.Info("Running database migrations...")

	// Connect to database
	db, err := infrastructure.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Auto-migrate all models
	logger.Info("Migrating models...")

	models := []interface{}{
		&core.Employee{},
		&core.Owner{},
		&core.Property{},
		&core.Unit{},
		&core.Tenant{},
		&core.Expense{},
		&core.Lease{},
		&core.LeasePayment{},
		&core.Asset{},
		&core.Cheque{},
	}

	for _, model := range models {
		if err := db.DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
		logger.Infof("Migrated %T", model)
	}

	// Insert default data if needed
	if err := insertDefaultData(db); err != nil {
		logger.WithError(err).Warn("Failed to insert default data")
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// insertDefaultData loads the fixed starter records into an empty
// database so a fresh install is immediately usable.
func insertDefaultData(db *infrastructure.Database) error {
	ctx := context.Background()
	store := core.NewRepository(db.DB)

	count, err := store.CountProperties(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("Empty database detected, inserting starter records...")
	return demo.Load(ctx, store, demo.Seed(), logger)
}
