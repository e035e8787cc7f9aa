package demo

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

// Load persists a dataset in one transaction, parents before children so
// foreign keys resolve.
func Load(ctx context.Context, store core.Repository, ds *Dataset, logger *logrus.Logger) error {
	err := store.WithTransaction(ctx, func(ctx context.Context, tx core.Repository) error {
		steps := []struct {
			name    string
			records interface{}
			count   int
		}{
			{"employees", ds.Employees, len(ds.Employees)},
			{"owners", ds.Owners, len(ds.Owners)},
			{"properties", ds.Properties, len(ds.Properties)},
			{"units", ds.Units, len(ds.Units)},
			{"tenants", ds.Tenants, len(ds.Tenants)},
			{"expenses", ds.Expenses, len(ds.Expenses)},
			{"leases", ds.Leases, len(ds.Leases)},
			{"lease_payments", ds.LeasePayments, len(ds.LeasePayments)},
			{"assets", ds.Assets, len(ds.Assets)},
			{"cheques", ds.Cheques, len(ds.Cheques)},
		}

		for _, step := range steps {
			if step.count == 0 {
				continue
			}
			if err := tx.InsertBatch(ctx, step.records); err != nil {
				return fmt.Errorf("failed to insert %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"properties": len(ds.Properties),
		"units":      len(ds.Units),
		"tenants":    len(ds.Tenants),
		"leases":     len(ds.Leases),
		"payments":   len(ds.LeasePayments),
		"cheques":    len(ds.Cheques),
	}).Info("Demo dataset loaded")

	return nil
}

// Wipe removes all demo data, children before parents.
func Wipe(ctx context.Context, store core.Repository) error {
	return store.WithTransaction(ctx, func(ctx context.Context, tx core.Repository) error {
		return tx.Wipe(ctx,
			&core.Cheque{},
			&core.Asset{},
			&core.LeasePayment{},
			&core.Lease{},
			&core.Expense{},
			&core.Tenant{},
			&core.Unit{},
			&core.Property{},
			&core.Owner{},
			&core.Employee{},
		)
	})
}
