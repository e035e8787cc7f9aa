package core

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&Employee{}, &Owner{}, &Property{}, &Unit{}, &Tenant{},
		&Expense{}, &Lease{}, &LeasePayment{}, &Asset{}, &Cheque{},
	))

	return NewRepository(db)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedCheque(t *testing.T, store Repository, status string) *Cheque {
	t.Helper()

	now := time.Now()
	cheque := &Cheque{
		ID:              "cheque-1",
		ChequeNumber:    "CHQ-000001",
		Amount:          9000,
		IssueDate:       now.AddDate(0, -1, 0),
		DueDate:         now.AddDate(0, 1, 0),
		Status:          status,
		Type:            ChequeTypeRent,
		RemainingAmount: 9000,
	}
	require.NoError(t, store.CreateCheque(context.Background(), cheque))
	return cheque
}

func TestClearCheque(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())
	seedCheque(t, store, ChequeStatusPending)

	cheque, err := svc.ClearCheque(context.Background(), "cheque-1")
	require.NoError(t, err)

	assert.Equal(t, ChequeStatusCleared, cheque.Status)
	assert.Equal(t, cheque.Amount, cheque.PaidAmount)
	assert.Zero(t, cheque.RemainingAmount)
	assert.NotNil(t, cheque.ClearedDate)

	// A second settlement attempt is rejected.
	_, err = svc.ClearCheque(context.Background(), "cheque-1")
	assert.ErrorIs(t, err, ErrChequeAlreadySettled)
}

func TestBounceCheque(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())
	seedCheque(t, store, ChequeStatusSubmitted)

	cheque, err := svc.BounceCheque(context.Background(), "cheque-1")
	require.NoError(t, err)

	assert.Equal(t, ChequeStatusBounced, cheque.Status)
	assert.Zero(t, cheque.PaidAmount)
	assert.Equal(t, cheque.Amount, cheque.RemainingAmount)
	assert.NotNil(t, cheque.BouncedDate)

	_, err = svc.ClearCheque(context.Background(), "cheque-1")
	assert.ErrorIs(t, err, ErrChequeAlreadySettled)
}

func TestRecordPartialPayment(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())
	seedCheque(t, store, ChequeStatusPending)

	cheque, err := svc.RecordPartialPayment(context.Background(), "cheque-1", 4000)
	require.NoError(t, err)
	assert.Equal(t, ChequeStatusPartiallyPaid, cheque.Status)
	assert.Equal(t, 4000.0, cheque.PaidAmount)
	assert.Equal(t, 5000.0, cheque.RemainingAmount)

	// Overpayment is rejected.
	_, err = svc.RecordPartialPayment(context.Background(), "cheque-1", 6000)
	require.Error(t, err)

	// Covering the balance clears the cheque.
	cheque, err = svc.RecordPartialPayment(context.Background(), "cheque-1", 5000)
	require.NoError(t, err)
	assert.Equal(t, ChequeStatusCleared, cheque.Status)
	assert.Zero(t, cheque.RemainingAmount)
	assert.NotNil(t, cheque.ClearedDate)
}

func TestRecordPartialPaymentOnCancelledCheque(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())
	seedCheque(t, store, ChequeStatusCancelled)

	_, err := svc.RecordPartialPayment(context.Background(), "cheque-1", 1000)
	assert.ErrorIs(t, err, ErrInvalidChequeStatus)
}

func TestChequeNotFound(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())

	_, err := svc.GetCheque(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChequeNotFound)
}

func seedLeaseWithPayment(t *testing.T, store Repository, paymentStatus string) {
	t.Helper()
	ctx := context.Background()

	now := time.Now()
	lease := &Lease{
		ID:               "lease-1-1",
		TenantID:         "1",
		PropertyID:       "1",
		UnitID:           "1-1",
		StartDate:        now.AddDate(-1, 0, 0),
		EndDate:          now.AddDate(0, 6, 0),
		MonthlyRent:      5000,
		DepositAmount:    10000,
		PaymentFrequency: FrequencyMonthly,
		Status:           LeaseStatusActive,
		TotalLeaseAmount: 90000,
		TotalPaidAmount:  10000,
		PaymentsCount:    18,
	}
	require.NoError(t, store.CreateLease(ctx, lease))

	payment := &LeasePayment{
		ID:      "lease-1-1-payment-3",
		LeaseID: lease.ID,
		Amount:  5000,
		DueDate: now.AddDate(0, -1, 0),
		Status:  paymentStatus,
	}
	require.NoError(t, store.InsertBatch(ctx, []*LeasePayment{payment}))
}

func TestMarkPaymentPaid(t *testing.T) {
	store := testStore(t)
	svc := NewLeasingService(store, testLogger())
	seedLeaseWithPayment(t, store, PaymentStatusOverdue)

	payment, err := svc.MarkPaymentPaid(context.Background(), "lease-1-1-payment-3", "Bank Transfer")
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusPaid, payment.Status)
	assert.NotNil(t, payment.PaidDate)
	assert.Equal(t, "Bank Transfer", payment.PaymentMethod)

	lease, _, err := svc.GetLease(context.Background(), "lease-1-1")
	require.NoError(t, err)
	assert.Equal(t, 15000.0, lease.TotalPaidAmount)

	_, err = svc.MarkPaymentPaid(context.Background(), "lease-1-1-payment-3", "")
	assert.ErrorIs(t, err, ErrPaymentAlreadyPaid)
}

func TestMarkPaymentPaidRejectsCancelled(t *testing.T) {
	store := testStore(t)
	svc := NewLeasingService(store, testLogger())
	seedLeaseWithPayment(t, store, PaymentStatusCancelled)

	_, err := svc.MarkPaymentPaid(context.Background(), "lease-1-1-payment-3", "")
	assert.ErrorIs(t, err, ErrPaymentCancelled)
}

func TestSweepOverduePayments(t *testing.T) {
	store := testStore(t)
	svc := NewLeasingService(store, testLogger())
	ctx := context.Background()

	now := time.Now()
	payments := []*LeasePayment{
		{ID: "p1", LeaseID: "l1", Amount: 1000, DueDate: now.AddDate(0, 0, -10), Status: PaymentStatusPending},
		{ID: "p2", LeaseID: "l1", Amount: 1000, DueDate: now.AddDate(0, 0, -1), Status: PaymentStatusPending},
		{ID: "p3", LeaseID: "l1", Amount: 1000, DueDate: now.AddDate(0, 0, 30), Status: PaymentStatusPending},
		{ID: "p4", LeaseID: "l1", Amount: 1000, DueDate: now.AddDate(0, 0, -5), Status: PaymentStatusPaid},
	}
	require.NoError(t, store.InsertBatch(ctx, payments))

	swept, err := svc.SweepOverduePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, swept)

	p3, err := store.GetLeasePayment(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, p3.Status)

	p4, err := store.GetLeasePayment(ctx, "p4")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, p4.Status)
}

func TestCreateExpenseValidation(t *testing.T) {
	store := testStore(t)
	svc := NewPortfolioService(store, testLogger())
	ctx := context.Background()

	err := svc.CreateExpense(ctx, &Expense{Amount: 100})
	require.Error(t, err)

	err = svc.CreateExpense(ctx, &Expense{Description: "AC repair", Amount: -5})
	require.Error(t, err)

	err = svc.CreateExpense(ctx, &Expense{Description: "AC repair", Amount: 100, PropertyID: "missing"})
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	expense := &Expense{Description: "AC repair", Amount: 450}
	require.NoError(t, svc.CreateExpense(ctx, expense))
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, ExpenseStatusPending, expense.Status)
	assert.False(t, expense.Date.IsZero())
}

func TestDashboardCounts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateProperty(ctx, &Property{ID: "1", Name: "Tower A", OwnerID: "1"}))
	require.NoError(t, store.InsertBatch(ctx, []*Unit{
		{ID: "1-1", PropertyID: "1", UnitNumber: "101", Status: UnitStatusOccupied},
		{ID: "1-2", PropertyID: "1", UnitNumber: "102", Status: UnitStatusAvailable},
	}))
	require.NoError(t, store.CreateLease(ctx, &Lease{
		ID: "lease-1-1", TenantID: "1", PropertyID: "1", UnitID: "1-1",
		MonthlyRent: 7000, Status: LeaseStatusActive,
	}))
	require.NoError(t, store.CreateLease(ctx, &Lease{
		ID: "lease-1-2", TenantID: "1", PropertyID: "1", UnitID: "1-2",
		MonthlyRent: 4000, Status: LeaseStatusExpired,
	}))

	counts, err := store.DashboardCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), counts.Properties)
	assert.Equal(t, int64(2), counts.Units)
	assert.Equal(t, int64(1), counts.OccupiedUnits)
	assert.Equal(t, int64(1), counts.ActiveLeases)
	assert.Equal(t, 0.5, counts.OccupancyRate)
	assert.Equal(t, 7000.0, counts.MonthlyRent)
}

func TestDashboardExpiringLeases(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.CreateLease(ctx, &Lease{
		ID: "lease-soon", TenantID: "1", PropertyID: "1", UnitID: "1-1",
		Status: LeaseStatusActive, EndDate: now.AddDate(0, 0, 30),
	}))
	require.NoError(t, store.CreateLease(ctx, &Lease{
		ID: "lease-later", TenantID: "2", PropertyID: "1", UnitID: "1-2",
		Status: LeaseStatusActive, EndDate: now.AddDate(1, 0, 0),
	}))
	require.NoError(t, store.CreateLease(ctx, &Lease{
		ID: "lease-done", TenantID: "3", PropertyID: "1", UnitID: "1-3",
		Status: LeaseStatusExpired, EndDate: now.AddDate(0, 0, 10),
	}))

	counts, err := store.DashboardCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.ExpiringLeases)
}

func TestCreateProperty(t *testing.T) {
	store := testStore(t)
	svc := NewPortfolioService(store, testLogger())
	ctx := context.Background()

	require.NoError(t, store.CreateOwner(ctx, &Owner{ID: "owner-1", Name: "Al Futtaim Holdings"}))

	err := svc.CreateProperty(ctx, &Property{OwnerID: "owner-1"})
	require.Error(t, err)

	err = svc.CreateProperty(ctx, &Property{Name: "Marina Tower"})
	require.Error(t, err)

	err = svc.CreateProperty(ctx, &Property{Name: "Marina Tower", OwnerID: "missing"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	err = svc.CreateProperty(ctx, &Property{
		Name: "Marina Tower", OwnerID: "owner-1", TotalUnits: 10, OccupiedUnits: 12,
	})
	require.Error(t, err)

	property := &Property{Name: "Marina Tower", OwnerID: "owner-1", TotalUnits: 10, OccupiedUnits: 4}
	require.NoError(t, svc.CreateProperty(ctx, property))
	assert.NotEmpty(t, property.ID)

	require.NoError(t, svc.DeleteProperty(ctx, property.ID))
	_, _, err = svc.GetProperty(ctx, property.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreateTenantValidation(t *testing.T) {
	store := testStore(t)
	svc := NewPortfolioService(store, testLogger())
	ctx := context.Background()

	err := svc.CreateTenant(ctx, &Tenant{Email: "someone@example.com"})
	require.Error(t, err)

	err = svc.CreateTenant(ctx, &Tenant{Name: "Khalid Rahman", Email: "not-an-email"})
	require.Error(t, err)

	tenant := &Tenant{Name: "Khalid Rahman", Email: "khalid@example.com"}
	require.NoError(t, svc.CreateTenant(ctx, tenant))
	assert.NotEmpty(t, tenant.ID)
	assert.Equal(t, StatusActive, tenant.Status)

	tenant.Phone = "+971501234567"
	require.NoError(t, svc.UpdateTenant(ctx, tenant))

	got, err := svc.GetTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "+971501234567", got.Phone)
}

func TestUpdateExpenseStatus(t *testing.T) {
	store := testStore(t)
	svc := NewPortfolioService(store, testLogger())
	ctx := context.Background()

	expense := &Expense{Description: "Lobby repainting", Amount: 2600}
	require.NoError(t, svc.CreateExpense(ctx, expense))

	updated, err := svc.UpdateExpenseStatus(ctx, expense.ID, ExpenseStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, ExpenseStatusApproved, updated.Status)

	_, err = svc.UpdateExpenseStatus(ctx, expense.ID, "Archived")
	require.Error(t, err)

	_, err = svc.UpdateExpenseStatus(ctx, "missing", ExpenseStatusPaid)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestCreateChequeValidation(t *testing.T) {
	store := testStore(t)
	svc := NewChequeService(store, testLogger())
	ctx := context.Background()

	err := svc.CreateCheque(ctx, &Cheque{ChequeNumber: "12345", Amount: 5000})
	require.Error(t, err)

	err = svc.CreateCheque(ctx, &Cheque{ChequeNumber: "CHQ-000042", Amount: 0})
	require.Error(t, err)

	cheque := &Cheque{ChequeNumber: "CHQ-000042", Amount: 5000, Type: ChequeTypeRent}
	require.NoError(t, svc.CreateCheque(ctx, cheque))
	assert.NotEmpty(t, cheque.ID)
	assert.Equal(t, ChequeStatusPending, cheque.Status)
	assert.Equal(t, 5000.0, cheque.RemainingAmount)
	assert.False(t, cheque.IssueDate.IsZero())
}
