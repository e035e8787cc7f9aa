package core

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository defines the interface for data access operations.
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	ListEmployees(ctx context.Context, department string) ([]*Employee, error)
	UpdateEmployeeLastLogin(ctx context.Context, id string) error

	// Owner operations
	CreateOwner(ctx context.Context, owner *Owner) error
	GetOwner(ctx context.Context, id string) (*Owner, error)
	ListOwners(ctx context.Context) ([]*Owner, error)

	// Property operations
	CreateProperty(ctx context.Context, property *Property) error
	UpdateProperty(ctx context.Context, property *Property) error
	DeleteProperty(ctx context.Context, id string) error
	GetProperty(ctx context.Context, id string) (*Property, error)
	ListProperties(ctx context.Context, city string, propertyType string) ([]*Property, error)

	// Unit operations
	GetUnit(ctx context.Context, id string) (*Unit, error)
	UpdateUnit(ctx context.Context, unit *Unit) error
	ListUnits(ctx context.Context, propertyID string, status string) ([]*Unit, error)

	// Tenant operations
	CreateTenant(ctx context.Context, tenant *Tenant) error
	UpdateTenant(ctx context.Context, tenant *Tenant) error
	GetTenant(ctx context.Context, id string) (*Tenant, error)
	ListTenants(ctx context.Context, status string) ([]*Tenant, error)

	// Lease operations
	CreateLease(ctx context.Context, lease *Lease) error
	UpdateLease(ctx context.Context, lease *Lease) error
	GetLease(ctx context.Context, id string) (*Lease, error)
	ListLeases(ctx context.Context, propertyID string, tenantID string, status string) ([]*Lease, error)

	// Lease payment operations
	GetLeasePayment(ctx context.Context, id string) (*LeasePayment, error)
	UpdateLeasePayment(ctx context.Context, payment *LeasePayment) error
	ListLeasePayments(ctx context.Context, leaseID string) ([]*LeasePayment, error)
	ListDuePayments(ctx context.Context, before time.Time) ([]*LeasePayment, error)

	// Cheque operations
	CreateCheque(ctx context.Context, cheque *Cheque) error
	UpdateCheque(ctx context.Context, cheque *Cheque) error
	GetCheque(ctx context.Context, id string) (*Cheque, error)
	ListCheques(ctx context.Context, status string, chequeType string) ([]*Cheque, error)

	// Expense operations
	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, expense *Expense) error
	GetExpense(ctx context.Context, id string) (*Expense, error)
	ListExpenses(ctx context.Context, propertyID string, category string) ([]*Expense, error)

	// Asset operations
	ListAssets(ctx context.Context, propertyID string) ([]*Asset, error)

	// Bulk operations for demo data loading
	InsertBatch(ctx context.Context, records interface{}) error
	Wipe(ctx context.Context, models ...interface{}) error
	CountProperties(ctx context.Context) (int64, error)

	// Dashboard aggregates
	DashboardCounts(ctx context.Context) (*DashboardCounts, error)

	// Transaction support
	WithTransaction(ctx context.Context, fn func(context.Context, Repository) error) error
}

// DashboardCounts holds the headline numbers for the overview page.
type DashboardCounts struct {
	Properties      int64   `json:"properties"`
	Units           int64   `json:"units"`
	OccupiedUnits   int64   `json:"occupiedUnits"`
	Tenants         int64   `json:"tenants"`
	ActiveLeases    int64   `json:"activeLeases"`
	PendingPayments int64   `json:"pendingPayments"`
	OverduePayments int64   `json:"overduePayments"`
	PendingCheques  int64   `json:"pendingCheques"`
	BouncedCheques  int64   `json:"bouncedCheques"`
	ExpiringLeases  int64   `json:"expiringLeases"`
	OccupancyRate   float64 `json:"occupancyRate"`
	MonthlyRent     float64 `json:"monthlyRent"`
}

type repository struct {
	db *gorm.DB
}

// NewRepository wires the data access layer onto a gorm connection.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTransaction(ctx context.Context, fn func(c context.Context, r Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := NewRepository(tx)
		return fn(ctx, txRepo)
	})
}

func (r *repository) CreateEmployee(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateEmployee(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	return &e, err
}

func (r *repository) GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error
	return &e, err
}

func (r *repository) ListEmployees(ctx context.Context, department string) ([]*Employee, error) {
	var employees []*Employee
	q := r.db.WithContext(ctx)
	if department != "" {
		q = q.Where("department = ?", department)
	}
	return employees, q.Order("name").Find(&employees).Error
}

func (r *repository) UpdateEmployeeLastLogin(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}

func (r *repository) CreateOwner(ctx context.Context, o *Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) GetOwner(ctx context.Context, id string) (*Owner, error) {
	var o Owner
	return &o, r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
}

func (r *repository) ListOwners(ctx context.Context) ([]*Owner, error) {
	var owners []*Owner
	return owners, r.db.WithContext(ctx).Order("name").Find(&owners).Error
}

func (r *repository) CreateProperty(ctx context.Context, p *Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdateProperty(ctx context.Context, p *Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DeleteProperty(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Property{}).Error
}

func (r *repository) GetProperty(ctx context.Context, id string) (*Property, error) {
	var p Property
	err := r.db.WithContext(ctx).Preload("Owner").Preload("Manager").Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *repository) ListProperties(ctx context.Context, city string, propertyType string) ([]*Property, error) {
	var properties []*Property
	q := r.db.WithContext(ctx).Preload("Owner")
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if propertyType != "" {
		q = q.Where("type = ?", propertyType)
	}
	return properties, q.Order("name").Find(&properties).Error
}

func (r *repository) GetUnit(ctx context.Context, id string) (*Unit, error) {
	var u Unit
	return &u, r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
}

func (r *repository) UpdateUnit(ctx context.Context, u *Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) ListUnits(ctx context.Context, propertyID string, status string) ([]*Unit, error) {
	var units []*Unit
	q := r.db.WithContext(ctx)
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return units, q.Order("unit_number").Find(&units).Error
}

func (r *repository) CreateTenant(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateTenant(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	return &t, r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
}

func (r *repository) ListTenants(ctx context.Context, status string) ([]*Tenant, error) {
	var tenants []*Tenant
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return tenants, q.Order("name").Find(&tenants).Error
}

func (r *repository) CreateLease(ctx context.Context, l *Lease) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) UpdateLease(ctx context.Context, l *Lease) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) GetLease(ctx context.Context, id string) (*Lease, error) {
	var l Lease
	return &l, r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
}

func (r *repository) ListLeases(ctx context.Context, propertyID string, tenantID string, status string) ([]*Lease, error) {
	var leases []*Lease
	q := r.db.WithContext(ctx)
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if tenantID != "" {
		q = q.Where("tenant_id = ?", tenantID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return leases, q.Order("start_date DESC").Find(&leases).Error
}

func (r *repository) GetLeasePayment(ctx context.Context, id string) (*LeasePayment, error) {
	var p LeasePayment
	return &p, r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
}

func (r *repository) UpdateLeasePayment(ctx context.Context, p *LeasePayment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) ListLeasePayments(ctx context.Context, leaseID string) ([]*LeasePayment, error) {
	var payments []*LeasePayment
	return payments, r.db.WithContext(ctx).Where("lease_id = ?", leaseID).Order("due_date").Find(&payments).Error
}

func (r *repository) ListDuePayments(ctx context.Context, before time.Time) ([]*LeasePayment, error) {
	var payments []*LeasePayment
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date <= ?", PaymentStatusPending, before).
		Order("due_date").Find(&payments).Error
	return payments, err
}

func (r *repository) CreateCheque(ctx context.Context, c *Cheque) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) UpdateCheque(ctx context.Context, c *Cheque) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) GetCheque(ctx context.Context, id string) (*Cheque, error) {
	var c Cheque
	return &c, r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
}

func (r *repository) ListCheques(ctx context.Context, status string, chequeType string) ([]*Cheque, error) {
	var cheques []*Cheque
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if chequeType != "" {
		q = q.Where("type = ?", chequeType)
	}
	return cheques, q.Order("due_date").Find(&cheques).Error
}

func (r *repository) CreateExpense(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateExpense(ctx context.Context, e *Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) GetExpense(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	return &e, r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
}

func (r *repository) ListExpenses(ctx context.Context, propertyID string, category string) ([]*Expense, error) {
	var expenses []*Expense
	q := r.db.WithContext(ctx)
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return expenses, q.Order("date DESC").Find(&expenses).Error
}

func (r *repository) ListAssets(ctx context.Context, propertyID string) ([]*Asset, error) {
	var assets []*Asset
	q := r.db.WithContext(ctx)
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	return assets, q.Order("name").Find(&assets).Error
}

func (r *repository) InsertBatch(ctx context.Context, records interface{}) error {
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

func (r *repository) Wipe(ctx context.Context, models ...interface{}) error {
	for _, m := range models {
		if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) CountProperties(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Property{}).Count(&n).Error
	return n, err
}

func (r *repository) DashboardCounts(ctx context.Context) (*DashboardCounts, error) {
	var counts DashboardCounts
	db := r.db.WithContext(ctx)

	if err := db.Model(&Property{}).Count(&counts.Properties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Unit{}).Count(&counts.Units).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Unit{}).Where("status = ?", UnitStatusOccupied).Count(&counts.OccupiedUnits).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Tenant{}).Count(&counts.Tenants).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Lease{}).Where("status = ?", LeaseStatusActive).Count(&counts.ActiveLeases).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&LeasePayment{}).Where("status = ?", PaymentStatusPending).Count(&counts.PendingPayments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&LeasePayment{}).Where("status = ?", PaymentStatusOverdue).Count(&counts.OverduePayments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Cheque{}).Where("status = ?", ChequeStatusPending).Count(&counts.PendingCheques).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Cheque{}).Where("status = ?", ChequeStatusBounced).Count(&counts.BouncedCheques).Error; err != nil {
		return nil, err
	}
	horizon := time.Now().AddDate(0, 0, 90)
	if err := db.Model(&Lease{}).Where("status = ? AND end_date <= ?", LeaseStatusActive, horizon).
		Count(&counts.ExpiringLeases).Error; err != nil {
		return nil, err
	}
	if counts.Units > 0 {
		counts.OccupancyRate = float64(counts.OccupiedUnits) / float64(counts.Units)
	}

	var monthlyRent *float64
	if err := db.Model(&Lease{}).Where("status = ?", LeaseStatusActive).
		Select("SUM(monthly_rent)").Scan(&monthlyRent).Error; err != nil {
		return nil, err
	}
	if monthlyRent != nil {
		counts.MonthlyRent = *monthlyRent
	}

	return &counts, nil
}
