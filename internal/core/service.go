package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Uaq907/estateflow-sub002/internal/infrastructure"
	"github.com/Uaq907/estateflow-sub002/internal/utils"
)

// --- Authentication Service Implementation ---

// Session represents an authenticated login session backed by Redis.
type Session struct {
	Token      string    `json:"token"`
	EmployeeID string    `json:"employee_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type AuthService struct {
	store      Repository
	cache      *infrastructure.Cache
	logger     *logrus.Logger
	sessionTTL time.Duration
}

func NewAuthService(store Repository, cache *infrastructure.Cache, logger *logrus.Logger, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		store:      store,
		cache:      cache,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, *Employee, error) {
	employee, err := s.store.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !employee.AllowLogin || employee.Status != StatusActive {
		return nil, nil, ErrLoginDisabled
	}

	if err := checkPassword(employee.Password, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session := &Session{
		Token:      uuid.New().String(),
		EmployeeID: employee.ID,
		ExpiresAt:  time.Now().Add(s.sessionTTL),
	}

	data, _ := json.Marshal(session)
	if err := s.cache.Set(ctx, sessionKey(session.Token), string(data), s.sessionTTL); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	if err := s.store.UpdateEmployeeLastLogin(ctx, employee.ID); err != nil {
		s.logger.WithError(err).WithField("employee_id", employee.ID).
			Warn("Failed to update last login")
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"email":       employee.Email,
	}).Info("Employee logged in")

	return session, employee, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}

// ValidateSession resolves a bearer token to its employee and slides the
// session expiry forward.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*Employee, error) {
	data, err := s.cache.Get(ctx, sessionKey(token))
	if err != nil {
		return nil, ErrSessionExpired
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, ErrSessionExpired
	}

	employee, err := s.store.GetEmployee(ctx, session.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if !employee.AllowLogin || employee.Status != StatusActive {
		return nil, ErrLoginDisabled
	}

	if err := s.cache.Expire(ctx, sessionKey(token), s.sessionTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh session TTL")
	}

	return employee, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// Demo fixtures carry plain text passwords; operator-created accounts
// carry salted hashes.
func checkPassword(stored, password string) error {
	if err := utils.CheckPassword(stored, password); err == nil {
		return nil
	}
	if stored != "" && stored == password {
		return nil
	}
	return errors.New("password mismatch")
}

// --- Portfolio Service Implementation ---

type PortfolioService struct {
	store  Repository
	logger *logrus.Logger
}

func NewPortfolioService(store Repository, logger *logrus.Logger) *PortfolioService {
	return &PortfolioService{
		store:  store,
		logger: logger,
	}
}

func (s *PortfolioService) GetProperty(ctx context.Context, id string) (*Property, []*Unit, error) {
	property, err := s.store.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPropertyNotFound
		}
		return nil, nil, err
	}

	units, err := s.store.ListUnits(ctx, id, "")
	if err != nil {
		return nil, nil, err
	}

	return property, units, nil
}

func (s *PortfolioService) ListProperties(ctx context.Context, city, propertyType string) ([]*Property, error) {
	return s.store.ListProperties(ctx, city, propertyType)
}

func (s *PortfolioService) CreateProperty(ctx context.Context, property *Property) error {
	if property.Name == "" {
		return BusinessError{"PROP_003", "property name is required"}
	}
	if property.OwnerID == "" {
		return BusinessError{"PROP_004", "property owner is required"}
	}
	if property.OccupiedUnits > property.TotalUnits {
		return BusinessError{"PROP_005", "occupied units cannot exceed total units"}
	}
	if _, err := s.store.GetOwner(ctx, property.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOwnerNotFound
		}
		return err
	}

	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	if err := s.store.CreateProperty(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"property_id": property.ID,
		"name":        property.Name,
	}).Info("Property created")

	return nil
}

func (s *PortfolioService) UpdateProperty(ctx context.Context, property *Property) error {
	existing, err := s.store.GetProperty(ctx, property.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	if property.OccupiedUnits > property.TotalUnits {
		return BusinessError{"PROP_005", "occupied units cannot exceed total units"}
	}

	property.CreatedAt = existing.CreatedAt
	return s.store.UpdateProperty(ctx, property)
}

func (s *PortfolioService) DeleteProperty(ctx context.Context, id string) error {
	if _, err := s.store.GetProperty(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	if err := s.store.DeleteProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.logger.WithField("property_id", id).Info("Property deleted")
	return nil
}

func (s *PortfolioService) ListUnits(ctx context.Context, propertyID, status string) ([]*Unit, error) {
	return s.store.ListUnits(ctx, propertyID, status)
}

func (s *PortfolioService) GetOwner(ctx context.Context, id string) (*Owner, error) {
	owner, err := s.store.GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

func (s *PortfolioService) ListOwners(ctx context.Context) ([]*Owner, error) {
	return s.store.ListOwners(ctx)
}

func (s *PortfolioService) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	tenant, err := s.store.GetTenant(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *PortfolioService) ListTenants(ctx context.Context, status string) ([]*Tenant, error) {
	return s.store.ListTenants(ctx, status)
}

func (s *PortfolioService) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.Name == "" {
		return BusinessError{"TENANT_002", "tenant name is required"}
	}
	if tenant.Email != "" {
		if err := utils.ValidateEmail(tenant.Email); err != nil {
			return BusinessError{"TENANT_003", "invalid tenant email"}
		}
	}

	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if tenant.Status == "" {
		tenant.Status = StatusActive
	}

	if err := s.store.CreateTenant(ctx, tenant); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"tenant_id": tenant.ID,
		"name":      tenant.Name,
	}).Info("Tenant created")

	return nil
}

func (s *PortfolioService) UpdateTenant(ctx context.Context, tenant *Tenant) error {
	existing, err := s.store.GetTenant(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenantNotFound
		}
		return err
	}
	if tenant.Email != "" {
		if err := utils.ValidateEmail(tenant.Email); err != nil {
			return BusinessError{"TENANT_003", "invalid tenant email"}
		}
	}

	tenant.CreatedAt = existing.CreatedAt
	return s.store.UpdateTenant(ctx, tenant)
}

func (s *PortfolioService) ListEmployees(ctx context.Context, department string) ([]*Employee, error) {
	return s.store.ListEmployees(ctx, department)
}

func (s *PortfolioService) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *PortfolioService) ListExpenses(ctx context.Context, propertyID, category string) ([]*Expense, error) {
	return s.store.ListExpenses(ctx, propertyID, category)
}

func (s *PortfolioService) CreateExpense(ctx context.Context, expense *Expense) error {
	if expense.Description == "" {
		return BusinessError{"EXPENSE_002", "expense description is required"}
	}
	if expense.Amount <= 0 {
		return BusinessError{"EXPENSE_003", "expense amount must be positive"}
	}

	if expense.PropertyID != "" {
		if _, err := s.store.GetProperty(ctx, expense.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return err
		}
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Status == "" {
		expense.Status = ExpenseStatusPending
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"expense_id":  expense.ID,
		"property_id": expense.PropertyID,
		"amount":      expense.Amount,
	}).Info("Expense recorded")

	return nil
}

// UpdateExpenseStatus moves an expense through the approval workflow.
func (s *PortfolioService) UpdateExpenseStatus(ctx context.Context, id, status string) (*Expense, error) {
	switch status {
	case ExpenseStatusPaid, ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
	default:
		return nil, BusinessError{"EXPENSE_004", "unknown expense status"}
	}

	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	expense.Status = status
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"expense_id": id,
		"status":     status,
	}).Info("Expense status updated")

	return expense, nil
}

func (s *PortfolioService) ListAssets(ctx context.Context, propertyID string) ([]*Asset, error) {
	return s.store.ListAssets(ctx, propertyID)
}

// --- Leasing Service Implementation ---

type LeasingService struct {
	store  Repository
	logger *logrus.Logger
}

func NewLeasingService(store Repository, logger *logrus.Logger) *LeasingService {
	return &LeasingService{
		store:  store,
		logger: logger,
	}
}

func (s *LeasingService) ListLeases(ctx context.Context, propertyID, tenantID, status string) ([]*Lease, error) {
	return s.store.ListLeases(ctx, propertyID, tenantID, status)
}

func (s *LeasingService) GetLease(ctx context.Context, id string) (*Lease, []*LeasePayment, error) {
	lease, err := s.store.GetLease(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrLeaseNotFound
		}
		return nil, nil, err
	}

	payments, err := s.store.ListLeasePayments(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return lease, payments, nil
}

// MarkPaymentPaid settles a pending or overdue installment and rolls the
// amount up into the lease totals.
func (s *LeasingService) MarkPaymentPaid(ctx context.Context, paymentID, method string) (*LeasePayment, error) {
	var result *LeasePayment

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx Repository) error {
		payment, err := tx.GetLeasePayment(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		switch payment.Status {
		case PaymentStatusPaid:
			return ErrPaymentAlreadyPaid
		case PaymentStatusCancelled:
			return ErrPaymentCancelled
		}

		now := time.Now()
		payment.Status = PaymentStatusPaid
		payment.PaidDate = &now
		if method != "" {
			payment.PaymentMethod = method
		}

		if err := tx.UpdateLeasePayment(ctx, payment); err != nil {
			return err
		}

		lease, err := tx.GetLease(ctx, payment.LeaseID)
		if err != nil {
			return err
		}
		lease.TotalPaidAmount += payment.Amount
		if lease.TotalPaidAmount > lease.TotalLeaseAmount {
			lease.TotalPaidAmount = lease.TotalLeaseAmount
		}
		if err := tx.UpdateLease(ctx, lease); err != nil {
			return err
		}

		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"payment_id": paymentID,
		"method":     method,
	}).Info("Lease payment settled")

	return result, nil
}

// SweepOverduePayments flips pending installments whose due date has
// passed to overdue. Returns the number of payments touched.
func (s *LeasingService) SweepOverduePayments(ctx context.Context) (int, error) {
	payments, err := s.store.ListDuePayments(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, p := range payments {
		p.Status = PaymentStatusOverdue
		if err := s.store.UpdateLeasePayment(ctx, p); err != nil {
			s.logger.WithError(err).WithField("payment_id", p.ID).
				Warn("Failed to mark payment overdue")
			continue
		}
		swept++
	}

	if swept > 0 {
		s.logger.WithField("count", swept).Info("Marked overdue payments")
	}
	return swept, nil
}

// --- Cheque Service Implementation ---

type ChequeService struct {
	store  Repository
	logger *logrus.Logger
}

func NewChequeService(store Repository, logger *logrus.Logger) *ChequeService {
	return &ChequeService{
		store:  store,
		logger: logger,
	}
}

func (s *ChequeService) ListCheques(ctx context.Context, status, chequeType string) ([]*Cheque, error) {
	return s.store.ListCheques(ctx, status, chequeType)
}

func (s *ChequeService) GetCheque(ctx context.Context, id string) (*Cheque, error) {
	cheque, err := s.store.GetCheque(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChequeNotFound
		}
		return nil, err
	}
	return cheque, nil
}

// CreateCheque registers a cheque received against a lease or deposit.
func (s *ChequeService) CreateCheque(ctx context.Context, cheque *Cheque) error {
	if err := utils.ValidateChequeNumber(cheque.ChequeNumber); err != nil {
		return BusinessError{"CHEQUE_006", "cheque number must match CHQ-NNNNNN"}
	}
	if cheque.Amount <= 0 {
		return BusinessError{"CHEQUE_007", "cheque amount must be positive"}
	}

	if cheque.ID == "" {
		cheque.ID = uuid.New().String()
	}
	if cheque.Status == "" {
		cheque.Status = ChequeStatusPending
	}
	if cheque.IssueDate.IsZero() {
		cheque.IssueDate = time.Now()
	}
	cheque.RemainingAmount = cheque.Amount - cheque.PaidAmount

	if err := s.store.CreateCheque(ctx, cheque); err != nil {
		return fmt.Errorf("failed to create cheque: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"cheque_id":     cheque.ID,
		"cheque_number": cheque.ChequeNumber,
		"amount":        cheque.Amount,
	}).Info("Cheque registered")

	return nil
}

// ClearCheque marks a cheque fully honored by the bank.
func (s *ChequeService) ClearCheque(ctx context.Context, id string) (*Cheque, error) {
	cheque, err := s.GetCheque(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateSettleable(cheque); err != nil {
		return nil, err
	}

	now := time.Now()
	cheque.Status = ChequeStatusCleared
	cheque.PaidAmount = cheque.Amount
	cheque.RemainingAmount = 0
	cheque.ClearedDate = &now

	if err := s.store.UpdateCheque(ctx, cheque); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"cheque_id": id,
		"amount":    cheque.Amount,
	}).Info("Cheque cleared")

	return cheque, nil
}

// BounceCheque marks a cheque returned unpaid by the bank.
func (s *ChequeService) BounceCheque(ctx context.Context, id string) (*Cheque, error) {
	cheque, err := s.GetCheque(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateSettleable(cheque); err != nil {
		return nil, err
	}

	now := time.Now()
	cheque.Status = ChequeStatusBounced
	cheque.PaidAmount = 0
	cheque.RemainingAmount = cheque.Amount
	cheque.BouncedDate = &now

	if err := s.store.UpdateCheque(ctx, cheque); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"cheque_id": id,
		"amount":    cheque.Amount,
	}).Warn("Cheque bounced")

	return cheque, nil
}

// RecordPartialPayment books a partial settlement against a cheque. A
// payment that covers the outstanding balance clears the cheque.
func (s *ChequeService) RecordPartialPayment(ctx context.Context, id string, amount float64) (*Cheque, error) {
	if amount <= 0 {
		return nil, BusinessError{"CHEQUE_004", "payment amount must be positive"}
	}

	cheque, err := s.GetCheque(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateSettleable(cheque); err != nil {
		return nil, err
	}

	if amount > cheque.RemainingAmount {
		return nil, BusinessError{"CHEQUE_005", "payment exceeds remaining amount"}
	}

	cheque.PaidAmount += amount
	cheque.RemainingAmount = cheque.Amount - cheque.PaidAmount
	if cheque.RemainingAmount == 0 {
		now := time.Now()
		cheque.Status = ChequeStatusCleared
		cheque.ClearedDate = &now
	} else {
		cheque.Status = ChequeStatusPartiallyPaid
	}

	if err := s.store.UpdateCheque(ctx, cheque); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"cheque_id": id,
		"paid":      cheque.PaidAmount,
		"remaining": cheque.RemainingAmount,
	}).Info("Cheque payment recorded")

	return cheque, nil
}

func validateSettleable(cheque *Cheque) error {
	switch cheque.Status {
	case ChequeStatusCleared, ChequeStatusBounced:
		return ErrChequeAlreadySettled
	case ChequeStatusCancelled:
		return ErrInvalidChequeStatus
	}
	return nil
}

// --- Dashboard Service Implementation ---

type DashboardService struct {
	store  Repository
	cache  *infrastructure.Cache
	logger *logrus.Logger
}

func NewDashboardService(store Repository, cache *infrastructure.Cache, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

const dashboardCacheKey = "dashboard:summary"

// Summary returns the headline portfolio numbers, cached for a minute.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardCounts, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, dashboardCacheKey); err == nil {
			var counts DashboardCounts
			if err := json.Unmarshal([]byte(data), &counts); err == nil {
				return &counts, nil
			}
		}
	}

	counts, err := s.store.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		data, _ := json.Marshal(counts)
		if err := s.cache.Set(ctx, dashboardCacheKey, string(data), time.Minute); err != nil {
			s.logger.WithError(err).Warn("Failed to cache dashboard summary")
		}
	}

	return counts, nil
}
