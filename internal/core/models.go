package core

import (
	"time"
)

// Employee represents a back-office staff member.
type Employee struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name" gorm:"not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	Position            string     `json:"position"`
	Department          string     `json:"department" gorm:"index"`
	StartDate           time.Time  `json:"start_date"`
	AllowLogin          bool       `json:"allow_login" gorm:"default:false"`
	Permissions         []string   `json:"permissions" gorm:"serializer:json"`
	Phone               string     `json:"phone"`
	EmiratesID          string     `json:"emirates_id"`
	PassportNumber      string     `json:"passport_number"`
	DateOfBirth         *time.Time `json:"date_of_birth"`
	Status              string     `json:"status" gorm:"index;not null"`
	Nationality         string     `json:"nationality"`
	ManagerID           *string    `json:"manager_id" gorm:"index"`
	Salary              float64    `json:"salary"`
	VisaNumber          string     `json:"visa_number"`
	VisaExpiryDate      *time.Time `json:"visa_expiry_date"`
	InsuranceNumber     string     `json:"insurance_number"`
	InsuranceExpiryDate *time.Time `json:"insurance_expiry_date"`
	EmailNotifications  bool       `json:"email_notifications" gorm:"default:true"`
	SMSNotifications    bool       `json:"sms_notifications" gorm:"default:false"`
	LastLogin           *time.Time `json:"last_login"`
	Password            string     `json:"-"` // demo-only plain text
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Owner represents a property owner (landlord).
type Owner struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Type        string    `json:"type" gorm:"index;not null"`
	Nationality string    `json:"nationality"`
	BankName    string    `json:"bank_name"`
	BankAccount string    `json:"bank_account"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Property represents a managed building or compound.
type Property struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Type          string    `json:"type" gorm:"index"`
	Purpose       string    `json:"purpose"`
	Address       string    `json:"address"`
	City          string    `json:"city" gorm:"index"`
	Area          string    `json:"area"`
	TotalUnits    int       `json:"total_units"`
	OccupiedUnits int       `json:"occupied_units"`
	OwnerID       string    `json:"owner_id" gorm:"index;not null"`
	ManagerID     string    `json:"manager_id" gorm:"index"`
	PurchaseValue float64   `json:"purchase_value"`
	CurrentValue  float64   `json:"current_value"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Owner         *Owner    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Manager       *Employee `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}

// Unit represents a rentable unit within a property.
type Unit struct {
	ID                 string     `json:"id" gorm:"primaryKey"` // "{propertyID}-{index}"
	PropertyID         string     `json:"property_id" gorm:"index;not null"`
	UnitNumber         string     `json:"unit_number" gorm:"not null"`
	Type               string     `json:"type"`
	Status             string     `json:"status" gorm:"index;not null"`
	Rent               float64    `json:"rent"`
	Price              float64    `json:"price"`
	Size               float64    `json:"size"` // square feet
	Bedrooms           int        `json:"bedrooms"`
	Bathrooms          int        `json:"bathrooms"`
	Floor              int        `json:"floor"`
	TenantName         string     `json:"tenant_name"`
	BusinessName       string     `json:"business_name"`
	ActiveLeaseID      *string    `json:"active_lease_id" gorm:"index"`
	LeaseEndDate       *time.Time `json:"lease_end_date"`
	NextPaymentDueDate *time.Time `json:"next_payment_due_date"`
	// Denormalized from the parent property's owner.
	OwnerID    string    `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerPhone string    `json:"owner_phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Property   *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

// Tenant represents a renting individual or business.
type Tenant struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	EmiratesID     string    `json:"emirates_id"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	Status         string    `json:"status" gorm:"index;not null"`
	AllowLogin     bool      `json:"allow_login" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Expense represents an operating expense booked against a property.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category" gorm:"index"`
	Status      string    `json:"status" gorm:"index;not null"`
	PropertyID  string    `json:"property_id" gorm:"index"`
	EmployeeID  string    `json:"employee_id" gorm:"index"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Lease represents a rental contract binding a tenant to a unit.
type Lease struct {
	ID               string    `json:"id" gorm:"primaryKey"` // "lease-{propertyID}-{unitIndex}"
	TenantID         string    `json:"tenant_id" gorm:"index;not null"`
	PropertyID       string    `json:"property_id" gorm:"index;not null"`
	UnitID           string    `json:"unit_id" gorm:"index;not null"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	MonthlyRent      float64   `json:"monthly_rent"`
	DepositAmount    float64   `json:"deposit_amount"` // 2x monthly rent by convention
	PaymentFrequency string    `json:"payment_frequency"`
	Classification   string    `json:"classification"`
	Status           string    `json:"status" gorm:"index;not null"`
	TotalLeaseAmount float64   `json:"total_lease_amount"`
	TotalPaidAmount  float64   `json:"total_paid_amount"`
	PaymentsCount    int       `json:"payments_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LeasePayment represents one installment of a lease's payment schedule.
type LeasePayment struct {
	ID            string     `json:"id" gorm:"primaryKey"` // "{leaseID}-payment-{n}"
	LeaseID       string     `json:"lease_id" gorm:"index;not null"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"due_date" gorm:"index"`
	Status        string     `json:"status" gorm:"index;not null"`
	PaymentMethod string     `json:"payment_method"`
	PaidDate      *time.Time `json:"paid_date"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Asset represents a physical asset tracked against a property or unit.
type Asset struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Category           string    `json:"category" gorm:"index"`
	Status             string    `json:"status" gorm:"index"`
	PropertyID         string    `json:"property_id" gorm:"index"`
	UnitID             string    `json:"unit_id"`
	PurchaseDate       time.Time `json:"purchase_date"`
	WarrantyExpiryDate time.Time `json:"warranty_expiry_date"` // purchase + 3 years
	PurchasePrice      float64   `json:"purchase_price"`
	SerialNumber       string    `json:"serial_number"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Cheque represents a post-dated or settled cheque.
type Cheque struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	ChequeNumber    string     `json:"cheque_number" gorm:"index;not null"`
	Amount          float64    `json:"amount"`
	IssueDate       time.Time  `json:"issue_date"`
	DueDate         time.Time  `json:"due_date" gorm:"index"`
	Status          string     `json:"status" gorm:"index;not null"`
	Type            string     `json:"type" gorm:"index"`
	BankID          string     `json:"bank_id"`
	BankName        string     `json:"bank_name"`
	PayeeID         string     `json:"payee_id"`
	PayeeName       string     `json:"payee_name"`
	TenantID        string     `json:"tenant_id" gorm:"index"`
	TenantName      string     `json:"tenant_name"`
	PaidAmount      float64    `json:"paid_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
	ClearedDate     *time.Time `json:"cleared_date"`
	BouncedDate     *time.Time `json:"bounced_date"`
	CreatedByID     string     `json:"created_by_id"`
	CreatedByName   string     `json:"created_by_name"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName overrides for GORM
func (Employee) TableName() string     { return "employees" }
func (Owner) TableName() string        { return "owners" }
func (Property) TableName() string     { return "properties" }
func (Unit) TableName() string         { return "units" }
func (Tenant) TableName() string       { return "tenants" }
func (Expense) TableName() string      { return "expenses" }
func (Lease) TableName() string        { return "leases" }
func (LeasePayment) TableName() string { return "lease_payments" }
func (Asset) TableName() string        { return "assets" }
func (Cheque) TableName() string       { return "cheques" }

// Constants for business processes
const (
	// Employee / tenant statuses
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	// Owner types
	OwnerTypeIndividual      = "Individual"
	OwnerTypeCompany         = "Company"
	OwnerTypeInvestmentGroup = "Investment Group"
	OwnerTypeDeveloper       = "Developer"

	// Unit statuses
	UnitStatusAvailable        = "Available"
	UnitStatusOccupied         = "Occupied"
	UnitStatusUnderMaintenance = "Under Maintenance"
	UnitStatusReserved         = "Reserved"

	// Expense statuses
	ExpenseStatusPaid     = "Paid"
	ExpenseStatusPending  = "Pending"
	ExpenseStatusApproved = "Approved"
	ExpenseStatusRejected = "Rejected"

	// Lease statuses
	LeaseStatusActive  = "Active"
	LeaseStatusExpired = "Expired"

	// Payment frequencies
	FrequencyMonthly    = "Monthly"
	FrequencyQuarterly  = "Quarterly"
	FrequencySemiAnnual = "Semi-Annual"
	FrequencyAnnual     = "Annual"

	// Lease classifications
	ClassificationResidential = "Residential"
	ClassificationCommercial  = "Commercial"

	// Lease payment statuses
	PaymentStatusPaid      = "Paid"
	PaymentStatusPending   = "Pending"
	PaymentStatusOverdue   = "Overdue"
	PaymentStatusPartial   = "Partial"
	PaymentStatusCancelled = "Cancelled"

	// Cheque statuses
	ChequeStatusSubmitted     = "Submitted"
	ChequeStatusPending       = "Pending"
	ChequeStatusPartiallyPaid = "Partially Paid"
	ChequeStatusCleared       = "Cleared"
	ChequeStatusBounced       = "Bounced"
	ChequeStatusCancelled     = "Cancelled"

	// Cheque types
	ChequeTypeRent            = "Rent"
	ChequeTypeSecurityDeposit = "Security Deposit"
	ChequeTypeMaintenance     = "Maintenance"
	ChequeTypeCommission      = "Commission"
	ChequeTypeOther           = "Other"
)

// FrequencyMonths maps a payment frequency to its interval in months.
func FrequencyMonths(frequency string) int {
	switch frequency {
	case FrequencyQuarterly:
		return 3
	case FrequencySemiAnnual:
		return 6
	case FrequencyAnnual:
		return 12
	default:
		return 1
	}
}

// HasPermission reports whether the employee carries the capability tag.
// The "admin" tag grants everything.
func (e *Employee) HasPermission(tag string) bool {
	for _, p := range e.Permissions {
		if p == tag || p == "admin" {
			return true
		}
	}
	return false
}
