package demo

import (
	"time"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

// The static seed catalog: hand-authored records with ids "1"-"3" per
// entity type. Every function returns a fresh slice so callers can never
// share mutable state across invocations. Units and cheques have no seed
// entries; they are always generated.

// SeedEmployees returns the hand-authored employee records.
func SeedEmployees() []core.Employee {
	now := time.Now()
	dob1 := time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)
	dob2 := time.Date(1990, 7, 2, 0, 0, 0, 0, time.UTC)
	dob3 := time.Date(1988, 11, 23, 0, 0, 0, 0, time.UTC)
	visa1 := now.AddDate(1, 2, 0)
	visa2 := now.AddDate(0, 9, 0)
	visa3 := now.AddDate(2, 0, 0)
	ins1 := now.AddDate(0, 11, 0)
	ins2 := now.AddDate(1, 0, 0)
	ins3 := now.AddDate(0, 6, 0)
	manager := "1"

	return []core.Employee{
		{
			ID:                  "1",
			Name:                "Ahmed Al Mansoori",
			Email:               "ahmed@estateflow.ae",
			Position:            "Operations Manager",
			Department:          "Administration",
			StartDate:           now.AddDate(-4, 0, 0),
			AllowLogin:          true,
			Permissions:         []string{"admin"},
			Phone:               "+971501234001",
			EmiratesID:          "784-1985-1234567-1",
			PassportNumber:      "A1234567",
			DateOfBirth:         &dob1,
			Status:              core.StatusActive,
			Nationality:         "UAE",
			Salary:              28000,
			VisaNumber:          "V-2021-44812",
			VisaExpiryDate:      &visa1,
			InsuranceNumber:     "INS-88120",
			InsuranceExpiryDate: &ins1,
			EmailNotifications:  true,
			SMSNotifications:    true,
			Password:            "demo1234",
			CreatedAt:           now.AddDate(-4, 0, 0),
			UpdatedAt:           now.AddDate(0, -1, 0),
		},
		{
			ID:                  "2",
			Name:                "Sara Khan",
			Email:               "sara@estateflow.ae",
			Position:            "Accountant",
			Department:          "Finance",
			StartDate:           now.AddDate(-2, -6, 0),
			AllowLogin:          true,
			Permissions:         []string{"properties:read", "leases:read", "cheques:read", "cheques:write", "expenses:read", "expenses:write"},
			Phone:               "+971501234002",
			EmiratesID:          "784-1990-2345678-2",
			PassportNumber:      "B2345678",
			DateOfBirth:         &dob2,
			Status:              core.StatusActive,
			Nationality:         "Pakistan",
			ManagerID:           &manager,
			Salary:              14000,
			VisaNumber:          "V-2022-55913",
			VisaExpiryDate:      &visa2,
			InsuranceNumber:     "INS-90233",
			InsuranceExpiryDate: &ins2,
			EmailNotifications:  true,
			SMSNotifications:    false,
			Password:            "demo1234",
			CreatedAt:           now.AddDate(-2, -6, 0),
			UpdatedAt:           now.AddDate(0, -2, 0),
		},
		{
			ID:                  "3",
			Name:                "Ravi Sharma",
			Email:               "ravi@estateflow.ae",
			Position:            "Leasing Agent",
			Department:          "Leasing",
			StartDate:           now.AddDate(-1, -3, 0),
			AllowLogin:          true,
			Permissions:         []string{"properties:read", "tenants:read", "tenants:write", "leases:read", "leases:write"},
			Phone:               "+971501234003",
			EmiratesID:          "784-1988-3456789-3",
			PassportNumber:      "C3456789",
			DateOfBirth:         &dob3,
			Status:              core.StatusActive,
			Nationality:         "India",
			ManagerID:           &manager,
			Salary:              9500,
			VisaNumber:          "V-2023-61204",
			VisaExpiryDate:      &visa3,
			InsuranceNumber:     "INS-91741",
			InsuranceExpiryDate: &ins3,
			EmailNotifications:  true,
			SMSNotifications:    true,
			Password:            "demo1234",
			CreatedAt:           now.AddDate(-1, -3, 0),
			UpdatedAt:           now.AddDate(0, 0, -10),
		},
	}
}

// SeedOwners returns the hand-authored owner records.
func SeedOwners() []core.Owner {
	now := time.Now()
	return []core.Owner{
		{
			ID:          "1",
			Name:        "Khalid Al Falasi",
			Email:       "khalid.falasi@example.com",
			Phone:       "+971502000001",
			Type:        core.OwnerTypeIndividual,
			Nationality: "UAE",
			BankName:    "Emirates NBD",
			BankAccount: "AE070331234567890123456",
			CreatedAt:   now.AddDate(-3, 0, 0),
			UpdatedAt:   now.AddDate(0, -4, 0),
		},
		{
			ID:          "2",
			Name:        "Falcon Holdings",
			Email:       "portfolio@falconholdings.ae",
			Phone:       "+97142000002",
			Type:        core.OwnerTypeCompany,
			Nationality: "UAE",
			BankName:    "First Abu Dhabi Bank",
			BankAccount: "AE120350987654321098765",
			CreatedAt:   now.AddDate(-5, 0, 0),
			UpdatedAt:   now.AddDate(0, -1, 0),
		},
		{
			ID:          "3",
			Name:        "Oasis Investments",
			Email:       "assets@oasisinvest.ae",
			Phone:       "+97143000003",
			Type:        core.OwnerTypeInvestmentGroup,
			Nationality: "UAE",
			BankName:    "Dubai Islamic Bank",
			BankAccount: "AE460240112233445566778",
			CreatedAt:   now.AddDate(-2, -8, 0),
			UpdatedAt:   now.AddDate(0, 0, -20),
		},
	}
}

// SeedProperties returns the hand-authored property records.
func SeedProperties() []core.Property {
	now := time.Now()
	return []core.Property{
		{
			ID:            "1",
			Name:          "Marina Heights",
			Type:          "Apartment Building",
			Purpose:       "Residential",
			Address:       "Plot 12, Al Marsa Street",
			City:          "Dubai",
			Area:          "Marina",
			TotalUnits:    12,
			OccupiedUnits: 9,
			OwnerID:       "2",
			ManagerID:     "1",
			PurchaseValue: 14500000,
			CurrentValue:  17200000,
			CreatedAt:     now.AddDate(-3, 0, 0),
			UpdatedAt:     now.AddDate(0, -1, 0),
		},
		{
			ID:            "2",
			Name:          "Crown Business Center",
			Type:          "Office Tower",
			Purpose:       "Commercial",
			Address:       "Sheikh Zayed Road, Exit 41",
			City:          "Dubai",
			Area:          "Downtown",
			TotalUnits:    20,
			OccupiedUnits: 14,
			OwnerID:       "3",
			ManagerID:     "1",
			PurchaseValue: 32000000,
			CurrentValue:  35500000,
			CreatedAt:     now.AddDate(-5, 0, 0),
			UpdatedAt:     now.AddDate(0, 0, -15),
		},
		{
			ID:            "3",
			Name:          "Jasmine Villas",
			Type:          "Villa Compound",
			Purpose:       "Residential",
			Address:       "Street 8, Al Barsha South",
			City:          "Dubai",
			Area:          "Al Barsha",
			TotalUnits:    6,
			OccupiedUnits: 5,
			OwnerID:       "1",
			ManagerID:     "3",
			PurchaseValue: 9800000,
			CurrentValue:  11000000,
			CreatedAt:     now.AddDate(-2, -4, 0),
			UpdatedAt:     now.AddDate(0, 0, -7),
		},
	}
}

// SeedTenants returns the hand-authored tenant records.
func SeedTenants() []core.Tenant {
	now := time.Now()
	return []core.Tenant{
		{
			ID:             "1",
			Name:           "Omar Hussain",
			Email:          "omar.hussain@example.com",
			Phone:          "+971503000001",
			EmiratesID:     "784-1992-4567890-4",
			PassportNumber: "D4567890",
			Nationality:    "Jordan",
			Status:         core.StatusActive,
			AllowLogin:     true,
			CreatedAt:      now.AddDate(-2, 0, 0),
			UpdatedAt:      now.AddDate(0, -3, 0),
		},
		{
			ID:             "2",
			Name:           "Blue Ocean Cafe",
			Email:          "accounts@blueoceancafe.ae",
			Phone:          "+97144000002",
			EmiratesID:     "",
			PassportNumber: "",
			Nationality:    "UAE",
			Status:         core.StatusActive,
			AllowLogin:     false,
			CreatedAt:      now.AddDate(-1, -6, 0),
			UpdatedAt:      now.AddDate(0, -1, 0),
		},
		{
			ID:             "3",
			Name:           "Maria Fernandes",
			Email:          "maria.fernandes@example.com",
			Phone:          "+971503000003",
			EmiratesID:     "784-1995-5678901-5",
			PassportNumber: "E5678901",
			Nationality:    "Philippines",
			Status:         core.StatusInactive,
			AllowLogin:     false,
			CreatedAt:      now.AddDate(-3, -2, 0),
			UpdatedAt:      now.AddDate(0, -6, 0),
		},
	}
}

// SeedExpenses returns the hand-authored expense records.
func SeedExpenses() []core.Expense {
	now := time.Now()
	return []core.Expense{
		{
			ID:          "1",
			Description: "Annual fire system inspection",
			Amount:      4200,
			Category:    "Government Fees",
			Status:      core.ExpenseStatusPaid,
			PropertyID:  "1",
			EmployeeID:  "1",
			Date:        now.AddDate(0, -2, 0),
			Notes:       "Civil defence certificate renewed",
			CreatedAt:   now.AddDate(0, -2, 0),
			UpdatedAt:   now.AddDate(0, -2, 5),
		},
		{
			ID:          "2",
			Description: "Chiller maintenance contract Q2",
			Amount:      11500,
			Category:    "Maintenance",
			Status:      core.ExpenseStatusApproved,
			PropertyID:  "2",
			EmployeeID:  "2",
			Date:        now.AddDate(0, -1, 0),
			Notes:       "",
			CreatedAt:   now.AddDate(0, -1, 0),
			UpdatedAt:   now.AddDate(0, -1, 2),
		},
		{
			ID:          "3",
			Description: "Garden maintenance",
			Amount:      1800,
			Category:    "Landscaping",
			Status:      core.ExpenseStatusPending,
			PropertyID:  "3",
			EmployeeID:  "3",
			Date:        now.AddDate(0, 0, -12),
			Notes:       "Monthly visit",
			CreatedAt:   now.AddDate(0, 0, -12),
			UpdatedAt:   now.AddDate(0, 0, -12),
		},
	}
}

// SeedLeases returns the hand-authored lease records.
func SeedLeases() []core.Lease {
	now := time.Now()
	return []core.Lease{
		{
			ID:               "1",
			TenantID:         "1",
			PropertyID:       "1",
			UnitID:           "1-1",
			StartDate:        now.AddDate(0, -8, 0),
			EndDate:          now.AddDate(0, 4, 0),
			MonthlyRent:      7500,
			DepositAmount:    15000,
			PaymentFrequency: core.FrequencyQuarterly,
			Classification:   core.ClassificationResidential,
			Status:           core.LeaseStatusActive,
			TotalLeaseAmount: 90000,
			TotalPaidAmount:  60000,
			PaymentsCount:    4,
			CreatedAt:        now.AddDate(0, -8, 0),
			UpdatedAt:        now.AddDate(0, -1, 0),
		},
		{
			ID:               "2",
			TenantID:         "2",
			PropertyID:       "2",
			UnitID:           "2-4",
			StartDate:        now.AddDate(-1, -2, 0),
			EndDate:          now.AddDate(0, 10, 0),
			MonthlyRent:      12000,
			DepositAmount:    24000,
			PaymentFrequency: core.FrequencySemiAnnual,
			Classification:   core.ClassificationCommercial,
			Status:           core.LeaseStatusActive,
			TotalLeaseAmount: 288000,
			TotalPaidAmount:  144000,
			PaymentsCount:    4,
			CreatedAt:        now.AddDate(-1, -2, 0),
			UpdatedAt:        now.AddDate(0, -2, 0),
		},
		{
			ID:               "3",
			TenantID:         "3",
			PropertyID:       "3",
			UnitID:           "3-2",
			StartDate:        now.AddDate(-2, 0, 0),
			EndDate:          now.AddDate(-1, 0, 0),
			MonthlyRent:      15000,
			DepositAmount:    30000,
			PaymentFrequency: core.FrequencyAnnual,
			Classification:   core.ClassificationResidential,
			Status:           core.LeaseStatusExpired,
			TotalLeaseAmount: 180000,
			TotalPaidAmount:  180000,
			PaymentsCount:    3,
			CreatedAt:        now.AddDate(-2, 0, 0),
			UpdatedAt:        now.AddDate(-1, 0, 0),
		},
	}
}

// SeedLeasePayments returns the hand-authored lease payment records.
func SeedLeasePayments() []core.LeasePayment {
	now := time.Now()
	paid1 := now.AddDate(0, -5, 2)
	paid2 := now.AddDate(0, -2, 1)
	return []core.LeasePayment{
		{
			ID:            "1-payment-1",
			LeaseID:       "1",
			Amount:        22500,
			DueDate:       now.AddDate(0, -5, 0),
			Status:        core.PaymentStatusPaid,
			PaymentMethod: "Cheque",
			PaidDate:      &paid1,
			Notes:         "",
			CreatedAt:     now.AddDate(0, -8, 0),
			UpdatedAt:     paid1,
		},
		{
			ID:            "1-payment-2",
			LeaseID:       "1",
			Amount:        22500,
			DueDate:       now.AddDate(0, -2, 0),
			Status:        core.PaymentStatusPaid,
			PaymentMethod: "Bank Transfer",
			PaidDate:      &paid2,
			Notes:         "",
			CreatedAt:     now.AddDate(0, -8, 0),
			UpdatedAt:     paid2,
		},
		{
			ID:        "1-payment-3",
			LeaseID:   "1",
			Amount:    22500,
			DueDate:   now.AddDate(0, 1, 0),
			Status:    core.PaymentStatusPending,
			Notes:     "",
			CreatedAt: now.AddDate(0, -8, 0),
			UpdatedAt: now.AddDate(0, -8, 0),
		},
	}
}

// SeedAssets returns the hand-authored asset records.
func SeedAssets() []core.Asset {
	now := time.Now()
	return []core.Asset{
		{
			ID:                 "1",
			Name:               "Elevator",
			Category:           "Mechanical",
			Status:             "Operational",
			PropertyID:         "1",
			UnitID:             "",
			PurchaseDate:       now.AddDate(-3, 0, 0),
			WarrantyExpiryDate: now.AddDate(0, 0, 0),
			PurchasePrice:      185000,
			SerialNumber:       "SN-ELV-48812",
			Brand:              "Otis",
			Model:              "Gen2",
			CreatedAt:          now.AddDate(-3, 0, 0),
			UpdatedAt:          now.AddDate(0, -2, 0),
		},
		{
			ID:                 "2",
			Name:               "Backup Generator",
			Category:           "Electrical",
			Status:             "Operational",
			PropertyID:         "2",
			UnitID:             "",
			PurchaseDate:       now.AddDate(-1, -6, 0),
			WarrantyExpiryDate: now.AddDate(1, 6, 0),
			PurchasePrice:      96000,
			SerialNumber:       "SN-GEN-90233",
			Brand:              "Caterpillar",
			Model:              "DE110E2",
			CreatedAt:          now.AddDate(-1, -6, 0),
			UpdatedAt:          now.AddDate(0, -1, 0),
		},
		{
			ID:                 "3",
			Name:               "CCTV System",
			Category:           "Security",
			Status:             "Under Repair",
			PropertyID:         "3",
			UnitID:             "3-1",
			PurchaseDate:       now.AddDate(-2, -2, 0),
			WarrantyExpiryDate: now.AddDate(0, 10, 0),
			PurchasePrice:      24000,
			SerialNumber:       "SN-CCTV-61204",
			Brand:              "Hikvision",
			Model:              "DS-7732",
			CreatedAt:          now.AddDate(-2, -2, 0),
			UpdatedAt:          now.AddDate(0, 0, -3),
		},
	}
}

// Seed assembles the full static catalog. Units and cheques stay empty:
// they have no hand-authored entries.
func Seed() *Dataset {
	return &Dataset{
		Employees:     SeedEmployees(),
		Owners:        SeedOwners(),
		Properties:    SeedProperties(),
		Tenants:       SeedTenants(),
		Expenses:      SeedExpenses(),
		Leases:        SeedLeases(),
		LeasePayments: SeedLeasePayments(),
		Assets:        SeedAssets(),
	}
}
