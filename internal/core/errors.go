package core

import "fmt"

// BusinessError carries a stable code alongside a human-readable message.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// Auth errors
	ErrInvalidCredentials = BusinessError{"AUTH_001", "invalid email or password"}
	ErrLoginDisabled      = BusinessError{"AUTH_002", "login is disabled for this account"}
	ErrSessionExpired     = BusinessError{"AUTH_003", "session expired or not found"}

	// Property errors
	ErrPropertyNotFound = BusinessError{"PROP_001", "property not found"}
	ErrOwnerNotFound    = BusinessError{"PROP_002", "owner not found"}

	// Tenant errors
	ErrTenantNotFound = BusinessError{"TENANT_001", "tenant not found"}

	// Lease errors
	ErrLeaseNotFound      = BusinessError{"LEASE_001", "lease not found"}
	ErrPaymentNotFound    = BusinessError{"LEASE_002", "lease payment not found"}
	ErrPaymentAlreadyPaid = BusinessError{"LEASE_003", "payment already settled"}
	ErrPaymentCancelled   = BusinessError{"LEASE_004", "payment is cancelled"}

	// Cheque errors
	ErrChequeNotFound       = BusinessError{"CHEQUE_001", "cheque not found"}
	ErrChequeAlreadySettled = BusinessError{"CHEQUE_002", "cheque already settled"}
	ErrInvalidChequeStatus  = BusinessError{"CHEQUE_003", "invalid cheque status"}

	// Expense errors
	ErrExpenseNotFound = BusinessError{"EXPENSE_001", "expense not found"}

	// Employee errors
	ErrEmployeeNotFound = BusinessError{"EMP_001", "employee not found"}
)
