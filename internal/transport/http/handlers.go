package http

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uaq907/estateflow-sub002/config"
	"github.com/Uaq907/estateflow-sub002/internal/core"
	"github.com/Uaq907/estateflow-sub002/internal/demo"
)

type Handlers struct {
	services *core.ServiceRegistry
	store    core.Repository
	demoCfg  config.DemoConfig
	logger   *logrus.Logger
}

func NewHandlers(services *core.ServiceRegistry, store core.Repository, demoCfg config.DemoConfig, logger *logrus.Logger) *Handlers {
	return &Handlers{
		services: services,
		store:    store,
		demoCfg:  demoCfg,
		logger:   logger,
	}
}

// Health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrSessionExpired),
		errors.Is(err, core.ErrLoginDisabled):
		status = http.StatusUnauthorized
	case errors.Is(err, core.ErrPropertyNotFound),
		errors.Is(err, core.ErrOwnerNotFound),
		errors.Is(err, core.ErrTenantNotFound),
		errors.Is(err, core.ErrLeaseNotFound),
		errors.Is(err, core.ErrPaymentNotFound),
		errors.Is(err, core.ErrChequeNotFound),
		errors.Is(err, core.ErrExpenseNotFound),
		errors.Is(err, core.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrPaymentAlreadyPaid),
		errors.Is(err, core.ErrPaymentCancelled),
		errors.Is(err, core.ErrChequeAlreadySettled),
		errors.Is(err, core.ErrInvalidChequeStatus):
		status = http.StatusConflict
	default:
		var bizErr core.BusinessError
		if errors.As(err, &bizErr) {
			status = http.StatusBadRequest
		}
	}

	c.JSON(status, errorResponse(err.Error()))
}

// Auth handlers

func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	session, employee, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"employee":   employee,
	}))
}

func (h *Handlers) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.services.Auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("logged out", nil))
}

func (h *Handlers) CurrentEmployee(c *gin.Context) {
	employee, _ := c.Get("employee")
	c.JSON(http.StatusOK, successResponse(employee))
}

// Demo data handlers

func (h *Handlers) demoGenerator() *demo.Generator {
	if h.demoCfg.Seed != 0 {
		return demo.NewGenerator(rand.New(rand.NewSource(h.demoCfg.Seed)))
	}
	return demo.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (h *Handlers) demoCount(c *gin.Context) int {
	count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
	if err != nil || count <= 0 {
		count = h.demoCfg.DefaultCount
	}
	return count
}

// GenerateDemoData returns a freshly generated dataset without the seed
// catalog entries.
func (h *Handlers) GenerateDemoData(c *gin.Context) {
	dataset := h.demoGenerator().Generate(h.demoCount(c))
	c.JSON(http.StatusOK, successResponse(dataset))
}

// FullDemoData returns the seed catalog merged with generated records.
func (h *Handlers) FullDemoData(c *gin.Context) {
	dataset := h.demoGenerator().Full(h.demoCount(c))
	c.JSON(http.StatusOK, successResponse(dataset))
}

// LoadDemoData generates a full dataset and persists it. With ?wipe=true
// the existing data is removed first.
func (h *Handlers) LoadDemoData(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("wipe") == "true" {
		if err := demo.Wipe(ctx, h.store); err != nil {
			respondError(c, err)
			return
		}
	}

	dataset := h.demoGenerator().Full(h.demoCount(c))
	if err := demo.Load(ctx, h.store, dataset, h.logger); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse("demo data loaded", gin.H{
		"properties": len(dataset.Properties),
		"units":      len(dataset.Units),
		"tenants":    len(dataset.Tenants),
		"leases":     len(dataset.Leases),
		"payments":   len(dataset.LeasePayments),
		"cheques":    len(dataset.Cheques),
	}))
}

// Dashboard handler

func (h *Handlers) DashboardSummary(c *gin.Context) {
	summary, err := h.services.Dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}

// Property handlers

func (h *Handlers) ListProperties(c *gin.Context) {
	properties, err := h.services.Portfolio.ListProperties(c.Request.Context(), c.Query("city"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(properties))
}

func (h *Handlers) GetProperty(c *gin.Context) {
	property, units, err := h.services.Portfolio.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{
		"property": property,
		"units":    units,
	}))
}

func (h *Handlers) CreateProperty(c *gin.Context) {
	var property core.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.services.Portfolio.CreateProperty(c.Request.Context(), &property); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(property))
}

func (h *Handlers) UpdateProperty(c *gin.Context) {
	var property core.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	property.ID = c.Param("id")

	if err := h.services.Portfolio.UpdateProperty(c.Request.Context(), &property); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(property))
}

func (h *Handlers) DeleteProperty(c *gin.Context) {
	if err := h.services.Portfolio.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("property deleted", nil))
}

// ListPropertyUnits returns the units belonging to one property.
func (h *Handlers) ListPropertyUnits(c *gin.Context) {
	units, err := h.services.Portfolio.ListUnits(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(units))
}

func (h *Handlers) ListUnits(c *gin.Context) {
	units, err := h.services.Portfolio.ListUnits(c.Request.Context(), c.Query("property_id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(units))
}

// Owner handlers

func (h *Handlers) ListOwners(c *gin.Context) {
	owners, err := h.services.Portfolio.ListOwners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(owners))
}

func (h *Handlers) GetOwner(c *gin.Context) {
	owner, err := h.services.Portfolio.GetOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(owner))
}

// Tenant handlers

func (h *Handlers) ListTenants(c *gin.Context) {
	tenants, err := h.services.Portfolio.ListTenants(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tenants))
}

func (h *Handlers) GetTenant(c *gin.Context) {
	tenant, err := h.services.Portfolio.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tenant))
}

func (h *Handlers) CreateTenant(c *gin.Context) {
	var tenant core.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.services.Portfolio.CreateTenant(c.Request.Context(), &tenant); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(tenant))
}

func (h *Handlers) UpdateTenant(c *gin.Context) {
	var tenant core.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	tenant.ID = c.Param("id")

	if err := h.services.Portfolio.UpdateTenant(c.Request.Context(), &tenant); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(tenant))
}

// Employee handlers

func (h *Handlers) ListEmployees(c *gin.Context) {
	employees, err := h.services.Portfolio.ListEmployees(c.Request.Context(), c.Query("department"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(employees))
}

func (h *Handlers) GetEmployee(c *gin.Context) {
	employee, err := h.services.Portfolio.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(employee))
}

// Expense handlers

func (h *Handlers) ListExpenses(c *gin.Context) {
	expenses, err := h.services.Portfolio.ListExpenses(c.Request.Context(), c.Query("property_id"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(expenses))
}

func (h *Handlers) CreateExpense(c *gin.Context) {
	var expense core.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.services.Portfolio.CreateExpense(c.Request.Context(), &expense); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(expense))
}

func (h *Handlers) UpdateExpenseStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	expense, err := h.services.Portfolio.UpdateExpenseStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(expense))
}

// Asset handlers

func (h *Handlers) ListAssets(c *gin.Context) {
	assets, err := h.services.Portfolio.ListAssets(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(assets))
}

// Lease handlers

func (h *Handlers) ListLeases(c *gin.Context) {
	leases, err := h.services.Leasing.ListLeases(c.Request.Context(),
		c.Query("property_id"), c.Query("tenant_id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(leases))
}

func (h *Handlers) GetLease(c *gin.Context) {
	lease, payments, err := h.services.Leasing.GetLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{
		"lease":    lease,
		"payments": payments,
	}))
}

func (h *Handlers) MarkPaymentPaid(c *gin.Context) {
	var req struct {
		Method string `json:"method"`
	}
	// Body is optional; an empty method keeps the existing one.
	_ = c.ShouldBindJSON(&req)

	payment, err := h.services.Leasing.MarkPaymentPaid(c.Request.Context(), c.Param("pid"), req.Method)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(payment))
}

func (h *Handlers) SweepOverduePayments(c *gin.Context) {
	swept, err := h.services.Leasing.SweepOverduePayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"swept": swept}))
}

// Cheque handlers

func (h *Handlers) ListCheques(c *gin.Context) {
	cheques, err := h.services.Cheques.ListCheques(c.Request.Context(), c.Query("status"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(cheques))
}

func (h *Handlers) CreateCheque(c *gin.Context) {
	var cheque core.Cheque
	if err := c.ShouldBindJSON(&cheque); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if employee, ok := c.Get("employee"); ok {
		if e, ok := employee.(*core.Employee); ok {
			cheque.CreatedByID = e.ID
			cheque.CreatedByName = e.Name
		}
	}

	if err := h.services.Cheques.CreateCheque(c.Request.Context(), &cheque); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(cheque))
}

// UpdateChequeStatus drives a cheque through the settlement transitions.
// Partially Paid requires an amount; Cleared and Bounced do not.
func (h *Handlers) UpdateChequeStatus(c *gin.Context) {
	var req struct {
		Status string  `json:"status" binding:"required"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	var (
		cheque *core.Cheque
		err    error
	)
	switch req.Status {
	case core.ChequeStatusCleared:
		cheque, err = h.services.Cheques.ClearCheque(ctx, id)
	case core.ChequeStatusBounced:
		cheque, err = h.services.Cheques.BounceCheque(ctx, id)
	case core.ChequeStatusPartiallyPaid:
		cheque, err = h.services.Cheques.RecordPartialPayment(ctx, id, req.Amount)
	default:
		c.JSON(http.StatusBadRequest, errorResponse("unsupported status transition: "+req.Status))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(cheque))
}

func (h *Handlers) GetCheque(c *gin.Context) {
	cheque, err := h.services.Cheques.GetCheque(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(cheque))
}

func (h *Handlers) ClearCheque(c *gin.Context) {
	cheque, err := h.services.Cheques.ClearCheque(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(cheque))
}

func (h *Handlers) BounceCheque(c *gin.Context) {
	cheque, err := h.services.Cheques.BounceCheque(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(cheque))
}

func (h *Handlers) RecordChequePayment(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	cheque, err := h.services.Cheques.RecordPartialPayment(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(cheque))
}
