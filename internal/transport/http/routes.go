package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

func SetupRoutes(router *gin.Engine, handlers *Handlers, services *core.ServiceRegistry, logger *logrus.Logger) {
	// Global middleware
	router.Use(Logger(logger))
	router.Use(ErrorHandler())
	router.Use(CORS())

	// Health check (public)
	router.GET("/health", handlers.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public endpoints
	v1.POST("/auth/login", handlers.Login)
	v1.POST("/demo/generate", handlers.GenerateDemoData)
	v1.GET("/demo/full", handlers.FullDemoData)

	// Authenticated endpoints
	auth := v1.Group("")
	auth.Use(SessionAuth(services.Auth))
	{
		auth.POST("/auth/logout", handlers.Logout)
		auth.GET("/auth/me", handlers.CurrentEmployee)

		auth.GET("/dashboard/summary", handlers.DashboardSummary)

		// Portfolio
		properties := auth.Group("/properties")
		properties.Use(RequirePermission("properties:read"))
		{
			properties.GET("", handlers.ListProperties)
			properties.GET("/:id", handlers.GetProperty)
			properties.GET("/:id/units", handlers.ListPropertyUnits)
			properties.POST("", RequirePermission("properties:write"), handlers.CreateProperty)
			properties.PUT("/:id", RequirePermission("properties:write"), handlers.UpdateProperty)
			properties.DELETE("/:id", RequirePermission("properties:write"), handlers.DeleteProperty)
		}

		units := auth.Group("/units")
		units.Use(RequirePermission("properties:read"))
		{
			units.GET("", handlers.ListUnits)
		}

		owners := auth.Group("/owners")
		owners.Use(RequirePermission("properties:read"))
		{
			owners.GET("", handlers.ListOwners)
			owners.GET("/:id", handlers.GetOwner)
		}

		assets := auth.Group("/assets")
		assets.Use(RequirePermission("properties:read"))
		{
			assets.GET("", handlers.ListAssets)
		}

		// Tenants
		tenants := auth.Group("/tenants")
		tenants.Use(RequirePermission("tenants:read"))
		{
			tenants.GET("", handlers.ListTenants)
			tenants.GET("/:id", handlers.GetTenant)
			tenants.POST("", RequirePermission("tenants:write"), handlers.CreateTenant)
			tenants.PUT("/:id", RequirePermission("tenants:write"), handlers.UpdateTenant)
		}

		// Leasing
		leases := auth.Group("/leases")
		leases.Use(RequirePermission("leases:read"))
		{
			leases.GET("", handlers.ListLeases)
			leases.GET("/:id", handlers.GetLease)
			leases.POST("/:id/payments/:pid/pay", RequirePermission("leases:write"), handlers.MarkPaymentPaid)
		}

		payments := auth.Group("/payments")
		payments.Use(RequirePermission("leases:write"))
		{
			payments.POST("/sweep-overdue", handlers.SweepOverduePayments)
		}

		// Cheques
		cheques := auth.Group("/cheques")
		cheques.Use(RequirePermission("cheques:read"))
		{
			cheques.GET("", handlers.ListCheques)
			cheques.GET("/:id", handlers.GetCheque)
			cheques.POST("", RequirePermission("cheques:write"), handlers.CreateCheque)
			cheques.PATCH("/:id/status", RequirePermission("cheques:write"), handlers.UpdateChequeStatus)
			cheques.POST("/:id/clear", RequirePermission("cheques:write"), handlers.ClearCheque)
			cheques.POST("/:id/bounce", RequirePermission("cheques:write"), handlers.BounceCheque)
			cheques.POST("/:id/payment", RequirePermission("cheques:write"), handlers.RecordChequePayment)
		}

		// Expenses
		expenses := auth.Group("/expenses")
		expenses.Use(RequirePermission("expenses:read"))
		{
			expenses.GET("", handlers.ListExpenses)
			expenses.POST("", RequirePermission("expenses:write"), handlers.CreateExpense)
			expenses.PATCH("/:id/status", RequirePermission("expenses:write"), handlers.UpdateExpenseStatus)
		}

		// Employees (admin only)
		employees := auth.Group("/employees")
		employees.Use(RequirePermission("admin"))
		{
			employees.GET("", handlers.ListEmployees)
			employees.GET("/:id", handlers.GetEmployee)
		}

		// Demo data loading (admin only)
		auth.POST("/demo/load", RequirePermission("admin"), handlers.LoadDemoData)
	}
}
