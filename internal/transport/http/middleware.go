package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

// Logger middleware.
func Logger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		logger.WithFields(logrus.Fields{
			"status":    statusCode,
			"latency":   latency,
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      path,
		}).Info("Request processed")
	}
}

// SessionAuth resolves the bearer token to a logged-in employee.
func SessionAuth(auth *core.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, errorResponse("authorization required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, errorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		employee, err := auth.ValidateSession(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, errorResponse("invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("employee", employee)
		c.Set("session_token", parts[1])
		c.Next()
	}
}

// RequirePermission checks if the logged-in employee carries the
// capability tag.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeVal, exists := c.Get("employee")
		if !exists {
			c.JSON(http.StatusUnauthorized, errorResponse("no session found"))
			c.Abort()
			return
		}

		employee, ok := employeeVal.(*core.Employee)
		if !ok {
			c.JSON(http.StatusInternalServerError, errorResponse("invalid session type"))
			c.Abort()
			return
		}

		if !employee.HasPermission(permission) {
			c.JSON(http.StatusForbidden, errorResponse("insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler middleware.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			c.JSON(c.Writer.Status(), errorResponse(err.Error()))
		}
	}
}

// CORS middleware.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
