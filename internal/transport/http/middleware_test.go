package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Uaq907/estateflow-sub002/internal/core"
)

func permissionRouter(employee *core.Employee, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/resource",
		func(c *gin.Context) {
			if employee != nil {
				c.Set("employee", employee)
			}
			c.Next()
		},
		RequirePermission(permission),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, successResponse("ok"))
		},
	)
	return router
}

func TestRequirePermissionGranted(t *testing.T) {
	employee := &core.Employee{Permissions: []string{"properties:read"}}
	router := permissionRouter(employee, "properties:read")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionAdminOverride(t *testing.T) {
	employee := &core.Employee{Permissions: []string{"admin"}}
	router := permissionRouter(employee, "cheques:write")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionDenied(t *testing.T) {
	employee := &core.Employee{Permissions: []string{"properties:read"}}
	router := permissionRouter(employee, "cheques:write")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRequirePermissionWithoutSession(t *testing.T) {
	router := permissionRouter(nil, "properties:read")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
