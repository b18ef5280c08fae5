package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) { c.Set(CtxRole, role) },
		RequireRole(models.RoleAdmin),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r
}

func TestRequireRoleAllows(t *testing.T) {
	w := httptest.NewRecorder()
	roleRouter(models.RoleAdmin).ServeHTTP(w, httptest.NewRequest("GET", "/admin-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	w := httptest.NewRecorder()
	roleRouter(models.RoleAgent).ServeHTTP(w, httptest.NewRequest("GET", "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleMissingRole(t *testing.T) {
	w := httptest.NewRecorder()
	roleRouter("").ServeHTTP(w, httptest.NewRequest("GET", "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
