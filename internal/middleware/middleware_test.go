package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/testutil"
)

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authorized := router.Group("/", middleware.JWTAuth(testutil.TestJWTSecret))
	authorized.GET("/any", func(c *gin.Context) { c.Status(http.StatusOK) })
	authorized.GET("/admin", middleware.RequireRoles(entity.RoleManagement), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuthMissingToken(t *testing.T) {
	router := newGuardedRouter()

	w := testutil.DoRequest(t, router, http.MethodGet, "/any", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router := newGuardedRouter()

	w := testutil.DoRequest(t, router, http.MethodGet, "/any", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router := newGuardedRouter()
	token := testutil.GenerateTestToken(t, "u1", "amara", entity.RoleDriver)

	w := testutil.DoRequest(t, router, http.MethodGet, "/any", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsOutsiders(t *testing.T) {
	router := newGuardedRouter()
	token := testutil.GenerateTestToken(t, "c1", "nimal", entity.RoleCustomer)

	w := testutil.DoRequest(t, router, http.MethodGet, "/admin", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	router := newGuardedRouter()
	token := testutil.GenerateTestToken(t, "u1", "amara", entity.RoleManagement)

	w := testutil.DoRequest(t, router, http.MethodGet, "/admin", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesSystemAdminBypass(t *testing.T) {
	router := newGuardedRouter()
	token := testutil.GenerateTestToken(t, "u0", "root", entity.RoleSystemAdmin)

	w := testutil.DoRequest(t, router, http.MethodGet, "/admin", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
