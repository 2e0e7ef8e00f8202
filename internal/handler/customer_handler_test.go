package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/config"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/testutil"
)

func setupCustomerTest(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	authSvc := service.NewAuthService(repos.User, repos.Customer, nil, config.JWTConfig{
		Secret:             testutil.TestJWTSecret,
		Issuer:             "kandypack",
		AccessTokenExpire:  time.Hour,
		RefreshTokenExpire: 24 * time.Hour,
	})
	customerHandler := NewCustomerHandler(service.NewCustomerService(repos.Customer, authSvc))

	router := testutil.SetupRouter()
	api := router.Group("/api/v1", middleware.JWTAuth(testutil.TestJWTSecret))

	management := middleware.RequireRoles(entity.RoleManagement)

	customers := api.Group("/customers")
	customers.GET("", management, customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", management, customerHandler.Delete)

	return router, repos
}

func TestCustomerGetAccessMatrix(t *testing.T) {
	router, repos := setupCustomerTest(t)
	seedTestCustomer(t, repos, "c1")

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"owner", testutil.GenerateTestToken(t, "c1", "cust-c1", entity.RoleCustomer), http.StatusOK},
		{"other customer", testutil.GenerateTestToken(t, "c2", "cust-c2", entity.RoleCustomer), http.StatusForbidden},
		{"driver", testutil.GenerateTestToken(t, "u1", "driver1", entity.RoleDriver), http.StatusForbidden},
		{"assistant", testutil.GenerateTestToken(t, "u2", "assist1", entity.RoleAssistant), http.StatusForbidden},
		{"store manager", testutil.GenerateTestToken(t, "u3", "manager1", entity.RoleStoreManager), http.StatusForbidden},
		{"management", testutil.GenerateTestToken(t, "u4", "amara", entity.RoleManagement), http.StatusOK},
		{"system admin", testutil.GenerateTestToken(t, "u5", "root", entity.RoleSystemAdmin), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.DoRequest(t, router, http.MethodGet, "/api/v1/customers/c1", nil, tc.token)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCustomerUpdateDeniedForNonOwnerStaff(t *testing.T) {
	router, repos := setupCustomerTest(t)
	seedTestCustomer(t, repos, "c1")

	body := gin.H{"address": "99 Sea View"}

	driverToken := testutil.GenerateTestToken(t, "u1", "driver1", entity.RoleDriver)
	w := testutil.DoRequest(t, router, http.MethodPut, "/api/v1/customers/c1", body, driverToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	customer, err := repos.Customer.FindByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "12 Lake Rd", customer.Address)

	ownerToken := testutil.GenerateTestToken(t, "c1", "cust-c1", entity.RoleCustomer)
	w = testutil.DoRequest(t, router, http.MethodPut, "/api/v1/customers/c1", body, ownerToken)
	require.Equal(t, http.StatusOK, w.Code)

	managementToken := testutil.GenerateTestToken(t, "u4", "amara", entity.RoleManagement)
	w = testutil.DoRequest(t, router, http.MethodPut, "/api/v1/customers/c1", gin.H{"address": "1 Depot Ln"}, managementToken)
	assert.Equal(t, http.StatusOK, w.Code)

	customer, err = repos.Customer.FindByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "1 Depot Ln", customer.Address)
}
