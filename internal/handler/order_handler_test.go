package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/testutil"
)

func setupOrderTest(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	orderSvc := service.NewOrderService(repos.Order, repos.Customer, repos.Store)
	capacitySvc := service.NewCapacityService(repos.Order, repos.Train, repos.Allocation)
	orderHandler := NewOrderHandler(orderSvc, capacitySvc)

	router := testutil.SetupRouter()
	api := router.Group("/api/v1", middleware.JWTAuth(testutil.TestJWTSecret))

	staff := middleware.RequireRoles(entity.RoleManagement, entity.RoleStoreManager)
	customer := middleware.RequireRoles(entity.RoleCustomer)

	orders := api.Group("/orders")
	orders.GET("", staff, orderHandler.List)
	orders.GET("/my", customer, orderHandler.MyOrders)
	orders.GET("/:id", staff, orderHandler.Get)
	orders.GET("/:id/space", staff, orderHandler.Space)
	orders.POST("/with-items", customer, orderHandler.CreateWithItems)

	return router, repos
}

func seedTestCustomer(t *testing.T, repos *repository.Repositories, id string) {
	t.Helper()
	require.NoError(t, repos.Customer.Create(context.Background(), &entity.Customer{
		CustomerID:       id,
		CustomerUserName: "cust-" + id,
		CustomerName:     "Test Customer",
		PhoneNumber:      "07712345-" + id,
		Address:          "12 Lake Rd",
		PasswordHash:     "x",
	}))
}

func TestCreateOrderWithItemsEndpoint(t *testing.T) {
	router, repos := setupOrderTest(t)
	seedTestCustomer(t, repos, "c1")
	token := testutil.GenerateTestToken(t, "c1", "cust-c1", entity.RoleCustomer)

	body := gin.H{
		"deliver_address": "45 Hill St",
		"deliver_city_id": "city-1",
		"order_date":      time.Now().Add(10 * 24 * time.Hour).Format(time.RFC3339),
		"items": []gin.H{
			{"product_type_id": "p1", "quantity": 3, "unit_price": 100},
			{"product_type_id": "p2", "quantity": 2, "unit_price": 250},
		},
	}
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/v1/orders/with-items", body, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Code int          `json:"code"`
		Data entity.Order `json:"data"`
	}
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "c1", resp.Data.CustomerID)
	assert.Equal(t, 800.0, resp.Data.FullPrice)
	assert.Len(t, resp.Data.Items, 2)

	w = testutil.DoRequest(t, router, http.MethodGet, "/api/v1/orders/my", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data struct {
			Items []entity.Order `json:"items"`
		} `json:"data"`
	}
	testutil.ParseResponse(t, w, &list)
	assert.Len(t, list.Data.Items, 1)
}

func TestCreateOrderWithItemsLeadTimeRejected(t *testing.T) {
	router, repos := setupOrderTest(t)
	seedTestCustomer(t, repos, "c1")
	token := testutil.GenerateTestToken(t, "c1", "cust-c1", entity.RoleCustomer)

	body := gin.H{
		"deliver_address": "45 Hill St",
		"deliver_city_id": "city-1",
		"order_date":      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"items":           []gin.H{{"product_type_id": "p1", "quantity": 1, "unit_price": 10}},
	}
	w := testutil.DoRequest(t, router, http.MethodPost, "/api/v1/orders/with-items", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderListRequiresStaffRole(t *testing.T) {
	router, repos := setupOrderTest(t)
	seedTestCustomer(t, repos, "c1")

	customerToken := testutil.GenerateTestToken(t, "c1", "cust-c1", entity.RoleCustomer)
	w := testutil.DoRequest(t, router, http.MethodGet, "/api/v1/orders", nil, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	staffToken := testutil.GenerateTestToken(t, "u1", "amara", entity.RoleManagement)
	w = testutil.DoRequest(t, router, http.MethodGet, "/api/v1/orders", nil, staffToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderSpaceEndpoint(t *testing.T) {
	router, repos := setupOrderTest(t)
	ctx := context.Background()
	seedTestCustomer(t, repos, "c1")

	require.NoError(t, repos.Product.Create(ctx, &entity.Product{
		ProductTypeID:        "p1",
		ProductName:          "Boxed Goods",
		SpaceConsumptionRate: 2.5,
	}))
	order := &entity.Order{
		OrderID:        "o1",
		CustomerID:     "c1",
		OrderDate:      time.Now().Add(10 * 24 * time.Hour),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
		Status:         entity.OrderStatusPlaced,
	}
	items := []entity.OrderItem{{ItemID: "i1", OrderID: "o1", ProductTypeID: "p1", Quantity: 10, ItemPrice: 100}}
	require.NoError(t, repos.Order.CreateWithItems(ctx, order, items))

	token := testutil.GenerateTestToken(t, "u1", "amara", entity.RoleStoreManager)
	w := testutil.DoRequest(t, router, http.MethodGet, "/api/v1/orders/o1/space", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			RequiredSpace float64 `json:"required_space"`
		} `json:"data"`
	}
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, 25.0, resp.Data.RequiredSpace)

	w = testutil.DoRequest(t, router, http.MethodGet, "/api/v1/orders/missing/space", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
