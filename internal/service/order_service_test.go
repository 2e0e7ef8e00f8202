package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/testutil"
)

func newOrderTestService(t *testing.T) (*OrderService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewOrderService(repos.Order, repos.Customer, repos.Store)
	return svc, repos
}

func seedCustomer(t *testing.T, repos *repository.Repositories, id string) {
	t.Helper()
	err := repos.Customer.Create(context.Background(), &entity.Customer{
		CustomerID:       id,
		CustomerUserName: "cust-" + id,
		CustomerName:     "Test Customer",
		PhoneNumber:      "07712345-" + id,
		Address:          "12 Lake Rd",
		PasswordHash:     "x",
	})
	require.NoError(t, err)
}

func pinClock(svc *OrderService, t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(DeliveryTimeZone)
	require.NoError(t, err)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, loc)
	svc.now = func() time.Time { return now }
	return now
}

func TestCreateOrderLeadTime(t *testing.T) {
	svc, repos := newOrderTestService(t)
	now := pinClock(svc, t)
	seedCustomer(t, repos, "c1")

	// Exactly seven days out is accepted.
	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "c1",
		OrderDate:      now.Add(MinLeadTime),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)

	// One second short of seven days is rejected.
	_, err = svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "c1",
		OrderDate:      now.Add(MinLeadTime - time.Second),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	assert.ErrorIs(t, err, ErrLeadTimeTooShort)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	svc, _ := newOrderTestService(t)
	now := pinClock(svc, t)

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "missing",
		OrderDate:      now.Add(MinLeadTime),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateOrderWithItemsComputesFullPrice(t *testing.T) {
	svc, repos := newOrderTestService(t)
	now := pinClock(svc, t)
	seedCustomer(t, repos, "c1")

	order, err := svc.CreateWithItems(context.Background(), "c1", &CreateOrderWithItemsRequest{
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
		OrderDate:      now.Add(MinLeadTime + 24*time.Hour),
		Items: []OrderItemRequest{
			{ProductTypeID: "p1", Quantity: 3, UnitPrice: 100},
			{ProductTypeID: "p2", Quantity: 2, UnitPrice: 250},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 800.0, order.FullPrice)
	assert.Len(t, order.Items, 2)

	items, err := repos.Order.FindItems(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateOrderRevalidatesOnlyChangedDate(t *testing.T) {
	svc, repos := newOrderTestService(t)
	now := pinClock(svc, t)
	seedCustomer(t, repos, "c1")

	orderDate := now.Add(MinLeadTime + 24*time.Hour)
	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "c1",
		OrderDate:      orderDate,
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	require.NoError(t, err)

	// Move the clock past the order date. Patching unrelated fields must
	// still work because the date did not change.
	svc.now = func() time.Time { return orderDate.Add(48 * time.Hour) }

	addr := "99 New Rd"
	updated, err := svc.Update(context.Background(), order.OrderID, &UpdateOrderRequest{
		DeliverAddress: &addr,
	})
	require.NoError(t, err)
	assert.Equal(t, addr, updated.DeliverAddress)

	// Changing the date triggers the lead-time check against the new clock.
	tooSoon := orderDate.Add(72 * time.Hour)
	_, err = svc.Update(context.Background(), order.OrderID, &UpdateOrderRequest{
		OrderDate: &tooSoon,
	})
	assert.ErrorIs(t, err, ErrLeadTimeTooShort)
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	svc, repos := newOrderTestService(t)
	now := pinClock(svc, t)
	seedCustomer(t, repos, "c1")

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "c1",
		OrderDate:      now.Add(MinLeadTime),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	require.NoError(t, err)

	bogus := "TELEPORTED"
	_, err = svc.Update(context.Background(), order.OrderID, &UpdateOrderRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAssignWarehouse(t *testing.T) {
	svc, repos := newOrderTestService(t)
	now := pinClock(svc, t)
	seedCustomer(t, repos, "c1")

	require.NoError(t, repos.Store.Create(context.Background(), &entity.Store{
		StoreID:   "s1",
		Name:      "Colombo Depot",
		StationID: "st1",
	}))

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		CustomerID:     "c1",
		OrderDate:      now.Add(MinLeadTime),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
	})
	require.NoError(t, err)

	updated, err := svc.AssignWarehouse(context.Background(), order.OrderID, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInWarehouse, updated.Status)
	require.NotNil(t, updated.WarehouseID)
	assert.Equal(t, "s1", *updated.WarehouseID)

	// A delivered order keeps its status when re-assigned.
	delivered := entity.OrderStatusDelivered
	_, err = svc.Update(context.Background(), order.OrderID, &UpdateOrderRequest{Status: &delivered})
	require.NoError(t, err)

	again, err := svc.AssignWarehouse(context.Background(), order.OrderID, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, again.Status)

	_, err = svc.AssignWarehouse(context.Background(), order.OrderID, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
