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

func newAllocationTestService(t *testing.T) (*AllocationService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	capacity := NewCapacityService(repos.Order, repos.Train, repos.Allocation)
	svc := NewAllocationService(repos.Allocation, repos.Order, repos.Train, repos.Truck, capacity)
	return svc, repos
}

func TestCreateRailAllocation(t *testing.T) {
	svc, repos := newAllocationTestService(t)
	ctx := context.Background()

	seedOrderWithItems(t, repos, "o1", 10, 2.5)
	seedSchedule(t, repos, "sch1", 100, time.Now().Add(5*24*time.Hour))

	allocation, err := svc.CreateRail(ctx, CreateAllocationRequest{
		OrderID:      "o1",
		ScheduleID:   "sch1",
		ShipmentDate: time.Now().Add(5 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, allocation.AllocationID)
	assert.Equal(t, 25.0, allocation.AllocatedSpace)
	assert.Equal(t, entity.ScheduleStatusPlanned, allocation.Status)

	order, err := repos.Order.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduledRail, order.Status)
}

func TestCreateRailAllocationInsufficientCapacity(t *testing.T) {
	svc, repos := newAllocationTestService(t)
	ctx := context.Background()

	seedOrderWithItems(t, repos, "o1", 10, 2.5)
	seedSchedule(t, repos, "sch1", 30, time.Now().Add(5*24*time.Hour))
	seedAllocation(t, repos, "a1", "sch1", 10, entity.ScheduleStatusPlanned)

	_, err := svc.CreateRail(ctx, CreateAllocationRequest{
		OrderID:      "o1",
		ScheduleID:   "sch1",
		ShipmentDate: time.Now().Add(5 * 24 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	// The order keeps its original status when the reservation fails.
	order, err := repos.Order.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
}

func TestCreateRailAllocationUnknownSchedule(t *testing.T) {
	svc, repos := newAllocationTestService(t)

	seedOrderWithItems(t, repos, "o1", 10, 2.5)

	_, err := svc.CreateRail(context.Background(), CreateAllocationRequest{
		OrderID:      "o1",
		ScheduleID:   "missing",
		ShipmentDate: time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateTruckAllocation(t *testing.T) {
	svc, repos := newAllocationTestService(t)
	ctx := context.Background()

	seedOrderWithItems(t, repos, "o1", 10, 2.5)
	require.NoError(t, repos.Truck.Create(ctx, &entity.Truck{
		TruckID:    "tr1",
		LicenseNum: "WP-1234",
		Capacity:   40,
		IsActive:   true,
	}))
	require.NoError(t, repos.Truck.CreateSchedule(ctx, &entity.TruckSchedule{
		ScheduleID:    "ts1",
		RouteID:       "r1",
		TruckID:       "tr1",
		DriverID:      "d1",
		AssistantID:   "as1",
		ScheduledDate: time.Now().Add(5 * 24 * time.Hour),
		Status:        entity.ScheduleStatusPlanned,
	}))

	allocation, err := svc.CreateTruck(ctx, CreateAllocationRequest{
		OrderID:      "o1",
		ScheduleID:   "ts1",
		ShipmentDate: time.Now().Add(5 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, allocation.AllocatedSpace)

	order, err := repos.Order.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduledRoad, order.Status)

	// A second order of the same size no longer fits in the remaining 15.
	seedOrderWithItems(t, repos, "o2", 10, 2.5)
	_, err = svc.CreateTruck(ctx, CreateAllocationRequest{
		OrderID:      "o2",
		ScheduleID:   "ts1",
		ShipmentDate: time.Now().Add(5 * 24 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestUpdateRailAllocationStatus(t *testing.T) {
	svc, repos := newAllocationTestService(t)
	ctx := context.Background()

	seedSchedule(t, repos, "sch1", 100, time.Now().Add(5*24*time.Hour))
	seedAllocation(t, repos, "a1", "sch1", 20, entity.ScheduleStatusPlanned)

	bad := "SHIPPED"
	_, err := svc.UpdateRail(ctx, "a1", UpdateAllocationRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	done := entity.ScheduleStatusCompleted
	allocation, err := svc.UpdateRail(ctx, "a1", UpdateAllocationRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusCompleted, allocation.Status)
}

func TestDeleteRailAllocation(t *testing.T) {
	svc, repos := newAllocationTestService(t)
	ctx := context.Background()

	seedSchedule(t, repos, "sch1", 100, time.Now().Add(5*24*time.Hour))
	seedAllocation(t, repos, "a1", "sch1", 20, entity.ScheduleStatusPlanned)

	require.NoError(t, svc.DeleteRail(ctx, "a1"))
	assert.ErrorIs(t, svc.DeleteRail(ctx, "a1"), repository.ErrNotFound)
}
