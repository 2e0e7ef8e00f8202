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

func newCapacityTestService(t *testing.T) (*CapacityService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewCapacityService(repos.Order, repos.Train, repos.Allocation)
	return svc, repos
}

func seedOrderWithItems(t *testing.T, repos *repository.Repositories, orderID string, qty int, rate float64) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repos.Product.Create(ctx, &entity.Product{
		ProductTypeID:        "prod-" + orderID,
		ProductName:          "Boxed Goods",
		SpaceConsumptionRate: rate,
	}))
	order := &entity.Order{
		OrderID:        orderID,
		CustomerID:     "c1",
		OrderDate:      time.Now().Add(10 * 24 * time.Hour),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
		Status:         entity.OrderStatusPlaced,
	}
	items := []entity.OrderItem{{
		ItemID:        "item-" + orderID,
		OrderID:       orderID,
		ProductTypeID: "prod-" + orderID,
		Quantity:      qty,
		ItemPrice:     100,
	}}
	require.NoError(t, repos.Order.CreateWithItems(ctx, order, items))
}

func seedSchedule(t *testing.T, repos *repository.Repositories, id string, capacity float64, date time.Time) {
	t.Helper()
	require.NoError(t, repos.Train.CreateSchedule(context.Background(), &entity.TrainSchedule{
		ScheduleID:           id,
		TrainID:              "t1",
		SourceStationID:      "src",
		DestinationStationID: "dst",
		ScheduledDate:        date,
		CargoCapacity:        capacity,
		Status:               entity.ScheduleStatusPlanned,
	}))
}

func seedAllocation(t *testing.T, repos *repository.Repositories, id, scheduleID string, space float64, status string) {
	t.Helper()
	require.NoError(t, repos.Allocation.CreateRail(context.Background(), &entity.RailAllocation{
		AllocationID:   id,
		OrderID:        "o-" + id,
		ScheduleID:     scheduleID,
		ShipmentDate:   time.Now(),
		AllocatedSpace: space,
		Status:         status,
	}))
}

func TestOrderSpace(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	seedOrderWithItems(t, repos, "o1", 10, 2.5)

	space, err := svc.OrderSpace(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, space)
}

func TestOrderSpaceNoItems(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	require.NoError(t, repos.Order.Create(context.Background(), &entity.Order{
		OrderID:        "empty",
		CustomerID:     "c1",
		OrderDate:      time.Now().Add(10 * 24 * time.Hour),
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
		Status:         entity.OrderStatusPlaced,
	}))

	_, err := svc.OrderSpace(context.Background(), "empty")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAvailableSpaceCountsActiveAllocationsOnly(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	date := time.Now().Add(5 * 24 * time.Hour)
	seedSchedule(t, repos, "sch1", 100, date)

	seedAllocation(t, repos, "a1", "sch1", 30, entity.ScheduleStatusPlanned)
	seedAllocation(t, repos, "a2", "sch1", 40, entity.ScheduleStatusInProgress)
	seedAllocation(t, repos, "a3", "sch1", 50, entity.ScheduleStatusCancelled)

	available, err := svc.AvailableSpace(context.Background(), "sch1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, available)
}

func TestAvailableSpaceNeverNegative(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	date := time.Now().Add(5 * 24 * time.Hour)
	seedSchedule(t, repos, "sch1", 50, date)
	seedAllocation(t, repos, "a1", "sch1", 80, entity.ScheduleStatusPlanned)

	available, err := svc.AvailableSpace(context.Background(), "sch1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, available)
}

func TestCheckCapacity(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	date := time.Now().Add(5 * 24 * time.Hour)
	seedSchedule(t, repos, "sch1", 100, date)
	seedAllocation(t, repos, "a1", "sch1", 70, entity.ScheduleStatusPlanned)

	check, err := svc.Check(context.Background(), "sch1", 25)
	require.NoError(t, err)
	assert.True(t, check.IsAvailable)
	assert.Equal(t, 30.0, check.AvailableSpace)

	check, err = svc.Check(context.Background(), "sch1", 35)
	require.NoError(t, err)
	assert.False(t, check.IsAvailable)

	_, err = svc.Check(context.Background(), "missing", 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCapacityInfoUtilization(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	date := time.Now().Add(5 * 24 * time.Hour)
	seedSchedule(t, repos, "sch1", 200, date)
	seedAllocation(t, repos, "a1", "sch1", 50, entity.ScheduleStatusPlanned)

	info, err := svc.Info(context.Background(), "sch1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, info.UtilizationPercentage)
	assert.Equal(t, 150.0, info.AvailableSpace)
	assert.False(t, info.IsFull)
}

func TestNextAvailableScheduleFirstFit(t *testing.T) {
	svc, repos := newCapacityTestService(t)
	base := time.Now().Add(3 * 24 * time.Hour).Truncate(24 * time.Hour)

	seedSchedule(t, repos, "sch1", 100, base)
	seedSchedule(t, repos, "sch2", 100, base.Add(24*time.Hour))
	seedSchedule(t, repos, "sch3", 100, base.Add(48*time.Hour))

	// First schedule is full, second has room.
	seedAllocation(t, repos, "a1", "sch1", 100, entity.ScheduleStatusPlanned)

	found, err := svc.NextAvailableSchedule(context.Background(), "t1", "src", "dst", 25, nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "sch2", found.ScheduleID)

	// Searching strictly after the second date lands on the third.
	after := base.Add(24 * time.Hour)
	found, err = svc.NextAvailableSchedule(context.Background(), "t1", "src", "dst", 25, &after)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "sch3", found.ScheduleID)

	// Nothing fits when the demand exceeds every schedule.
	found, err = svc.NextAvailableSchedule(context.Background(), "t1", "src", "dst", 500, nil)
	require.NoError(t, err)
	assert.Nil(t, found)
}
