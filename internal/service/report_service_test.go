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

func newReportTestService(t *testing.T) (*ReportService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewReportService(db), repository.NewRepositories(db)
}

func seedReportOrder(t *testing.T, repos *repository.Repositories, id string, date time.Time, price float64, status string) {
	t.Helper()
	require.NoError(t, repos.Order.Create(context.Background(), &entity.Order{
		OrderID:        id,
		CustomerID:     "c1",
		OrderDate:      date,
		DeliverAddress: "45 Hill St",
		DeliverCityID:  "city-1",
		Status:         status,
		FullPrice:      price,
	}))
}

func TestQuarterlySalesReport(t *testing.T) {
	svc, repos := newReportTestService(t)
	inQuarter := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	seedReportOrder(t, repos, "o1", inQuarter, 1000, entity.OrderStatusPlaced)
	seedReportOrder(t, repos, "o2", inQuarter.AddDate(0, 0, 5), 500, entity.OrderStatusDelivered)
	seedReportOrder(t, repos, "o3", inQuarter, 9999, entity.OrderStatusFailed)
	seedReportOrder(t, repos, "o4", inQuarter.AddDate(0, -4, 0), 700, entity.OrderStatusPlaced)

	report, err := svc.QuarterlySales(context.Background(), 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.OrderCount)
	assert.Equal(t, 1500.0, report.TotalRevenue)

	// The quarter the out-of-window order landed in sees only that one.
	report, err = svc.QuarterlySales(context.Background(), 2026, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.OrderCount)
	assert.Equal(t, 700.0, report.TotalRevenue)
}

func TestTopItemsReport(t *testing.T) {
	svc, repos := newReportTestService(t)
	ctx := context.Background()
	inQuarter := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Product.Create(ctx, &entity.Product{
		ProductTypeID: "p1", ProductName: "Boxed Goods", SpaceConsumptionRate: 1,
	}))
	require.NoError(t, repos.Product.Create(ctx, &entity.Product{
		ProductTypeID: "p2", ProductName: "Crated Goods", SpaceConsumptionRate: 1,
	}))

	order := &entity.Order{
		OrderID: "o1", CustomerID: "c1", OrderDate: inQuarter,
		DeliverAddress: "45 Hill St", DeliverCityID: "city-1",
		Status: entity.OrderStatusPlaced,
	}
	items := []entity.OrderItem{
		{ItemID: "i1", OrderID: "o1", ProductTypeID: "p1", Quantity: 10, ItemPrice: 100},
		{ItemID: "i2", OrderID: "o1", ProductTypeID: "p2", Quantity: 3, ItemPrice: 50},
	}
	require.NoError(t, repos.Order.CreateWithItems(ctx, order, items))

	top, err := svc.TopItems(ctx, 2026, 3, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ProductTypeID)
	assert.Equal(t, int64(10), top[0].TotalQuantity)
	assert.Equal(t, 1000.0, top[0].TotalRevenue)
}

func TestDriverWorkHoursReport(t *testing.T) {
	svc, repos := newReportTestService(t)
	ctx := context.Background()
	inMonth := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Truck.CreateDriver(ctx, &entity.Driver{DriverID: "d1", Name: "Kamal"}))
	require.NoError(t, repos.Truck.CreateSchedule(ctx, &entity.TruckSchedule{
		ScheduleID: "ts1", RouteID: "r1", TruckID: "tr1", DriverID: "d1", AssistantID: "as1",
		ScheduledDate: inMonth, Duration: 6, Status: entity.ScheduleStatusCompleted,
	}))
	require.NoError(t, repos.Truck.CreateSchedule(ctx, &entity.TruckSchedule{
		ScheduleID: "ts2", RouteID: "r1", TruckID: "tr1", DriverID: "d1", AssistantID: "as1",
		ScheduledDate: inMonth.AddDate(0, 0, 2), Duration: 4, Status: entity.ScheduleStatusCancelled,
	}))

	rows, err := svc.DriverWorkHours(ctx, 2026, time.August)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "d1", rows[0].ID)
	assert.Equal(t, int64(6), rows[0].TotalHours)
	assert.Equal(t, int64(1), rows[0].TripCount)
}
