package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportService runs read-only aggregate queries for management dashboards.
// Date windows are computed in Go and passed as BETWEEN bounds so the SQL
// stays portable across drivers.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type QuarterlySales struct {
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type TopItem struct {
	ProductTypeID string  `json:"product_type_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type CitySales struct {
	CityID       string  `json:"city_id"`
	CityName     string  `json:"city_name"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RouteSales struct {
	RouteID      string  `json:"route_id"`
	EndCityID    string  `json:"end_city_id"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type WorkHours struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalHours int64  `json:"total_hours"`
	TripCount  int64  `json:"trip_count"`
}

type TruckUsage struct {
	TruckID    string `json:"truck_id"`
	LicenseNum string `json:"license_num"`
	TripCount  int64  `json:"trip_count"`
	TotalHours int64  `json:"total_hours"`
}

type CustomerOrders struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	OrderCount   int64   `json:"order_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// quarterBounds returns the half-open quarter window [start, end) as
// inclusive BETWEEN bounds in UTC.
func quarterBounds(year, quarter int) (time.Time, time.Time) {
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).Add(-time.Second)
	return start, end
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func (s *ReportService) QuarterlySales(ctx context.Context, year, quarter int) (*QuarterlySales, error) {
	start, end := quarterBounds(year, quarter)

	result := &QuarterlySales{Year: year, Quarter: quarter}
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS order_count, COALESCE(SUM(full_price), 0) AS total_revenue
		FROM orders
		WHERE order_date BETWEEN ? AND ? AND status <> 'FAILED'`,
		start, end).Scan(result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ReportService) TopItems(ctx context.Context, year, quarter, limit int) ([]TopItem, error) {
	start, end := quarterBounds(year, quarter)
	if limit <= 0 {
		limit = 10
	}

	var items []TopItem
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.product_type_id, p.product_name,
		       COALESCE(SUM(oi.quantity), 0) AS total_quantity,
		       COALESCE(SUM(oi.quantity * oi.item_price), 0) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.order_id = oi.order_id
		JOIN products p ON p.product_type_id = oi.product_type_id
		WHERE o.order_date BETWEEN ? AND ? AND o.status <> 'FAILED'
		GROUP BY p.product_type_id, p.product_name
		ORDER BY total_quantity DESC
		LIMIT ?`,
		start, end, limit).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ReportService) SalesByCity(ctx context.Context, year, quarter int) ([]CitySales, error) {
	start, end := quarterBounds(year, quarter)

	var rows []CitySales
	err := s.db.WithContext(ctx).Raw(`
		SELECT c.city_id, c.city_name,
		       COUNT(o.order_id) AS order_count,
		       COALESCE(SUM(o.full_price), 0) AS total_revenue
		FROM orders o
		JOIN cities c ON c.city_id = o.deliver_city_id
		WHERE o.order_date BETWEEN ? AND ? AND o.status <> 'FAILED'
		GROUP BY c.city_id, c.city_name
		ORDER BY total_revenue DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) SalesByRoute(ctx context.Context, year, quarter int) ([]RouteSales, error) {
	start, end := quarterBounds(year, quarter)

	var rows []RouteSales
	err := s.db.WithContext(ctx).Raw(`
		SELECT r.route_id, r.end_city_id,
		       COUNT(o.order_id) AS order_count,
		       COALESCE(SUM(o.full_price), 0) AS total_revenue
		FROM orders o
		JOIN routes r ON r.end_city_id = o.deliver_city_id
		WHERE o.order_date BETWEEN ? AND ? AND o.status <> 'FAILED'
		GROUP BY r.route_id, r.end_city_id
		ORDER BY total_revenue DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) DriverWorkHours(ctx context.Context, year int, month time.Month) ([]WorkHours, error) {
	start, end := monthBounds(year, month)

	var rows []WorkHours
	err := s.db.WithContext(ctx).Raw(`
		SELECT d.driver_id AS id, d.name,
		       COALESCE(SUM(ts.duration), 0) AS total_hours,
		       COUNT(ts.schedule_id) AS trip_count
		FROM drivers d
		LEFT JOIN truck_schedules ts
		  ON ts.driver_id = d.driver_id
		 AND ts.scheduled_date BETWEEN ? AND ?
		 AND ts.status <> 'CANCELLED'
		GROUP BY d.driver_id, d.name
		ORDER BY total_hours DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) AssistantWorkHours(ctx context.Context, year int, month time.Month) ([]WorkHours, error) {
	start, end := monthBounds(year, month)

	var rows []WorkHours
	err := s.db.WithContext(ctx).Raw(`
		SELECT a.assistant_id AS id, a.name,
		       COALESCE(SUM(ts.duration), 0) AS total_hours,
		       COUNT(ts.schedule_id) AS trip_count
		FROM assistants a
		LEFT JOIN truck_schedules ts
		  ON ts.assistant_id = a.assistant_id
		 AND ts.scheduled_date BETWEEN ? AND ?
		 AND ts.status <> 'CANCELLED'
		GROUP BY a.assistant_id, a.name
		ORDER BY total_hours DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) TruckUsage(ctx context.Context, year int, month time.Month) ([]TruckUsage, error) {
	start, end := monthBounds(year, month)

	var rows []TruckUsage
	err := s.db.WithContext(ctx).Raw(`
		SELECT t.truck_id, t.license_num,
		       COUNT(ts.schedule_id) AS trip_count,
		       COALESCE(SUM(ts.duration), 0) AS total_hours
		FROM trucks t
		LEFT JOIN truck_schedules ts
		  ON ts.truck_id = t.truck_id
		 AND ts.scheduled_date BETWEEN ? AND ?
		 AND ts.status <> 'CANCELLED'
		GROUP BY t.truck_id, t.license_num
		ORDER BY trip_count DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) CustomerOrderReport(ctx context.Context, year, quarter int) ([]CustomerOrders, error) {
	start, end := quarterBounds(year, quarter)

	var rows []CustomerOrders
	err := s.db.WithContext(ctx).Raw(`
		SELECT c.customer_id, c.customer_name,
		       COUNT(o.order_id) AS order_count,
		       COALESCE(SUM(o.full_price), 0) AS total_spent
		FROM customers c
		JOIN orders o ON o.customer_id = c.customer_id
		WHERE o.order_date BETWEEN ? AND ? AND o.status <> 'FAILED'
		GROUP BY c.customer_id, c.customer_name
		ORDER BY total_spent DESC`,
		start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
