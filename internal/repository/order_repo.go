package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderHistoryRow joins an order with its customer's display name.
type OrderHistoryRow struct {
	OrderID        string    `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	OrderDate      time.Time `json:"order_date"`
	DeliverAddress string    `json:"deliver_address"`
	State          string    `json:"state"`
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByWarehouse(ctx context.Context, warehouseID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&order).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &order, nil
}

// History lists every order with the owning customer's name.
func (r *OrderRepository) History(ctx context.Context) ([]OrderHistoryRow, error) {
	var rows []OrderHistoryRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.order_id, customers.customer_name, orders.order_date, orders.deliver_address, orders.status AS state").
		Joins("JOIN customers ON customers.customer_id = orders.customer_id").
		Order("orders.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateWithItems persists the order and its items in one transaction.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&entity.Order{}).Error
}

func (r *OrderRepository) FindItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ItemSpaceRow pairs an item's quantity with its product's space rate.
type ItemSpaceRow struct {
	Quantity             int
	SpaceConsumptionRate float64
}

// ItemsWithSpaceRates joins order items to products for space computation.
func (r *OrderRepository) ItemsWithSpaceRates(ctx context.Context, orderID string) ([]ItemSpaceRow, error) {
	var rows []ItemSpaceRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.quantity, products.space_consumption_rate").
		Joins("JOIN products ON products.product_type_id = order_items.product_type_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error
	return rows, err
}
