package entity

import "time"

// Order statuses, persisted as canonical strings.
const (
	OrderStatusPlaced        = "PLACED"
	OrderStatusInWarehouse   = "IN_WAREHOUSE"
	OrderStatusScheduledRail = "SCHEDULED_RAIL"
	OrderStatusScheduledRoad = "SCHEDULED_ROAD"
	OrderStatusDelivered     = "DELIVERED"
	OrderStatusFailed        = "FAILED"
)

// ValidOrderStatus reports whether s is one of the persisted order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusInWarehouse, OrderStatusScheduledRail,
		OrderStatusScheduledRoad, OrderStatusDelivered, OrderStatusFailed:
		return true
	}
	return false
}

type Order struct {
	OrderID        string    `json:"order_id" gorm:"primaryKey;size:36"`
	CustomerID     string    `json:"customer_id" gorm:"size:36;not null;index"`
	OrderDate      time.Time `json:"order_date" gorm:"not null"`
	DeliverAddress string    `json:"deliver_address" gorm:"size:500;not null"`
	DeliverCityID  string    `json:"deliver_city_id" gorm:"size:36;not null"`
	Status         string    `json:"status" gorm:"size:20;not null;default:PLACED"`
	WarehouseID    *string   `json:"warehouse_id" gorm:"size:36;index"`
	FullPrice      float64   `json:"full_price" gorm:"type:decimal(12,2)"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ItemID        string  `json:"item_id" gorm:"primaryKey;size:36"`
	OrderID       string  `json:"order_id" gorm:"size:36;not null;index"`
	StoreID       string  `json:"store_id" gorm:"size:36"`
	ProductTypeID string  `json:"product_type_id" gorm:"size:36;not null;index"`
	Quantity      int     `json:"quantity" gorm:"not null"`
	ItemPrice     float64 `json:"item_price" gorm:"type:decimal(12,2)"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
