package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// MinLeadTime is the minimum interval between placing an order and its
// requested delivery date.
const MinLeadTime = 7 * 24 * time.Hour

// DeliveryTimeZone anchors the lead-time check to the operating region.
const DeliveryTimeZone = "Asia/Colombo"

var (
	ErrLeadTimeTooShort = errors.New("order date must be at least 7 days from today")
	ErrInvalidStatus    = errors.New("invalid order status")
)

type OrderService struct {
	orderRepo    *repository.OrderRepository
	customerRepo *repository.CustomerRepository
	storeRepo    *repository.StoreRepository

	// now is swapped in tests to pin the lead-time boundary.
	now func() time.Time
}

func NewOrderService(orderRepo *repository.OrderRepository, customerRepo *repository.CustomerRepository, storeRepo *repository.StoreRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
		now:          time.Now,
	}
}

// CreateOrderRequest places a plain order without items.
type CreateOrderRequest struct {
	CustomerID     string    `json:"customer_id" binding:"required"`
	OrderDate      time.Time `json:"order_date" binding:"required"`
	DeliverAddress string    `json:"deliver_address" binding:"required"`
	DeliverCityID  string    `json:"deliver_city_id" binding:"required"`
	FullPrice      float64   `json:"full_price"`
}

// OrderItemRequest is one line of a create-with-items order.
type OrderItemRequest struct {
	ProductTypeID string  `json:"product_type_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price"`
}

// CreateOrderWithItemsRequest places an order together with its items; the
// customer id comes from the authenticated principal.
type CreateOrderWithItemsRequest struct {
	DeliverAddress string             `json:"deliver_address" binding:"required"`
	DeliverCityID  string             `json:"deliver_city_id" binding:"required"`
	OrderDate      time.Time          `json:"order_date" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// UpdateOrderRequest is the typed patch for order mutation; nil fields are
// left untouched.
type UpdateOrderRequest struct {
	OrderDate      *time.Time `json:"order_date"`
	DeliverAddress *string    `json:"deliver_address"`
	DeliverCityID  *string    `json:"deliver_city_id"`
	Status         *string    `json:"status"`
	FullPrice      *float64   `json:"full_price"`
}

func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *OrderService) History(ctx context.Context) ([]repository.OrderHistoryRow, error) {
	return s.orderRepo.History(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID string) ([]entity.Order, error) {
	return s.orderRepo.FindByCustomer(ctx, customerID)
}

func (s *OrderService) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Order, error) {
	return s.orderRepo.FindByWarehouse(ctx, warehouseID)
}

// Create places a new order in PLACED status after the lead-time check.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	if err := s.validateLeadTime(req.OrderDate); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderID:        uuid.New().String(),
		CustomerID:     req.CustomerID,
		OrderDate:      req.OrderDate,
		DeliverAddress: req.DeliverAddress,
		DeliverCityID:  req.DeliverCityID,
		Status:         entity.OrderStatusPlaced,
		FullPrice:      req.FullPrice,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateWithItems places an order and its items in one transaction; the full
// price is the sum of quantity times unit price across items.
func (s *OrderService) CreateWithItems(ctx context.Context, customerID string, req *CreateOrderWithItemsRequest) (*entity.Order, error) {
	if err := s.validateLeadTime(req.OrderDate); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	var fullPrice float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		fullPrice += float64(item.Quantity) * item.UnitPrice
		items = append(items, entity.OrderItem{
			ItemID:        uuid.New().String(),
			OrderID:       orderID,
			ProductTypeID: item.ProductTypeID,
			Quantity:      item.Quantity,
			ItemPrice:     item.UnitPrice,
		})
	}

	order := &entity.Order{
		OrderID:        orderID,
		CustomerID:     customerID,
		OrderDate:      req.OrderDate,
		DeliverAddress: req.DeliverAddress,
		DeliverCityID:  req.DeliverCityID,
		Status:         entity.OrderStatusPlaced,
		FullPrice:      fullPrice,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// Update applies a partial patch. The lead time is re-validated only when the
// order date actually changes.
func (s *OrderService) Update(ctx context.Context, id string, req *UpdateOrderRequest) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrderDate != nil && !req.OrderDate.Equal(order.OrderDate) {
		if err := s.validateLeadTime(*req.OrderDate); err != nil {
			return nil, err
		}
		order.OrderDate = *req.OrderDate
	}
	if req.DeliverAddress != nil {
		order.DeliverAddress = *req.DeliverAddress
	}
	if req.DeliverCityID != nil {
		order.DeliverCityID = *req.DeliverCityID
	}
	if req.Status != nil {
		if !entity.ValidOrderStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		order.Status = *req.Status
	}
	if req.FullPrice != nil {
		order.FullPrice = *req.FullPrice
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AssignWarehouse links an order to a store. A PLACED order advances to
// IN_WAREHOUSE; orders further along keep their status.
func (s *OrderService) AssignWarehouse(ctx context.Context, orderID, warehouseID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.storeRepo.FindByID(ctx, warehouseID); err != nil {
		return nil, err
	}

	order.WarehouseID = &warehouseID
	if order.Status == entity.OrderStatusPlaced {
		order.Status = entity.OrderStatusInWarehouse
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) validateLeadTime(orderDate time.Time) error {
	loc, err := time.LoadLocation(DeliveryTimeZone)
	if err != nil {
		return err
	}
	now := s.now().In(loc)

	date := orderDate
	if date.Location() == time.UTC && date.Hour() == 0 && date.Minute() == 0 {
		// Date-only input: treat it as local midnight in the delivery zone.
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	}

	if date.Before(now.Add(MinLeadTime)) {
		return ErrLeadTimeTooShort
	}
	return nil
}
