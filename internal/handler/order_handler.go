package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type OrderHandler struct {
	svc         *service.OrderService
	capacitySvc *service.CapacityService
}

func NewOrderHandler(svc *service.OrderService, capacitySvc *service.CapacityService) *OrderHandler {
	return &OrderHandler{svc: svc, capacitySvc: capacitySvc}
}

// List GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list orders: "+err.Error())
		return
	}
	Success(c, gin.H{"items": orders})
}

// History GET /orders/history
func (h *OrderHandler) History(c *gin.Context) {
	rows, err := h.svc.History(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to load order history: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// MyOrders GET /orders/my
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.svc.ListByCustomer(c.Request.Context(), GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, gin.H{"items": orders})
}

// Get GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, order)
}

// Space GET /orders/:id/space
func (h *OrderHandler) Space(c *gin.Context) {
	orderID := c.Param("id")
	space, err := h.capacitySvc.OrderSpace(c.Request.Context(), orderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, gin.H{"order_id": orderID, "required_space": space})
}

// Create POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	// Customers always order for themselves.
	if GetRole(c) == entity.RoleCustomer {
		req.CustomerID = GetUserID(c)
	}
	order, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, order)
}

// CreateWithItems POST /orders/with-items
func (h *OrderHandler) CreateWithItems(c *gin.Context) {
	var req service.CreateOrderWithItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.CreateWithItems(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, order)
}

// Update PUT /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, order)
}

type assignWarehouseRequest struct {
	WarehouseID string `json:"warehouse_id" binding:"required"`
}

// AssignWarehouse PUT /orders/:id/warehouse
func (h *OrderHandler) AssignWarehouse(c *gin.Context) {
	var req assignWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	order, err := h.svc.AssignWarehouse(c.Request.Context(), c.Param("id"), req.WarehouseID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, order)
}

// Delete DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
