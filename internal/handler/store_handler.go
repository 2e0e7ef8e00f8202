package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type StoreHandler struct {
	svc      *service.StoreService
	orderSvc *service.OrderService
}

func NewStoreHandler(svc *service.StoreService, orderSvc *service.OrderService) *StoreHandler {
	return &StoreHandler{svc: svc, orderSvc: orderSvc}
}

// List GET /stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list stores: "+err.Error())
		return
	}
	Success(c, gin.H{"items": stores})
}

// Get GET /stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, store)
}

// Orders GET /stores/:id/orders
func (h *StoreHandler) Orders(c *gin.Context) {
	storeID := c.Param("id")
	if _, err := h.svc.Get(c.Request.Context(), storeID); err != nil {
		writeServiceError(c, err)
		return
	}
	orders, err := h.orderSvc.ListByWarehouse(c.Request.Context(), storeID)
	if err != nil {
		InternalError(c, "failed to list warehouse orders: "+err.Error())
		return
	}
	Success(c, gin.H{"items": orders})
}

// MyStore GET /stores/my
func (h *StoreHandler) MyStore(c *gin.Context) {
	store, err := h.svc.GetByManager(c.Request.Context(), GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, store)
}

// Create POST /stores
func (h *StoreHandler) Create(c *gin.Context) {
	var req service.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	store, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, store)
}

// Update PUT /stores/:id
func (h *StoreHandler) Update(c *gin.Context) {
	var req service.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	store, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, store)
}

// Delete DELETE /stores/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
