package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type AllocationHandler struct {
	svc *service.AllocationService
}

func NewAllocationHandler(svc *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{svc: svc}
}

// ListRail GET /rail-allocations
func (h *AllocationHandler) ListRail(c *gin.Context) {
	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		allocations, err := h.svc.ListRailBySchedule(c.Request.Context(), scheduleID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		Success(c, gin.H{"items": allocations})
		return
	}
	allocations, err := h.svc.ListRail(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list rail allocations: "+err.Error())
		return
	}
	Success(c, gin.H{"items": allocations})
}

// GetRail GET /rail-allocations/:id
func (h *AllocationHandler) GetRail(c *gin.Context) {
	allocation, err := h.svc.GetRail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, allocation)
}

// CreateRail POST /rail-allocations
func (h *AllocationHandler) CreateRail(c *gin.Context) {
	var req service.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	allocation, err := h.svc.CreateRail(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, allocation)
}

// UpdateRail PUT /rail-allocations/:id
func (h *AllocationHandler) UpdateRail(c *gin.Context) {
	var req service.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	allocation, err := h.svc.UpdateRail(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, allocation)
}

// DeleteRail DELETE /rail-allocations/:id
func (h *AllocationHandler) DeleteRail(c *gin.Context) {
	if err := h.svc.DeleteRail(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListTruck GET /truck-allocations
func (h *AllocationHandler) ListTruck(c *gin.Context) {
	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		allocations, err := h.svc.ListTruckBySchedule(c.Request.Context(), scheduleID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		Success(c, gin.H{"items": allocations})
		return
	}
	allocations, err := h.svc.ListTruck(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list truck allocations: "+err.Error())
		return
	}
	Success(c, gin.H{"items": allocations})
}

// GetTruck GET /truck-allocations/:id
func (h *AllocationHandler) GetTruck(c *gin.Context) {
	allocation, err := h.svc.GetTruck(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, allocation)
}

// CreateTruck POST /truck-allocations
func (h *AllocationHandler) CreateTruck(c *gin.Context) {
	var req service.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	allocation, err := h.svc.CreateTruck(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, allocation)
}

// UpdateTruck PUT /truck-allocations/:id
func (h *AllocationHandler) UpdateTruck(c *gin.Context) {
	var req service.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	allocation, err := h.svc.UpdateTruck(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, allocation)
}

// DeleteTruck DELETE /truck-allocations/:id
func (h *AllocationHandler) DeleteTruck(c *gin.Context) {
	if err := h.svc.DeleteTruck(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
