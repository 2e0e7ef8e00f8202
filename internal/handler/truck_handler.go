package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type TruckHandler struct {
	svc *service.TruckService
}

func NewTruckHandler(svc *service.TruckService) *TruckHandler {
	return &TruckHandler{svc: svc}
}

// List GET /trucks
func (h *TruckHandler) List(c *gin.Context) {
	if c.Query("active") == "true" {
		trucks, err := h.svc.ListActive(c.Request.Context())
		if err != nil {
			InternalError(c, "failed to list trucks: "+err.Error())
			return
		}
		Success(c, gin.H{"items": trucks})
		return
	}
	trucks, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list trucks: "+err.Error())
		return
	}
	Success(c, gin.H{"items": trucks})
}

// Get GET /trucks/:id
func (h *TruckHandler) Get(c *gin.Context) {
	truck, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, truck)
}

// Create POST /trucks
func (h *TruckHandler) Create(c *gin.Context) {
	var req service.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	truck, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, truck)
}

// Update PUT /trucks/:id
func (h *TruckHandler) Update(c *gin.Context) {
	var req service.UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	truck, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, truck)
}

// Delete DELETE /trucks/:id
func (h *TruckHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListSchedules GET /truck-schedules
func (h *TruckHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.svc.ListSchedules(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list truck schedules: "+err.Error())
		return
	}
	Success(c, gin.H{"items": schedules})
}

// GetSchedule GET /truck-schedules/:id
func (h *TruckHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.svc.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, schedule)
}

// CreateSchedule POST /truck-schedules
func (h *TruckHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateTruckScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	schedule, err := h.svc.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, schedule)
}

// UpdateSchedule PUT /truck-schedules/:id
func (h *TruckHandler) UpdateSchedule(c *gin.Context) {
	var req service.UpdateTruckScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	schedule, err := h.svc.UpdateSchedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, schedule)
}

// DeleteSchedule DELETE /truck-schedules/:id
func (h *TruckHandler) DeleteSchedule(c *gin.Context) {
	if err := h.svc.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListDrivers GET /drivers
func (h *TruckHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.ListDrivers(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list drivers: "+err.Error())
		return
	}
	Success(c, gin.H{"items": drivers})
}

// GetDriver GET /drivers/:id
func (h *TruckHandler) GetDriver(c *gin.Context) {
	driver, err := h.svc.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, driver)
}

// CreateDriver POST /drivers
func (h *TruckHandler) CreateDriver(c *gin.Context) {
	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	driver, err := h.svc.CreateDriver(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, driver)
}

// UpdateDriver PUT /drivers/:id
func (h *TruckHandler) UpdateDriver(c *gin.Context) {
	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	driver, err := h.svc.UpdateDriver(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, driver)
}

// DeleteDriver DELETE /drivers/:id
func (h *TruckHandler) DeleteDriver(c *gin.Context) {
	if err := h.svc.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListAssistants GET /assistants
func (h *TruckHandler) ListAssistants(c *gin.Context) {
	assistants, err := h.svc.ListAssistants(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list assistants: "+err.Error())
		return
	}
	Success(c, gin.H{"items": assistants})
}

// GetAssistant GET /assistants/:id
func (h *TruckHandler) GetAssistant(c *gin.Context) {
	assistant, err := h.svc.GetAssistant(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, assistant)
}

// CreateAssistant POST /assistants
func (h *TruckHandler) CreateAssistant(c *gin.Context) {
	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	assistant, err := h.svc.CreateAssistant(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, assistant)
}

// UpdateAssistant PUT /assistants/:id
func (h *TruckHandler) UpdateAssistant(c *gin.Context) {
	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	assistant, err := h.svc.UpdateAssistant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, assistant)
}

// DeleteAssistant DELETE /assistants/:id
func (h *TruckHandler) DeleteAssistant(c *gin.Context) {
	if err := h.svc.DeleteAssistant(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
