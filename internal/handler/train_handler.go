package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type TrainHandler struct {
	svc         *service.TrainService
	capacitySvc *service.CapacityService
}

func NewTrainHandler(svc *service.TrainService, capacitySvc *service.CapacityService) *TrainHandler {
	return &TrainHandler{svc: svc, capacitySvc: capacitySvc}
}

// List GET /trains
func (h *TrainHandler) List(c *gin.Context) {
	trains, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list trains: "+err.Error())
		return
	}
	Success(c, gin.H{"items": trains})
}

// Get GET /trains/:id
func (h *TrainHandler) Get(c *gin.Context) {
	train, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, train)
}

// Create POST /trains
func (h *TrainHandler) Create(c *gin.Context) {
	var req service.CreateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	train, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, train)
}

// Update PUT /trains/:id
func (h *TrainHandler) Update(c *gin.Context) {
	var req service.UpdateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	train, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, train)
}

// Delete DELETE /trains/:id
func (h *TrainHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListSchedules GET /train-schedules
func (h *TrainHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.svc.ListSchedules(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list train schedules: "+err.Error())
		return
	}
	Success(c, gin.H{"items": schedules})
}

// GetSchedule GET /train-schedules/:id
func (h *TrainHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.svc.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, schedule)
}

// CreateSchedule POST /train-schedules
func (h *TrainHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateTrainScheduleRequest
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

// UpdateSchedule PUT /train-schedules/:id
func (h *TrainHandler) UpdateSchedule(c *gin.Context) {
	var req service.UpdateTrainScheduleRequest
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

// DeleteSchedule DELETE /train-schedules/:id
func (h *TrainHandler) DeleteSchedule(c *gin.Context) {
	if err := h.svc.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ScheduleCapacity GET /train-schedules/:id/capacity
func (h *TrainHandler) ScheduleCapacity(c *gin.Context) {
	info, err := h.capacitySvc.Info(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, info)
}

// CheckCapacity GET /train-schedules/:id/capacity/check?required_space=25.5
func (h *TrainHandler) CheckCapacity(c *gin.Context) {
	required, err := strconv.ParseFloat(c.Query("required_space"), 64)
	if err != nil || required <= 0 {
		BadRequest(c, "required_space must be a positive number")
		return
	}
	check, err := h.capacitySvc.Check(c.Request.Context(), c.Param("id"), required)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, check)
}

// NextAvailable GET /train-schedules/next-available
// Query: train_id, source_station_id, destination_station_id,
// required_space, after (RFC 3339 date, optional).
func (h *TrainHandler) NextAvailable(c *gin.Context) {
	trainID := c.Query("train_id")
	sourceID := c.Query("source_station_id")
	destID := c.Query("destination_station_id")
	if trainID == "" || sourceID == "" || destID == "" {
		BadRequest(c, "train_id, source_station_id and destination_station_id are required")
		return
	}

	required, err := strconv.ParseFloat(c.Query("required_space"), 64)
	if err != nil || required <= 0 {
		BadRequest(c, "required_space must be a positive number")
		return
	}

	var after *time.Time
	if raw := c.Query("after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			t, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			BadRequest(c, "after must be an RFC 3339 timestamp or a date")
			return
		}
		after = &t
	}

	schedule, err := h.capacitySvc.NextAvailableSchedule(c.Request.Context(), trainID, sourceID, destID, required, after)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if schedule == nil {
		NotFound(c, "no schedule with enough capacity")
		return
	}
	Success(c, schedule)
}
