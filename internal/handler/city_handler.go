package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type CityHandler struct {
	svc *service.CityService
}

func NewCityHandler(svc *service.CityService) *CityHandler {
	return &CityHandler{svc: svc}
}

// List GET /cities
func (h *CityHandler) List(c *gin.Context) {
	cities, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list cities: "+err.Error())
		return
	}
	Success(c, gin.H{"items": cities})
}

// Get GET /cities/:id
func (h *CityHandler) Get(c *gin.Context) {
	city, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, city)
}

// Create POST /cities
func (h *CityHandler) Create(c *gin.Context) {
	var req service.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	city, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, city)
}

// Update PUT /cities/:id
func (h *CityHandler) Update(c *gin.Context) {
	var req service.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	city, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, city)
}

// Delete DELETE /cities/:id
func (h *CityHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}

// ListStations GET /stations
func (h *CityHandler) ListStations(c *gin.Context) {
	stations, err := h.svc.ListStations(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list stations: "+err.Error())
		return
	}
	Success(c, gin.H{"items": stations})
}

// GetStation GET /stations/:id
func (h *CityHandler) GetStation(c *gin.Context) {
	station, err := h.svc.GetStation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, station)
}

// CreateStation POST /stations
func (h *CityHandler) CreateStation(c *gin.Context) {
	var req service.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	station, err := h.svc.CreateStation(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, station)
}

// UpdateStation PUT /stations/:id
func (h *CityHandler) UpdateStation(c *gin.Context) {
	var req service.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	station, err := h.svc.UpdateStation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, station)
}

// DeleteStation DELETE /stations/:id
func (h *CityHandler) DeleteStation(c *gin.Context) {
	if err := h.svc.DeleteStation(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
