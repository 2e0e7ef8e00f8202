package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type RouteHandler struct {
	svc *service.RouteService
}

func NewRouteHandler(svc *service.RouteService) *RouteHandler {
	return &RouteHandler{svc: svc}
}

// List GET /routes
func (h *RouteHandler) List(c *gin.Context) {
	routes, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list routes: "+err.Error())
		return
	}
	Success(c, gin.H{"items": routes})
}

// Get GET /routes/:id
func (h *RouteHandler) Get(c *gin.Context) {
	route, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, route)
}

// Create POST /routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req service.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	route, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, route)
}

// Update PUT /routes/:id
func (h *RouteHandler) Update(c *gin.Context) {
	var req service.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	route, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, route)
}

// Delete DELETE /routes/:id
func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
