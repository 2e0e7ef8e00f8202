package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Signup POST /customers/signup
func (h *CustomerHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	customer, login, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Created(c, gin.H{"customer": customer, "auth": login})
}

// List GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list customers: "+err.Error())
		return
	}
	Success(c, gin.H{"items": customers})
}

// canAccessCustomer reports whether the principal may read or modify the
// given customer record. Customers reach only their own record; every other
// caller needs Management.
func canAccessCustomer(c *gin.Context, customerID string) bool {
	switch GetRole(c) {
	case entity.RoleCustomer:
		return GetUserID(c) == customerID
	case entity.RoleManagement, entity.RoleSystemAdmin:
		return true
	default:
		return false
	}
}

// Get GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !canAccessCustomer(c, id) {
		Forbidden(c, "access denied")
		return
	}
	customer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, customer)
}

// Update PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !canAccessCustomer(c, id) {
		Forbidden(c, "access denied")
		return
	}
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	customer, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, customer)
}

// Delete DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, nil)
}
