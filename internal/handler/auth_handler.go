package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginUser POST /auth/login
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	result, err := h.svc.LoginUser(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, result)
}

// LoginCustomer POST /auth/customer/login
func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	result, err := h.svc.LoginCustomer(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, result)
}

// Refresh POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	result, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	Success(c, result)
}

// Logout POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		InternalError(c, "logout failed: "+err.Error())
		return
	}
	Success(c, nil)
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userName, _ := c.Get("user_name")
	Success(c, gin.H{
		"user_id":   GetUserID(c),
		"user_name": userName,
		"role":      GetRole(c),
	})
}
