package handlers

import (
	"net/http"

	"washex/models"
	"washex/services/staff"
	"washex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes staff CRUD and authentication.
type StaffHandler struct {
	Service staff.StaffService
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// LoginHandler handles POST /api/staff/login.
func (h *StaffHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	member, token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Staff login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": member, "token": token})
}

// RevokeTokenHandler handles DELETE /api/staff/revoke. It invalidates
// the caller's own session.
func (h *StaffHandler) RevokeTokenHandler(c *gin.Context) {
	staffID, _ := c.Get("staffID")
	id, _ := staffID.(string)
	if err := h.Service.RevokeToken(c.Request.Context(), id); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}

func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var req struct {
		models.Staff
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid staff payload", err.Error())
		return
	}
	created, err := h.Service.CreateStaff(c.Request.Context(), req.Staff, req.Password)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	member, err := h.Service.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	members, err := h.Service.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// ListAgentsHandler handles GET /api/staff/agents, used by dispatch to
// populate agent pickers.
func (h *StaffHandler) ListAgentsHandler(c *gin.Context) {
	agents, err := h.Service.ListAgents(c.Request.Context())
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}
	member, err := h.Service.UpdateStaff(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Service.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
