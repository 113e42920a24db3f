package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/domain/enum"
	"github.com/samlamare/cafechill-api/internal/domain/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// StaffHandler handles the admin staff-approval HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles listing user accounts
func (h *StaffHandler) List(c *gin.Context) {
	var req request.UserFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.UserFilterParams{Search: req.Search}
	if req.Role != "" {
		role := enum.UserRole(req.Role)
		if !role.IsValid() {
			response.BadRequest(c, "Invalid role")
			return
		}
		params.Role = &role
	}
	if req.Status != "" {
		status := enum.UserStatus(req.Status)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status")
			return
		}
		params.Status = &status
	}

	users, err := h.staffService.ListUsers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved", users)
}

// Approve handles approving a pending staff account
func (h *StaffHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.staffService.ApproveStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff approved", user)
}

// Reject handles rejecting a staff account
func (h *StaffHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.staffService.RejectStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff rejected", user)
}

// UpdateRole handles changing an account's role
func (h *StaffHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.staffService.UpdateRole(c.Request.Context(), id, &service.UpdateRoleInput{
		Role: enum.UserRole(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Role updated", user)
}

// Delete handles removing an account
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.staffService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted", nil)
}
