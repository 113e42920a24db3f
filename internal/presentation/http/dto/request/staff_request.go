package request

// UpdateRoleRequest changes an account's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserFilterRequest represents user list filter parameters
type UserFilterRequest struct {
	Role   string `form:"role"`
	Status string `form:"status"`
	Search string `form:"search"`
}
