package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles admin dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Metrics handles the dashboard metrics request
func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Metrics retrieved", metrics)
}
