package handler

import (
	invoicingapp "github.com/facturo/backend/internal/application/invoicing"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard aggregation endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *invoicingapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *invoicingapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.Summary)
		dashboard.GET("/monthly-revenue", h.MonthlyRevenue)
	}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	resp, err := h.dashboardService.Summary(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MonthlyRevenue handles GET /dashboard/monthly-revenue
func (h *DashboardHandler) MonthlyRevenue(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	resp, err := h.dashboardService.MonthlyRevenue(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
