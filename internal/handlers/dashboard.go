package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sanchalak/sanchalak-api/internal/errors"
	"github.com/sanchalak/sanchalak-api/internal/middleware"
	"github.com/sanchalak/sanchalak-api/internal/services"
)

// DashboardHandler serves the computed-on-demand dashboard views.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetLeaderDashboard recomputes the leader dashboard from current store
// contents.
func (h *DashboardHandler) GetLeaderDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard, err := h.dashboardService.LeaderDashboard(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch dashboard data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}

// GetMemberDashboard recomputes the member dashboard from current store
// contents.
func (h *DashboardHandler) GetMemberDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard, err := h.dashboardService.MemberDashboard(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch dashboard data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}
