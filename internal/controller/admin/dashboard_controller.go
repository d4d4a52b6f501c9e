package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// DashboardStats godoc
// @Summary (Admin) Dashboard counters
// @Description Returns the headline counters for the dashboard landing page: submission counts by status, whitelist size and survey counts.
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard/stats [get]
func (c *DashboardController) DashboardStats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats()
	if err != nil {
		log.Error().Err(err).Msg("Admin DashboardStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load dashboard stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
