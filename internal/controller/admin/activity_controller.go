package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/rs/zerolog/log"
)

type ActivityController struct {
	activityService service.ActivityService
}

func NewActivityController(activityService service.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// ListActivities godoc
// @Summary (Admin) List activity log
// @Description Returns a page of audit records, newest first: review outcomes with operator and note, whitelist additions and removals, cache syncs. Filterable by action.
// @Tags Admin - Activities
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 20, max 100)"
// @Param action query string false "Filter by action" Enums(submit, approved, rejected, whitelist_add, whitelist_remove, cache_sync)
// @Success 200 {object} dto.ActivityPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	var filter dto.ActivityFilterDTO
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid filter", Details: []string{err.Error()}})
		return
	}

	page, err := c.activityService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListActivities: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list activities"})
		return
	}
	ctx.JSON(http.StatusOK, page)
}
