package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type WhitelistController struct {
	whitelistService service.WhitelistService
}

func NewWhitelistController(whitelistService service.WhitelistService) *WhitelistController {
	return &WhitelistController{whitelistService: whitelistService}
}

// ListWhitelist godoc
// @Summary (Admin) List whitelist entries
// @Description Returns a page of whitelist entries, filterable by name search and source.
// @Tags Admin - Whitelist
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 20, max 100)"
// @Param search query string false "Name search"
// @Param source query string false "Filter by source" Enums(PLAYER, ADMIN, SYSTEM, API)
// @Success 200 {object} dto.WhitelistPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/whitelist [get]
func (c *WhitelistController) ListWhitelist(ctx *gin.Context) {
	var filter dto.WhitelistFilterDTO
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid filter", Details: []string{err.Error()}})
		return
	}

	page, err := c.whitelistService.List(ctx.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListWhitelist: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list whitelist entries"})
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// AddWhitelistEntry godoc
// @Summary (Admin) Add a whitelist entry
// @Description Adds a player to the whitelist. The Minecraft UUID is resolved later; until then the entry is UUID-pending.
// @Tags Admin - Whitelist
// @Accept json
// @Produce json
// @Param entry body dto.AddWhitelistDTO true "Player to whitelist"
// @Success 201 {object} dto.WhitelistEntryDTO "Entry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Player already whitelisted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/whitelist [post]
func (c *WhitelistController) AddWhitelistEntry(ctx *gin.Context) {
	var req dto.AddWhitelistDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AddWhitelistEntry: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	entry, err := c.whitelistService.Add(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEntry) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Player already whitelisted"})
			return
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Admin AddWhitelistEntry: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to add whitelist entry"})
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// RemoveWhitelistEntry godoc
// @Summary (Admin) Remove a whitelist entry
// @Description Removes a whitelist entry by ID and evicts the name from the cache.
// @Tags Admin - Whitelist
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.MessageResponse "Entry removed"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/whitelist/{id} [delete]
func (c *WhitelistController) RemoveWhitelistEntry(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.whitelistService.Remove(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Whitelist entry not found"})
			return
		}
		log.Error().Err(err).Uint("entry_id", id).Msg("Admin RemoveWhitelistEntry: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to remove whitelist entry"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Whitelist entry removed"})
}

// BatchWhitelist godoc
// @Summary (Admin) Batch whitelist operation
// @Description Adds or removes a list of players in one call. Each player is processed independently; the result reports per-player success.
// @Tags Admin - Whitelist
// @Accept json
// @Produce json
// @Param batch body dto.BatchOperationDTO true "Batch operation"
// @Success 200 {object} dto.BatchOperationResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/whitelist/batch [post]
func (c *WhitelistController) BatchWhitelist(ctx *gin.Context) {
	var req dto.BatchOperationDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin BatchWhitelist: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.whitelistService.Batch(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Admin BatchWhitelist: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to run batch operation"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// WhitelistStats godoc
// @Summary (Admin) Whitelist counters
// @Description Returns whitelist counts, a per-source breakdown and the cache status.
// @Tags Admin - Whitelist
// @Produce json
// @Success 200 {object} dto.WhitelistStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/whitelist/stats [get]
func (c *WhitelistController) WhitelistStats(ctx *gin.Context) {
	stats, err := c.whitelistService.Stats(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Admin WhitelistStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load whitelist stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
