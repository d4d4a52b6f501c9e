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

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// ListSubmissions godoc
// @Summary (Admin) List submissions
// @Description Returns a page of submissions, filterable by status, survey and player name.
// @Tags Admin - Submissions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 20, max 100)"
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param survey_id query int false "Filter by survey"
// @Param player_name query string false "Filter by player name"
// @Success 200 {object} dto.SubmissionPageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	var filter dto.SubmissionFilterDTO
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid filter", Details: []string{err.Error()}})
		return
	}

	page, err := c.submissionService.List(filter)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListSubmissions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list submissions"})
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetSubmission godoc
// @Summary (Admin) Get a submission
// @Description Returns a submission with its decoded answers. Answers are rendered against the question copy captured at submission time.
// @Tags Admin - Submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	detail, err := c.submissionService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Submission not found"})
			return
		}
		log.Error().Err(err).Uint("submission_id", id).Msg("Admin GetSubmission: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load submission"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ReviewSubmission godoc
// @Summary (Admin) Review a submission
// @Description Approves or rejects a pending submission. Approval promotes the player into the whitelist; if the player is already whitelisted the approval still succeeds. If the whitelist write fails for another reason the approval stands and a 502 reports the partial state.
// @Tags Admin - Submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param review body dto.ReviewSubmissionDTO true "Review outcome"
// @Success 200 {object} dto.MessageResponse "Review recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Submission already reviewed"
// @Failure 502 {object} dto.ErrorResponse "Approved but whitelist promotion failed"
// @Router /admin/submissions/{id}/review [post]
func (c *SubmissionController) ReviewSubmission(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.ReviewSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin ReviewSubmission: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	reviewer := ctx.GetHeader("X-Admin-Name")
	if reviewer == "" {
		reviewer = "admin"
	}

	err := c.submissionService.Review(ctx.Request.Context(), id, req, reviewer)
	if err != nil {
		var partial *service.PartialApprovalError
		switch {
		case errors.As(err, &partial):
			ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
				Message: "Submission approved but whitelist promotion failed",
				Details: []string{partial.Error()},
			})
		case errors.Is(err, service.ErrAlreadyReviewed):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Submission has already been reviewed"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Submission not found"})
		default:
			log.Error().Err(err).Uint("submission_id", id).Msg("Admin ReviewSubmission: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to review submission"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Review recorded"})
}

// SubmissionStats godoc
// @Summary (Admin) Submission counters
// @Description Returns submission counts by status.
// @Tags Admin - Submissions
// @Produce json
// @Success 200 {object} dto.SubmissionStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions/stats [get]
func (c *SubmissionController) SubmissionStats(ctx *gin.Context) {
	stats, err := c.submissionService.Stats()
	if err != nil {
		log.Error().Err(err).Msg("Admin SubmissionStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load submission stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
