package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/pixellake/mcgate/internal/survey"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SurveyController struct {
	surveyService service.SurveyService
}

func NewSurveyController(surveyService service.SurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// CreateSurvey godoc
// @Summary (Admin) Create a survey
// @Description Creates a survey with its full question list. The draft is validated as a whole: question titles, option counts, condition references and random-selection settings must all be consistent.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyCreateDTO true "Survey with questions"
// @Success 201 {object} dto.SurveyCreatedDTO "Survey created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ValidationErrorResponse "Draft failed publish validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.surveyService.Create(req)
	if err != nil {
		if writeDraftError(ctx, err) {
			return
		}
		log.Error().Err(err).Msg("Admin CreateSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateSurvey godoc
// @Summary (Admin) Update a survey
// @Description Updates survey metadata and optionally replaces the full question list. The merged result is re-validated before anything is written.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateDTO true "Fields to update"
// @Success 200 {object} dto.MessageResponse "Survey updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 422 {object} dto.ValidationErrorResponse "Draft failed publish validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys/{id} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.surveyService.Update(id, req); err != nil {
		if writeDraftError(ctx, err) {
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Uint("survey_id", id).Msg("Admin UpdateSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey updated"})
}

// GetSurvey godoc
// @Summary (Admin) Get a survey
// @Description Returns a survey with its questions in display order.
// @Tags Admin - Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	detail, err := c.surveyService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Uint("survey_id", id).Msg("Admin GetSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load survey"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ListSurveys godoc
// @Summary (Admin) List surveys
// @Description Returns a page of surveys with question and submission counts. Supports title search.
// @Tags Admin - Surveys
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 20, max 100)"
// @Param search query string false "Title search"
// @Success 200 {object} dto.SurveyPageDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	search := ctx.Query("search")

	pageResp, err := c.surveyService.List(page, size, search)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListSurveys: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list surveys"})
		return
	}
	ctx.JSON(http.StatusOK, pageResp)
}

// DeleteSurvey godoc
// @Summary (Admin) Delete a survey
// @Description Soft-deletes a survey. Existing submissions keep their denormalized question copies.
// @Tags Admin - Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.MessageResponse "Survey deleted"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.surveyService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Uint("survey_id", id).Msg("Admin DeleteSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete survey"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey deleted"})
}

// writeDraftError renders draft validation failures with the violation
// list so the editor can highlight the offending fields.
func writeDraftError(ctx *gin.Context, err error) bool {
	var validationErr *survey.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message:    "Survey failed validation",
			Violations: validationErr.Violations,
		})
		return true
	}
	return false
}

func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ID in path", Details: []string{err.Error()}})
		return 0, false
	}
	return uint(id), true
}
