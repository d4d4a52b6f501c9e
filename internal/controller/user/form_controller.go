package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormController struct {
	surveyService service.SurveyService
}

func NewFormController(surveyService service.SurveyService) *FormController {
	return &FormController{surveyService: surveyService}
}

// GetForm godoc
// @Summary Get a survey form
// @Description Returns the questions a respondent should answer. Random surveys get a freshly selected subset on every call; pinned questions always appear and condition references are rewritten to positions within the returned list.
// @Tags Forms
// @Produce json
// @Param code path string true "Survey code"
// @Success 200 {object} dto.SurveyFormDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found or inactive"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{code} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	code := ctx.Param("code")

	form, err := c.surveyService.BuildForm(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, service.ErrSurveyInactive) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Str("code", code).Msg("GetForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build survey form"})
		return
	}
	ctx.JSON(http.StatusOK, form)
}
