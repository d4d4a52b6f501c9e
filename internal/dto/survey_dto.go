package dto

import (
	"time"

	"github.com/pixellake/mcgate/internal/survey"
)

// ConditionDTO mirrors the wire form of a visibility condition: DependsOn
// is the positional index of the source question in the submitted list.
type ConditionDTO struct {
	DependsOn int                  `json:"depends_on" binding:"min=0"`
	ShowWhen  survey.TriggerValues `json:"show_when"`
}

type QuestionCreateDTO struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type" binding:"required,oneof=single multiple boolean text image"`
	Options     []survey.Option    `json:"options,omitempty"`
	IsRequired  *bool              `json:"is_required,omitempty"`
	IsPinned    bool               `json:"is_pinned,omitempty"`
	Order       int                `json:"order"`
	Validation  *survey.Validation `json:"validation,omitempty"`
	Condition   *ConditionDTO      `json:"condition,omitempty"`
}

type SurveyCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	IsRandom    bool                `json:"is_random,omitempty"`
	RandomCount int                 `json:"random_count,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,dive"`
}

// SurveyUpdateDTO updates survey metadata and, when Questions is present,
// replaces the whole question list (the editor always submits the full
// draft).
type SurveyUpdateDTO struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
	IsRandom    *bool               `json:"is_random,omitempty"`
	RandomCount *int                `json:"random_count,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions,omitempty" binding:"omitempty,dive"`
}

type SurveyCreatedDTO struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type QuestionResponseDTO struct {
	ID          uint               `json:"id"`
	SurveyID    uint               `json:"survey_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type"`
	Options     []survey.Option    `json:"options,omitempty"`
	IsRequired  bool               `json:"is_required"`
	IsPinned    bool               `json:"is_pinned"`
	Order       int                `json:"order"`
	Validation  *survey.Validation `json:"validation,omitempty"`
	Condition   *ConditionDTO      `json:"condition,omitempty"`
}

type SurveySummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Code            string    `json:"code"`
	IsActive        bool      `json:"is_active"`
	IsRandom        bool      `json:"is_random"`
	RandomCount     *int      `json:"random_count,omitempty"`
	QuestionCount   int       `json:"question_count"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SurveyDetailDTO struct {
	SurveySummaryDTO
	Questions []QuestionResponseDTO `json:"questions"`
}

type SurveyPageDTO struct {
	Items []SurveySummaryDTO `json:"items"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Total int64              `json:"total"`
	Pages int                `json:"pages"`
}

// SurveyFormDTO is the public presentation of a survey: for random surveys
// the question list is the selected subset, not the full set.
type SurveyFormDTO struct {
	ID          uint                  `json:"id"`
	Code        string                `json:"code"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions"`
}
