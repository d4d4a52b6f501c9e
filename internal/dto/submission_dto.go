package dto

import "time"

type SubmissionListItemDTO struct {
	ID          uint       `json:"id"`
	SurveyID    uint       `json:"survey_id"`
	SurveyTitle string     `json:"survey_title"`
	PlayerName  string     `json:"player_name"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

type SubmissionAnswerDTO struct {
	ID            uint   `json:"id"`
	QuestionID    uint   `json:"question_id"`
	QuestionTitle string `json:"question_title"`
	QuestionType  string `json:"question_type"`
	Content       string `json:"content"`
}

type SubmissionDetailDTO struct {
	ID            uint                  `json:"id"`
	SurveyID      uint                  `json:"survey_id"`
	SurveyTitle   string                `json:"survey_title"`
	PlayerName    string                `json:"player_name"`
	IPAddress     string                `json:"ip_address,omitempty"`
	FillDuration  *int                  `json:"fill_duration,omitempty"`
	FirstViewedAt *time.Time            `json:"first_viewed_at,omitempty"`
	Status        string                `json:"status"`
	ReviewNote    string                `json:"review_note,omitempty"`
	ReviewedBy    string                `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time            `json:"reviewed_at,omitempty"`
	Answers       []SubmissionAnswerDTO `json:"answers"`
	CreatedAt     time.Time             `json:"created_at"`
}

type SubmissionPageDTO struct {
	Items []SubmissionListItemDTO `json:"items"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
	Total int64                   `json:"total"`
	Pages int                     `json:"pages"`
}

type SubmissionFilterDTO struct {
	Page       int    `form:"page"`
	Size       int    `form:"size"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	SurveyID   uint   `form:"survey_id"`
	PlayerName string `form:"player_name"`
}

type ReviewSubmissionDTO struct {
	Status     string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewNote string `json:"review_note,omitempty"`
}

type SubmissionStatsDTO struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}
