package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

type Submission struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	SurveyID      uint               `json:"survey_id" gorm:"not null;index"`
	Survey        Survey             `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	PlayerName    string             `json:"player_name" gorm:"not null;index"`
	IPAddress     string             `json:"ip_address,omitempty"`
	FillDuration  *int               `json:"fill_duration,omitempty"` // seconds
	FirstViewedAt *time.Time         `json:"first_viewed_at,omitempty"`
	Status        string             `json:"status" gorm:"default:'pending';index"` // "pending", "approved", "rejected"
	ReviewNote    string             `json:"review_note,omitempty"`
	ReviewedBy    string             `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time         `json:"reviewed_at,omitempty"`
	Answers       []SubmissionAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

type SubmissionAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SubmissionID  uint           `json:"submission_id" gorm:"not null;index"`
	QuestionID    uint           `json:"question_id" gorm:"not null"`
	QuestionTitle string         `json:"question_title"`
	QuestionType  string         `json:"question_type"`
	QuestionOrder int            `json:"question_order" gorm:"column:question_order;not null;default:0"`
	Content       string         `json:"content" gorm:"type:text"` // raw JSON, decoded per question type
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
