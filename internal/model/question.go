package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	SurveyID    uint              `json:"survey_id" gorm:"not null;index"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type" gorm:"not null"` // "single", "multiple", "boolean", "text", "image"
	Options     OptionList        `json:"options,omitempty" gorm:"type:jsonb"`
	Validation  *ValidationColumn `json:"validation,omitempty" gorm:"type:jsonb"`
	Condition   *ConditionColumn  `json:"condition,omitempty" gorm:"type:jsonb"`
	IsRequired  bool              `json:"is_required" gorm:"default:true"`
	IsPinned    bool              `json:"is_pinned" gorm:"default:false"`
	Order       int               `json:"order" gorm:"column:display_order;not null"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}
