package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Code        string         `json:"code" gorm:"not null;uniqueIndex"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	IsRandom    bool           `json:"is_random" gorm:"default:false"`
	RandomCount *int           `json:"random_count,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
