package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SourcePlayer = "PLAYER"
	SourceAdmin  = "ADMIN"
	SourceSystem = "SYSTEM"
	SourceAPI    = "API"
)

type WhitelistEntry struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UUID        *string        `json:"uuid,omitempty" gorm:"index"` // filled in later by the sync job
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Source      string         `json:"source" gorm:"not null;default:'PLAYER'"` // "PLAYER", "ADMIN", "SYSTEM", "API"
	AddedByName string         `json:"added_by_name,omitempty"`
	AddedByUUID string         `json:"added_by_uuid,omitempty"`
	AddedAt     time.Time      `json:"added_at" gorm:"autoCreateTime"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
