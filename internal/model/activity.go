package model

import "time"

const (
	ActivitySubmitted       = "submit"
	ActivityApproved        = "approved"
	ActivityRejected        = "rejected"
	ActivityWhitelistAdd    = "whitelist_add"
	ActivityWhitelistRemove = "whitelist_remove"
	ActivityCacheSync       = "cache_sync"
)

// Activity is one audit-trail record. Review outcomes and whitelist
// mutations are written here as they happen; the log is append-only.
type Activity struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Action       string    `json:"action" gorm:"not null;index"`
	PlayerName   string    `json:"player_name,omitempty" gorm:"index"`
	Operator     string    `json:"operator,omitempty"`
	SubmissionID *uint     `json:"submission_id,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}
