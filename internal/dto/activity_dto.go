package dto

import "time"

type ActivityDTO struct {
	ID           uint      `json:"id"`
	Action       string    `json:"action"`
	PlayerName   string    `json:"player_name,omitempty"`
	Operator     string    `json:"operator,omitempty"`
	SubmissionID *uint     `json:"submission_id,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ActivityFilterDTO struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Action string `form:"action" binding:"omitempty,oneof=submit approved rejected whitelist_add whitelist_remove cache_sync"`
}

type ActivityPageDTO struct {
	Items []ActivityDTO `json:"items"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Total int64         `json:"total"`
	Pages int           `json:"pages"`
}
