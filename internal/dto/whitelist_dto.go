package dto

import "time"

type WhitelistEntryDTO struct {
	ID          uint      `json:"id"`
	UUID        *string   `json:"uuid"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	AddedByName string    `json:"added_by_name,omitempty"`
	AddedByUUID string    `json:"added_by_uuid,omitempty"`
	AddedAt     time.Time `json:"added_at"`
	IsActive    bool      `json:"is_active"`
	UUIDPending bool      `json:"uuid_pending"`
}

type WhitelistPageDTO struct {
	Items []WhitelistEntryDTO `json:"items"`
	Page  int                 `json:"page"`
	Size  int                 `json:"size"`
	Total int64               `json:"total"`
	Pages int                 `json:"pages"`
}

type WhitelistFilterDTO struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Search string `form:"search"`
	Source string `form:"source" binding:"omitempty,oneof=PLAYER ADMIN SYSTEM API"`
}

type AddWhitelistDTO struct {
	Name        string `json:"name" binding:"required"`
	Source      string `json:"source" binding:"omitempty,oneof=PLAYER ADMIN SYSTEM API"`
	AddedByName string `json:"added_by_name,omitempty"`
	AddedByUUID string `json:"added_by_uuid,omitempty"`
}

type BatchPlayerDTO struct {
	Name string `json:"name,omitempty"`
	UUID string `json:"uuid,omitempty"`
}

type BatchOperationDTO struct {
	Operation   string           `json:"operation" binding:"required,oneof=add remove"`
	Source      string           `json:"source" binding:"omitempty,oneof=PLAYER ADMIN SYSTEM API"`
	AddedByName string           `json:"added_by_name,omitempty"`
	Players     []BatchPlayerDTO `json:"players" binding:"required,min=1,dive"`
}

type BatchItemResultDTO struct {
	Name    string `json:"name,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type BatchOperationResultDTO struct {
	Operation      string               `json:"operation"`
	TotalRequested int                  `json:"total_requested"`
	SuccessCount   int                  `json:"success_count"`
	FailedCount    int                  `json:"failed_count"`
	Details        []BatchItemResultDTO `json:"details"`
}

type CacheStatusDTO struct {
	Loaded      bool      `json:"loaded"`
	Size        int64     `json:"size"`
	LastRefresh time.Time `json:"last_refresh"`
}

type WhitelistStatsDTO struct {
	TotalEntries       int64            `json:"total_entries"`
	ActiveEntries      int64            `json:"active_entries"`
	UUIDPendingEntries int64            `json:"uuid_pending_entries"`
	SourceBreakdown    map[string]int64 `json:"source_breakdown"`
	CacheStatus        CacheStatusDTO   `json:"cache_status"`
}

type DashboardStatsDTO struct {
	Submissions    SubmissionStatsDTO `json:"submissions"`
	WhitelistTotal int64              `json:"whitelist_total"`
	SurveyCount    int64              `json:"survey_count"`
	ActiveSurveys  int64              `json:"active_surveys"`
}
