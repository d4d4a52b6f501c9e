package dto

import "github.com/pixellake/mcgate/internal/survey"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ValidationErrorResponse renders a publish validation failure with every
// violation, so the form can show them all at once.
type ValidationErrorResponse struct {
	Message    string             `json:"message"`
	Violations []survey.Violation `json:"violations"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
