package survey

import (
	"fmt"
	"strings"
)

// Violation is one publish-blocking problem, addressed to a form field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one validation pass so
// callers can render them all at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "survey validation failed: " + strings.Join(msgs, "; ")
}

// DanglingConditionError reports a condition whose source question no
// longer exists, sits at or after the dependent, or can no longer gate.
type DanglingConditionError struct {
	QuestionID string
	DependsOn  string
}

func (e *DanglingConditionError) Error() string {
	return fmt.Sprintf("question %s has a condition on %s, which is not a valid condition source", e.QuestionID, e.DependsOn)
}

// EmptyTriggerError reports a condition with no trigger values; such a
// question could never become visible.
type EmptyTriggerError struct {
	QuestionID string
}

func (e *EmptyTriggerError) Error() string {
	return fmt.Sprintf("question %s has a condition with no trigger values", e.QuestionID)
}

// PinnedOverflowError reports that the pinned questions cannot fit the
// random sample, either by count or because a pinned question's condition
// source was not selected.
type PinnedOverflowError struct {
	PinnedCount int
	RandomCount int
	QuestionID  string
}

func (e *PinnedOverflowError) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("pinned question %s depends on a question excluded from the random subset", e.QuestionID)
	}
	return fmt.Sprintf("%d pinned questions cannot fit a random subset of %d", e.PinnedCount, e.RandomCount)
}
