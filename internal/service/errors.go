package service

import (
	"errors"
	"fmt"
)

// ErrDuplicateEntry marks a whitelist add for a player that is already
// whitelisted. The desired end state already holds, so callers usually
// treat it as success.
var ErrDuplicateEntry = errors.New("player already exists in whitelist")

// ErrAlreadyReviewed marks a review attempt on a submission that has
// already reached a terminal status.
var ErrAlreadyReviewed = errors.New("submission has already been reviewed")

// ErrSurveyInactive marks a form request against a survey that is not
// accepting submissions.
var ErrSurveyInactive = errors.New("survey is not accepting submissions")

// PartialApprovalError reports that a submission was approved but the
// whitelist promotion failed for a reason other than a duplicate. The
// approval is not rolled back; the error prompts manual remediation.
type PartialApprovalError struct {
	SubmissionID uint
	PlayerName   string
	Err          error
}

func (e *PartialApprovalError) Error() string {
	return fmt.Sprintf("submission %d approved but whitelist add for %q failed: %v", e.SubmissionID, e.PlayerName, e.Err)
}

func (e *PartialApprovalError) Unwrap() error {
	return e.Err
}
