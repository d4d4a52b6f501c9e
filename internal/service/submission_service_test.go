package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionRepo struct {
	submissions map[uint]*model.Submission

	reviewedID     uint
	reviewedStatus string
	reviewedBy     string
	reviewCalls    int
	reviewErr      error
}

func newFakeSubmissionRepo(subs ...*model.Submission) *fakeSubmissionRepo {
	repo := &fakeSubmissionRepo{submissions: make(map[uint]*model.Submission)}
	for _, s := range subs {
		repo.submissions[s.ID] = s
	}
	return repo
}

func (f *fakeSubmissionRepo) FindByID(id uint) (*model.Submission, error) {
	if s, ok := f.submissions[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeSubmissionRepo) FindByIDWithAnswers(id uint) (*model.Submission, error) {
	return f.FindByID(id)
}

func (f *fakeSubmissionRepo) FindAll(page, size int, filter repository.SubmissionFilter) ([]model.Submission, int64, error) {
	return nil, 0, nil
}

func (f *fakeSubmissionRepo) UpdateReview(id uint, status, note, reviewedBy string, reviewedAt time.Time) error {
	f.reviewCalls++
	if f.reviewErr != nil {
		return f.reviewErr
	}
	f.reviewedID = id
	f.reviewedStatus = status
	f.reviewedBy = reviewedBy
	return nil
}

func (f *fakeSubmissionRepo) CountByStatus(status string) (int64, error) { return 0, nil }
func (f *fakeSubmissionRepo) Count() (int64, error)                     { return 0, nil }

type fakePromoter struct {
	added []dto.AddWhitelistDTO
	err   error
}

func (f *fakePromoter) Add(ctx context.Context, req dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error) {
	f.added = append(f.added, req)
	if f.err != nil {
		return nil, f.err
	}
	return &dto.WhitelistEntryDTO{Name: req.Name}, nil
}

func pendingSubmission(id uint, player string) *model.Submission {
	return &model.Submission{ID: id, PlayerName: player, Status: model.SubmissionPending}
}

// TestReviewApprovalPromotesPlayer verifies approving a pending submission
// records the review and then whitelists the player with the admin source.
func TestReviewApprovalPromotesPlayer(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	promoter := &fakePromoter{}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved}, "herobrine")
	require.NoError(t, err)

	assert.Equal(t, model.SubmissionApproved, repo.reviewedStatus)
	assert.Equal(t, "herobrine", repo.reviewedBy)
	require.Len(t, promoter.added, 1)
	assert.Equal(t, "Steve", promoter.added[0].Name)
	assert.Equal(t, model.SourceAdmin, promoter.added[0].Source)
	assert.Equal(t, "herobrine", promoter.added[0].AddedByName)
}

// TestReviewRejectionSkipsWhitelist verifies a rejection records the review
// and never touches the whitelist.
func TestReviewRejectionSkipsWhitelist(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	promoter := &fakePromoter{}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionRejected}, "herobrine")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionRejected, repo.reviewedStatus)
	assert.Empty(t, promoter.added)
}

// TestReviewApprovalIdempotentOnDuplicate verifies an approval whose player
// is already whitelisted still succeeds: the desired end state holds.
func TestReviewApprovalIdempotentOnDuplicate(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	promoter := &fakePromoter{err: ErrDuplicateEntry}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved}, "herobrine")
	assert.NoError(t, err)
	assert.Equal(t, model.SubmissionApproved, repo.reviewedStatus, "the approval must stand")
}

// TestReviewApprovalSwallowsAlreadyExistsMessage verifies the duplicate
// detection also matches error text from layers that do not wrap the
// sentinel.
func TestReviewApprovalSwallowsAlreadyExistsMessage(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	promoter := &fakePromoter{err: errors.New(`player "Steve" ALREADY EXISTS on server whitelist`)}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved}, "herobrine")
	assert.NoError(t, err)
}

// TestReviewApprovalPartialFailure verifies a non-duplicate whitelist
// failure surfaces as a PartialApprovalError without rolling the review
// back.
func TestReviewApprovalPartialFailure(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	promoter := &fakePromoter{err: errors.New("connection refused")}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved}, "herobrine")
	var partial *PartialApprovalError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, uint(1), partial.SubmissionID)
	assert.Equal(t, "Steve", partial.PlayerName)
	assert.Equal(t, model.SubmissionApproved, repo.reviewedStatus, "the approval is not rolled back")
}

// TestReviewRejectsNonPending verifies a submission in a terminal status
// cannot be reviewed again and the whitelist is never touched.
func TestReviewRejectsNonPending(t *testing.T) {
	reviewed := pendingSubmission(1, "Steve")
	reviewed.Status = model.SubmissionApproved
	repo := newFakeSubmissionRepo(reviewed)
	promoter := &fakePromoter{}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionRejected}, "herobrine")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Zero(t, repo.reviewCalls, "a reviewed submission is never updated again")
	assert.Empty(t, promoter.added)
}

// TestReviewStatusWrittenBeforePromotion verifies the review status update
// failing prevents any whitelist write.
func TestReviewStatusWrittenBeforePromotion(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	repo.reviewErr = errors.New("deadlock detected")
	promoter := &fakePromoter{}
	svc := NewSubmissionService(repo, promoter, newFakeActivityRepo())

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved}, "herobrine")
	require.Error(t, err)
	assert.Empty(t, promoter.added, "promotion must not happen before the review is durable")
}

// TestReviewRecordsAuditActivity verifies each review outcome lands in the
// audit trail with the operator, submission and note.
func TestReviewRecordsAuditActivity(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	activities := newFakeActivityRepo()
	svc := NewSubmissionService(repo, &fakePromoter{}, activities)

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionApproved, ReviewNote: "welcome"}, "herobrine")
	require.NoError(t, err)

	require.Len(t, activities.recorded, 1)
	entry := activities.recorded[0]
	assert.Equal(t, model.ActivityApproved, entry.Action)
	assert.Equal(t, "Steve", entry.PlayerName)
	assert.Equal(t, "herobrine", entry.Operator)
	require.NotNil(t, entry.SubmissionID)
	assert.Equal(t, uint(1), *entry.SubmissionID)
	assert.Equal(t, "welcome", entry.Note)
}

// TestReviewAuditFailureDoesNotFailReview verifies a broken audit store
// never blocks the review itself.
func TestReviewAuditFailureDoesNotFailReview(t *testing.T) {
	repo := newFakeSubmissionRepo(pendingSubmission(1, "Steve"))
	activities := newFakeActivityRepo()
	activities.err = errors.New("disk full")
	svc := NewSubmissionService(repo, &fakePromoter{}, activities)

	err := svc.Review(context.Background(), 1, dto.ReviewSubmissionDTO{Status: model.SubmissionRejected}, "herobrine")
	assert.NoError(t, err)
	assert.Equal(t, model.SubmissionRejected, repo.reviewedStatus)
}

// TestGetSubmissionOrdersAnswersByQuestionOrder verifies answers render in
// the question display order captured at submission time, not in storage
// order.
func TestGetSubmissionOrdersAnswersByQuestionOrder(t *testing.T) {
	submission := pendingSubmission(1, "Steve")
	submission.Answers = []model.SubmissionAnswer{
		{ID: 1, QuestionID: 30, QuestionTitle: "Third", QuestionType: "text", QuestionOrder: 2, Content: `"c"`},
		{ID: 2, QuestionID: 10, QuestionTitle: "First", QuestionType: "text", QuestionOrder: 0, Content: `"a"`},
		{ID: 3, QuestionID: 20, QuestionTitle: "Second", QuestionType: "text", QuestionOrder: 1, Content: `"b"`},
	}
	repo := newFakeSubmissionRepo(submission)
	svc := NewSubmissionService(repo, &fakePromoter{}, newFakeActivityRepo())

	detail, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, detail.Answers, 3)
	assert.Equal(t, "First", detail.Answers[0].QuestionTitle)
	assert.Equal(t, "Second", detail.Answers[1].QuestionTitle)
	assert.Equal(t, "Third", detail.Answers[2].QuestionTitle)
}
