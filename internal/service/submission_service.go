package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/pixellake/mcgate/internal/survey"
	"github.com/rs/zerolog/log"
)

// WhitelistPromoter is the slice of the whitelist service the review flow
// needs to promote an approved player.
type WhitelistPromoter interface {
	Add(ctx context.Context, req dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error)
}

type SubmissionService interface {
	List(filter dto.SubmissionFilterDTO) (*dto.SubmissionPageDTO, error)
	Get(id uint) (*dto.SubmissionDetailDTO, error)
	Review(ctx context.Context, id uint, req dto.ReviewSubmissionDTO, reviewer string) error
	Stats() (*dto.SubmissionStatsDTO, error)
}

type submissionService struct {
	repo       repository.SubmissionRepository
	whitelist  WhitelistPromoter
	activities repository.ActivityRepository
}

func NewSubmissionService(repo repository.SubmissionRepository, whitelist WhitelistPromoter, activities repository.ActivityRepository) SubmissionService {
	return &submissionService{repo: repo, whitelist: whitelist, activities: activities}
}

var alreadyExistsPattern = regexp.MustCompile(`(?i)already exists`)

// Review applies a terminal review outcome to a pending submission. On
// approval the player is promoted into the whitelist after the review
// status is durable, never before. A duplicate whitelist entry means the
// desired end state already holds and is treated as success; any other
// promotion failure surfaces as a *PartialApprovalError while the approval
// itself stands.
func (s *submissionService) Review(ctx context.Context, id uint, req dto.ReviewSubmissionDTO, reviewer string) error {
	submission, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("loading submission %d: %w", id, err)
	}
	if submission.Status != model.SubmissionPending {
		return fmt.Errorf("submission %d is %s: %w", id, submission.Status, ErrAlreadyReviewed)
	}

	if err := s.repo.UpdateReview(id, req.Status, req.ReviewNote, reviewer, time.Now()); err != nil {
		return fmt.Errorf("updating review status for submission %d: %w", id, err)
	}
	recordActivity(s.activities, model.Activity{
		Action:       req.Status,
		PlayerName:   submission.PlayerName,
		Operator:     reviewer,
		SubmissionID: &id,
		Note:         req.ReviewNote,
	})

	if req.Status != model.SubmissionApproved {
		log.Info().Uint("submission_id", id).Str("player", submission.PlayerName).Msg("Submission rejected")
		return nil
	}

	_, err = s.whitelist.Add(ctx, dto.AddWhitelistDTO{
		Name:        submission.PlayerName,
		Source:      model.SourceAdmin,
		AddedByName: reviewer,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEntry) || alreadyExistsPattern.MatchString(err.Error()) {
			log.Info().Uint("submission_id", id).Str("player", submission.PlayerName).
				Msg("Player already whitelisted, approval stands")
			return nil
		}
		log.Error().Err(err).Uint("submission_id", id).Str("player", submission.PlayerName).
			Msg("Approved submission but whitelist add failed")
		return &PartialApprovalError{SubmissionID: id, PlayerName: submission.PlayerName, Err: err}
	}

	log.Info().Uint("submission_id", id).Str("player", submission.PlayerName).
		Msg("Submission approved and player whitelisted")
	return nil
}

func (s *submissionService) List(filter dto.SubmissionFilterDTO) (*dto.SubmissionPageDTO, error) {
	page, size := normalizePage(filter.Page, filter.Size)
	submissions, total, err := s.repo.FindAll(page, size, repository.SubmissionFilter{
		Status:     filter.Status,
		SurveyID:   filter.SurveyID,
		PlayerName: filter.PlayerName,
	})
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	items := make([]dto.SubmissionListItemDTO, len(submissions))
	for i, sub := range submissions {
		copier.Copy(&items[i], &sub)
		items[i].SurveyTitle = sub.Survey.Title
	}
	return &dto.SubmissionPageDTO{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
		Pages: pageCount(total, size),
	}, nil
}

func (s *submissionService) Get(id uint) (*dto.SubmissionDetailDTO, error) {
	submission, err := s.repo.FindByIDWithAnswers(id)
	if err != nil {
		return nil, fmt.Errorf("loading submission %d: %w", id, err)
	}

	var detail dto.SubmissionDetailDTO
	copier.Copy(&detail, submission)
	detail.SurveyTitle = submission.Survey.Title

	// Answers render in the question display order captured at submission
	// time, not in storage-id order.
	answers := append([]model.SubmissionAnswer(nil), submission.Answers...)
	sort.SliceStable(answers, func(i, j int) bool { return answers[i].QuestionOrder < answers[j].QuestionOrder })

	detail.Answers = make([]dto.SubmissionAnswerDTO, len(answers))
	for i, answer := range answers {
		detail.Answers[i] = dto.SubmissionAnswerDTO{
			ID:            answer.ID,
			QuestionID:    answer.QuestionID,
			QuestionTitle: answer.QuestionTitle,
			QuestionType:  answer.QuestionType,
			Content:       renderAnswer(answer),
		}
	}
	return &detail, nil
}

// renderAnswer decodes the stored raw payload by question type. Payloads
// that fail the typed decoder are shown raw rather than dropped, so a
// reviewer can still see what was submitted.
func renderAnswer(answer model.SubmissionAnswer) string {
	decoded, err := survey.DecodeAnswer(survey.QuestionType(answer.QuestionType), json.RawMessage(answer.Content))
	if err != nil {
		log.Warn().Err(err).Uint("answer_id", answer.ID).Str("type", answer.QuestionType).
			Msg("Failed to decode submission answer")
		return answer.Content
	}
	return decoded.Display()
}

func (s *submissionService) Stats() (*dto.SubmissionStatsDTO, error) {
	var stats dto.SubmissionStatsDTO
	var err error
	if stats.Pending, err = s.repo.CountByStatus(model.SubmissionPending); err != nil {
		return nil, fmt.Errorf("counting pending submissions: %w", err)
	}
	if stats.Approved, err = s.repo.CountByStatus(model.SubmissionApproved); err != nil {
		return nil, fmt.Errorf("counting approved submissions: %w", err)
	}
	if stats.Rejected, err = s.repo.CountByStatus(model.SubmissionRejected); err != nil {
		return nil, fmt.Errorf("counting rejected submissions: %w", err)
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return &stats, nil
}
