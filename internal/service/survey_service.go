package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/pixellake/mcgate/internal/survey"
	"github.com/rs/zerolog/log"
)

type SurveyService interface {
	Create(req dto.SurveyCreateDTO) (*dto.SurveyCreatedDTO, error)
	Update(id uint, req dto.SurveyUpdateDTO) error
	Get(id uint) (*dto.SurveyDetailDTO, error)
	List(page, size int, search string) (*dto.SurveyPageDTO, error)
	Delete(id uint) error
	BuildForm(code string) (*dto.SurveyFormDTO, error)
}

type surveyService struct {
	repo repository.SurveyRepository
}

func NewSurveyService(repo repository.SurveyRepository) SurveyService {
	return &surveyService{repo: repo}
}

// Create runs the submitted draft through the aggregate so every
// structural invariant is enforced before anything is persisted: dangling
// conditions are repaired, publish validation runs in full, and condition
// references are serialized positionally.
func (s *surveyService) Create(req dto.SurveyCreateDTO) (*dto.SurveyCreatedDTO, error) {
	draft, err := draftFromRequest(req.Title, req.Description, req.IsRandom, req.RandomCount, req.Questions)
	if err != nil {
		return nil, err
	}
	if err := draft.ValidateForPublish(); err != nil {
		return nil, err
	}
	snapshot, err := draft.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("serializing draft: %w", err)
	}

	surveyModel := model.Survey{
		Title:       snapshot.Title,
		Description: snapshot.Description,
		Code:        generateCode(),
		IsActive:    true,
		IsRandom:    snapshot.IsRandom,
		Questions:   questionModels(snapshot.Questions),
	}
	if snapshot.IsRandom {
		count := snapshot.RandomCount
		surveyModel.RandomCount = &count
	}

	if err := s.repo.Create(&surveyModel); err != nil {
		log.Error().Err(err).Msg("Failed to create survey")
		return nil, fmt.Errorf("creating survey: %w", err)
	}
	log.Info().Uint("survey_id", surveyModel.ID).Str("code", surveyModel.Code).Msg("Survey created")

	return &dto.SurveyCreatedDTO{ID: surveyModel.ID, Code: surveyModel.Code, Title: surveyModel.Title}, nil
}

// Update applies metadata changes and, when the request carries questions,
// replaces the whole question list. The merged result is re-validated as a
// complete draft: partial updates must not be able to break invariants the
// editor enforces.
func (s *surveyService) Update(id uint, req dto.SurveyUpdateDTO) error {
	existing, err := s.repo.FindByIDWithQuestions(id)
	if err != nil {
		return fmt.Errorf("loading survey %d: %w", id, err)
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.IsRandom != nil {
		existing.IsRandom = *req.IsRandom
	}
	if req.RandomCount != nil {
		existing.RandomCount = req.RandomCount
	}

	randomCount := 0
	if existing.RandomCount != nil {
		randomCount = *existing.RandomCount
	}

	var draft *survey.Draft
	if req.Questions != nil {
		draft, err = draftFromRequest(existing.Title, existing.Description, existing.IsRandom, randomCount, req.Questions)
	} else {
		draft, err = survey.HydrateDraft(existing.Title, existing.Description, existing.IsRandom, randomCount, snapshotsFromModels(existing.Questions))
	}
	if err != nil {
		return err
	}
	if err := draft.ValidateForPublish(); err != nil {
		return err
	}

	if req.Questions != nil {
		snapshot, err := draft.Snapshot()
		if err != nil {
			return fmt.Errorf("serializing draft: %w", err)
		}
		if err := s.repo.ReplaceQuestions(id, questionModels(snapshot.Questions)); err != nil {
			return fmt.Errorf("replacing questions for survey %d: %w", id, err)
		}
	}

	existing.Questions = nil
	if err := s.repo.Update(existing); err != nil {
		return fmt.Errorf("updating survey %d: %w", id, err)
	}
	log.Info().Uint("survey_id", id).Msg("Survey updated")
	return nil
}

func (s *surveyService) Get(id uint) (*dto.SurveyDetailDTO, error) {
	surveyModel, err := s.repo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("loading survey %d: %w", id, err)
	}

	var detail dto.SurveyDetailDTO
	copier.Copy(&detail.SurveySummaryDTO, surveyModel)
	detail.QuestionCount = len(surveyModel.Questions)
	detail.Questions = make([]dto.QuestionResponseDTO, len(surveyModel.Questions))
	for i, q := range surveyModel.Questions {
		detail.Questions[i] = questionResponse(q)
	}
	return &detail, nil
}

func (s *surveyService) List(page, size int, search string) (*dto.SurveyPageDTO, error) {
	page, size = normalizePage(page, size)
	rows, total, err := s.repo.FindAll(page, size, search)
	if err != nil {
		return nil, fmt.Errorf("listing surveys: %w", err)
	}

	items := make([]dto.SurveySummaryDTO, len(rows))
	for i, row := range rows {
		copier.Copy(&items[i], &row.Survey)
		items[i].QuestionCount = row.QuestionCount
		items[i].SubmissionCount = row.SubmissionCount
	}
	return &dto.SurveyPageDTO{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
		Pages: pageCount(total, size),
	}, nil
}

func (s *surveyService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting survey %d: %w", id, err)
	}
	log.Info().Uint("survey_id", id).Msg("Survey deleted")
	return nil
}

// BuildForm produces the question list a respondent sees. Random surveys
// get a fresh subset per call; the selector re-checks the pinned
// constraints even though publish validation already guaranteed them.
func (s *surveyService) BuildForm(code string) (*dto.SurveyFormDTO, error) {
	surveyModel, err := s.repo.FindByCodeWithQuestions(code)
	if err != nil {
		return nil, fmt.Errorf("loading survey %q: %w", code, err)
	}
	if !surveyModel.IsActive {
		return nil, fmt.Errorf("survey %q: %w", code, ErrSurveyInactive)
	}

	randomCount := 0
	if surveyModel.RandomCount != nil {
		randomCount = *surveyModel.RandomCount
	}
	draft, err := survey.HydrateDraft(surveyModel.Title, surveyModel.Description, surveyModel.IsRandom, randomCount, snapshotsFromModels(surveyModel.Questions))
	if err != nil {
		return nil, fmt.Errorf("hydrating survey %q: %w", code, err)
	}

	questions := draft.Questions()
	if surveyModel.IsRandom && randomCount > 0 {
		questions, err = survey.SelectSubset(questions, randomCount, nil)
		if err != nil {
			return nil, fmt.Errorf("selecting question subset for survey %q: %w", code, err)
		}
	}

	form := &dto.SurveyFormDTO{
		ID:          surveyModel.ID,
		Code:        surveyModel.Code,
		Title:       surveyModel.Title,
		Description: surveyModel.Description,
		Questions:   make([]dto.QuestionResponseDTO, len(questions)),
	}
	for i, q := range questions {
		resp := dto.QuestionResponseDTO{
			ID:          surveyModel.Questions[q.Order].ID,
			SurveyID:    surveyModel.ID,
			Title:       q.Title,
			Description: q.Description,
			Type:        string(q.Type),
			Options:     q.Options,
			IsRequired:  q.IsRequired,
			IsPinned:    q.IsPinned,
			Order:       i,
			Validation:  q.Validation,
		}
		if q.Condition != nil {
			// Remap the dependency to its position within the returned
			// subset; the selector guarantees the source is present.
			for j, other := range questions {
				if other.LocalID == q.Condition.DependsOn {
					resp.Condition = &dto.ConditionDTO{DependsOn: j, ShowWhen: q.Condition.ShowWhen}
					break
				}
			}
		}
		form.Questions[i] = resp
	}
	return form, nil
}

// draftFromRequest assembles and repairs a draft from a submitted question
// list. Condition depends_on indices refer to positions in the submitted
// list, exactly like the persisted serialization, so the list is taken in
// submitted order; any order fields in the payload are ignored and the
// draft re-densifies positions itself.
func draftFromRequest(title, description string, isRandom bool, randomCount int, questions []dto.QuestionCreateDTO) (*survey.Draft, error) {
	snapshots := make([]survey.QuestionSnapshot, len(questions))
	for i, q := range questions {
		isRequired := true
		if q.IsRequired != nil {
			isRequired = *q.IsRequired
		}
		snapshots[i] = survey.QuestionSnapshot{
			Title:       strings.TrimSpace(q.Title),
			Description: q.Description,
			Type:        survey.QuestionType(q.Type),
			Options:     q.Options,
			IsRequired:  isRequired,
			IsPinned:    q.IsPinned,
			Order:       i,
			Validation:  q.Validation,
		}
		if q.Condition != nil {
			snapshots[i].Condition = &survey.ConditionSnapshot{
				DependsOn: q.Condition.DependsOn,
				ShowWhen:  q.Condition.ShowWhen,
			}
		}
	}
	return survey.HydrateDraft(title, description, isRandom, randomCount, snapshots)
}

func questionModels(snapshots []survey.QuestionSnapshot) []model.Question {
	out := make([]model.Question, len(snapshots))
	for i, qs := range snapshots {
		out[i] = model.Question{
			Title:       qs.Title,
			Description: qs.Description,
			Type:        string(qs.Type),
			Options:     model.OptionList(qs.Options),
			IsRequired:  qs.IsRequired,
			IsPinned:    qs.IsPinned,
			Order:       qs.Order,
		}
		if qs.Validation != nil {
			v := model.ValidationColumn(*qs.Validation)
			out[i].Validation = &v
		}
		if qs.Condition != nil {
			out[i].Condition = &model.ConditionColumn{
				DependsOn: qs.Condition.DependsOn,
				ShowWhen:  qs.Condition.ShowWhen,
			}
		}
	}
	return out
}

func snapshotsFromModels(questions []model.Question) []survey.QuestionSnapshot {
	out := make([]survey.QuestionSnapshot, len(questions))
	for i, q := range questions {
		out[i] = survey.QuestionSnapshot{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Type:        survey.QuestionType(q.Type),
			Options:     []survey.Option(q.Options),
			IsRequired:  q.IsRequired,
			IsPinned:    q.IsPinned,
			Order:       q.Order,
		}
		if q.Validation != nil {
			v := survey.Validation(*q.Validation)
			out[i].Validation = &v
		}
		if q.Condition != nil {
			out[i].Condition = &survey.ConditionSnapshot{
				DependsOn: q.Condition.DependsOn,
				ShowWhen:  q.Condition.ShowWhen,
			}
		}
	}
	return out
}

func questionResponse(q model.Question) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		ID:          q.ID,
		SurveyID:    q.SurveyID,
		Title:       q.Title,
		Description: q.Description,
		Type:        q.Type,
		Options:     []survey.Option(q.Options),
		IsRequired:  q.IsRequired,
		IsPinned:    q.IsPinned,
		Order:       q.Order,
	}
	if q.Validation != nil {
		v := survey.Validation(*q.Validation)
		resp.Validation = &v
	}
	if q.Condition != nil {
		resp.Condition = &dto.ConditionDTO{DependsOn: q.Condition.DependsOn, ShowWhen: q.Condition.ShowWhen}
	}
	return resp
}

func generateCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
