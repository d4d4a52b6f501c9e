package repository

import (
	"github.com/pixellake/mcgate/internal/model"
	"gorm.io/gorm"
)

// SurveyListRow is a survey with its aggregate counts for list views.
type SurveyListRow struct {
	model.Survey
	QuestionCount   int
	SubmissionCount int
}

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindByCodeWithQuestions(code string) (*model.Survey, error)
	FindAll(page, size int, search string) ([]SurveyListRow, int64, error)
	Update(survey *model.Survey) error
	ReplaceQuestions(surveyID uint, questions []model.Question) error
	Delete(id uint) error
	Count() (int64, error)
	CountActive() (int64, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// Create with associations persists the questions along with the survey.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.display_order ASC")
	}).First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByCodeWithQuestions(code string) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.display_order ASC")
	}).Where("code = ?", code).First(&survey).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAll(page, size int, search string) ([]SurveyListRow, int64, error) {
	query := r.db.Model(&model.Survey{})
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []SurveyListRow
	err := query.
		Select("surveys.*, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count, " +
			"(SELECT COUNT(*) FROM submissions WHERE submissions.survey_id = surveys.id AND submissions.deleted_at IS NULL) as submission_count").
		Order("surveys.created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&rows).Error
	return rows, total, err
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

// ReplaceQuestions swaps a survey's question list in one transaction. The
// editor always submits the full draft, so partial question updates are
// never needed.
func (r *surveyRepository) ReplaceQuestions(surveyID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].SurveyID = surveyID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *surveyRepository) Delete(id uint) error {
	return r.db.Delete(&model.Survey{}, id).Error
}

func (r *surveyRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Survey{}).Count(&n).Error
	return n, err
}

func (r *surveyRepository) CountActive() (int64, error) {
	var n int64
	err := r.db.Model(&model.Survey{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
