package repository

import (
	"time"

	"github.com/pixellake/mcgate/internal/model"
	"gorm.io/gorm"
)

// SubmissionFilter narrows submission list queries.
type SubmissionFilter struct {
	Status     string
	SurveyID   uint
	PlayerName string
}

type SubmissionRepository interface {
	FindByID(id uint) (*model.Submission, error)
	FindByIDWithAnswers(id uint) (*model.Submission, error)
	FindAll(page, size int, filter SubmissionFilter) ([]model.Submission, int64, error)
	UpdateReview(id uint, status, note, reviewedBy string, reviewedAt time.Time) error
	CountByStatus(status string) (int64, error)
	Count() (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.Preload("Survey").First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByIDWithAnswers(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Preload("Survey").Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("submission_answers.question_order ASC")
	}).First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAll(page, size int, filter SubmissionFilter) ([]model.Submission, int64, error) {
	query := r.db.Model(&model.Submission{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SurveyID != 0 {
		query = query.Where("survey_id = ?", filter.SurveyID)
	}
	if filter.PlayerName != "" {
		query = query.Where("player_name ILIKE ?", "%"+filter.PlayerName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []model.Submission
	err := query.Preload("Survey").
		Order("submissions.created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&submissions).Error
	return submissions, total, err
}

func (r *submissionRepository) UpdateReview(id uint, status, note, reviewedBy string, reviewedAt time.Time) error {
	return r.db.Model(&model.Submission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"review_note": note,
		"reviewed_by": reviewedBy,
		"reviewed_at": reviewedAt,
	}).Error
}

func (r *submissionRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&model.Submission{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *submissionRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Submission{}).Count(&n).Error
	return n, err
}
