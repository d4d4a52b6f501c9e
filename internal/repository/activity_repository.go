package repository

import (
	"github.com/pixellake/mcgate/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	FindAll(page, size int, action string) ([]model.Activity, int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindAll(page, size int, action string) ([]model.Activity, int64, error) {
	query := r.db.Model(&model.Activity{})
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []model.Activity
	err := query.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&activities).Error
	return activities, total, err
}
