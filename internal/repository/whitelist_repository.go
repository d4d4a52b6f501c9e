package repository

import (
	"github.com/pixellake/mcgate/internal/model"
	"gorm.io/gorm"
)

type WhitelistRepository interface {
	Create(entry *model.WhitelistEntry) error
	FindByID(id uint) (*model.WhitelistEntry, error)
	FindByName(name string) (*model.WhitelistEntry, error)
	FindAll(page, size int, search, source string) ([]model.WhitelistEntry, int64, error)
	AllNames() ([]string, error)
	Delete(id uint) error
	DeleteByName(name string) error
	Count() (int64, error)
	CountActive() (int64, error)
	CountUUIDPending() (int64, error)
	CountBySource() (map[string]int64, error)
}

type whitelistRepository struct {
	db *gorm.DB
}

func NewWhitelistRepository(db *gorm.DB) WhitelistRepository {
	return &whitelistRepository{db: db}
}

func (r *whitelistRepository) Create(entry *model.WhitelistEntry) error {
	return r.db.Create(entry).Error
}

func (r *whitelistRepository) FindByID(id uint) (*model.WhitelistEntry, error) {
	var entry model.WhitelistEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *whitelistRepository) FindByName(name string) (*model.WhitelistEntry, error) {
	var entry model.WhitelistEntry
	if err := r.db.Where("name = ?", name).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *whitelistRepository) FindAll(page, size int, search, source string) ([]model.WhitelistEntry, int64, error) {
	query := r.db.Model(&model.WhitelistEntry{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.WhitelistEntry
	err := query.Order("added_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error
	return entries, total, err
}

func (r *whitelistRepository) AllNames() ([]string, error) {
	var names []string
	err := r.db.Model(&model.WhitelistEntry{}).Where("is_active = ?", true).Pluck("name", &names).Error
	return names, err
}

func (r *whitelistRepository) Delete(id uint) error {
	return r.db.Delete(&model.WhitelistEntry{}, id).Error
}

func (r *whitelistRepository) DeleteByName(name string) error {
	return r.db.Where("name = ?", name).Delete(&model.WhitelistEntry{}).Error
}

func (r *whitelistRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.WhitelistEntry{}).Count(&n).Error
	return n, err
}

func (r *whitelistRepository) CountActive() (int64, error) {
	var n int64
	err := r.db.Model(&model.WhitelistEntry{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *whitelistRepository) CountUUIDPending() (int64, error) {
	var n int64
	err := r.db.Model(&model.WhitelistEntry{}).Where("uuid IS NULL").Count(&n).Error
	return n, err
}

func (r *whitelistRepository) CountBySource() (map[string]int64, error) {
	var rows []struct {
		Source string
		N      int64
	}
	err := r.db.Model(&model.WhitelistEntry{}).
		Select("source, COUNT(*) as n").
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Source] = row.N
	}
	return breakdown, nil
}
