package repository

import (
	"mindmate_backend/internal/model"

	"gorm.io/gorm"
)

type MoodRepository struct {
	DB *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{DB: db}
}

func (r *MoodRepository) Create(entry *model.MoodEntry) error {
	return r.DB.Create(entry).Error
}

func (r *MoodRepository) FindByID(id uint) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	err := r.DB.First(&entry, id).Error
	return &entry, err
}

func (r *MoodRepository) FindByUserID(userID uint) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *MoodRepository) FindAll() ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	err := r.DB.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *MoodRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.MoodEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
