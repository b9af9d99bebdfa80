package repository

import (
	"mindmate_backend/internal/model"

	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

func (r *JournalRepository) Create(entry *model.JournalEntry) error {
	return r.DB.Create(entry).Error
}

func (r *JournalRepository) FindByID(id uint) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.DB.First(&entry, id).Error
	return &entry, err
}

func (r *JournalRepository) FindByUserID(userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) FindAll() ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.DB.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.JournalEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
