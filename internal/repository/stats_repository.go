package repository

import (
	"mindmate_backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Create(stats *model.UserStats) error {
	return r.DB.Create(stats).Error
}

func (r *StatsRepository) FindByUserID(userID uint) ([]model.UserStats, error) {
	var stats []model.UserStats
	err := r.DB.Where("user_id = ?", userID).Order("date DESC").Find(&stats).Error
	return stats, err
}
