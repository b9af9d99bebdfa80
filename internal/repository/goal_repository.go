package repository

import (
	"mindmate_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	return &goal, err
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error
	return goals, err
}

// SetCompleted flips the completed flag, stamping or clearing completed_at.
func (r *GoalRepository) SetCompleted(id uint, completed bool) error {
	var completedAt interface{}
	if completed {
		completedAt = time.Now()
	}
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
			"updated_at":   time.Now(),
		}).Error
}

func (r *GoalRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Goal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
