package repository

import (
	"mindmate_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizResultRepository) FindByID(id uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.First(&result, id).Error
	return &result, err
}

func (r *QuizResultRepository) FindByUserID(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *QuizResultRepository) FindByQuizID(quizID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("quiz_id = ?", quizID).Order("created_at DESC").Find(&results).Error
	return results, err
}

// UpdateFields applies the administrative partial update. Identity and
// ownership columns stay fixed.
func (r *QuizResultRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "user_id")
	delete(fields, "quiz_id")
	delete(fields, "reference")
	fields["updated_at"] = time.Now()
	return r.DB.Model(&model.QuizResult{}).Where("id = ?", id).Updates(fields).Error
}

func (r *QuizResultRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.QuizResult{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
