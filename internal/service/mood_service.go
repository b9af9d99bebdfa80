package service

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"

	"gorm.io/gorm"
)

type MoodService struct {
	MoodRepo *repository.MoodRepository
}

func NewMoodService(moodRepo *repository.MoodRepository) *MoodService {
	return &MoodService{MoodRepo: moodRepo}
}

func (s *MoodService) CreateEntry(entry *model.MoodEntry) error {
	return s.MoodRepo.Create(entry)
}

func (s *MoodService) ListForUser(userID uint) ([]model.MoodEntry, error) {
	return s.MoodRepo.FindByUserID(userID)
}

func (s *MoodService) ListAll() ([]model.MoodEntry, error) {
	return s.MoodRepo.FindAll()
}

// DeleteEntry removes an entry owned by the actor; admins may delete any.
func (s *MoodService) DeleteEntry(actor *util.Claims, id uint) error {
	entry, err := s.MoodRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if entry.UserID != actor.UserID && actor.Role != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	return s.MoodRepo.Delete(id)
}
