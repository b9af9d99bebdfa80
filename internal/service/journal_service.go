package service

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"

	"gorm.io/gorm"
)

type JournalService struct {
	JournalRepo *repository.JournalRepository
}

func NewJournalService(journalRepo *repository.JournalRepository) *JournalService {
	return &JournalService{JournalRepo: journalRepo}
}

func (s *JournalService) CreateEntry(entry *model.JournalEntry) error {
	return s.JournalRepo.Create(entry)
}

func (s *JournalService) GetEntry(id uint) (*model.JournalEntry, error) {
	entry, err := s.JournalRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	return entry, err
}

func (s *JournalService) ListForUser(userID uint) ([]model.JournalEntry, error) {
	return s.JournalRepo.FindByUserID(userID)
}

func (s *JournalService) ListAll() ([]model.JournalEntry, error) {
	return s.JournalRepo.FindAll()
}

func (s *JournalService) DeleteEntry(actor *util.Claims, id uint) error {
	entry, err := s.GetEntry(id)
	if err != nil {
		return err
	}

	if entry.UserID != actor.UserID && actor.Role != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	return s.JournalRepo.Delete(id)
}
