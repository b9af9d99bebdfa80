package service

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"

	"gorm.io/gorm"
)

type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

func (s *GoalService) CreateGoal(goal *model.Goal) error {
	return s.GoalRepo.Create(goal)
}

func (s *GoalService) ListForUser(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

func (s *GoalService) getOwned(actor *util.Claims, id uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	if goal.UserID != actor.UserID && actor.Role != model.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}
	return goal, nil
}

// SetCompleted toggles the goal's completed flag, stamping completed_at when
// the goal finishes and clearing it when reopened.
func (s *GoalService) SetCompleted(actor *util.Claims, id uint, completed bool) (*model.Goal, error) {
	if _, err := s.getOwned(actor, id); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.SetCompleted(id, completed); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByID(id)
}

func (s *GoalService) DeleteGoal(actor *util.Claims, id uint) error {
	if _, err := s.getOwned(actor, id); err != nil {
		return err
	}
	return s.GoalRepo.Delete(id)
}
