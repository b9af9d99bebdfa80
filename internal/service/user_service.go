package service

import (
	"errors"
	"fmt"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/util"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
}

func NewUserService(userRepo *repository.UserRepository, statsRepo *repository.StatsRepository) *UserService {
	return &UserService{UserRepo: userRepo, StatsRepo: statsRepo}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// UpdateProfile applies a partial profile update for the target user.
// Non-admins may only touch their own record.
func (s *UserService) UpdateProfile(actor *util.Claims, targetID uint, fields map[string]interface{}) (*model.User, error) {
	if actor.UserID != targetID && actor.Role != model.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.GetUser(targetID); err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateFields(targetID, fields); err != nil {
		return nil, err
	}
	return s.GetUser(targetID)
}

// ChangePassword verifies the current password unless an admin is resetting
// somebody else's.
func (s *UserService) ChangePassword(actor *util.Claims, targetID uint, currentPassword, newPassword string) error {
	if actor.UserID != targetID && actor.Role != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	user, err := s.GetUser(targetID)
	if err != nil {
		return err
	}

	if actor.UserID == targetID {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
			return util.ErrWrongPassword
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(targetID, string(hashed))
}

func (s *UserService) DeleteUser(actor *util.Claims, targetID uint) error {
	if actor.UserID != targetID && actor.Role != model.RoleAdmin {
		return util.ErrPermissionDenied
	}
	err := s.UserRepo.Delete(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	return err
}

// AvatarObjectName builds a collision-free object key preserving the upload's
// extension.
func AvatarObjectName(userID uint, originalName string) string {
	return fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), filepath.Ext(originalName))
}

func (s *UserService) SetProfileImage(userID uint, url string) error {
	return s.UserRepo.UpdateFields(userID, map[string]interface{}{"profile_image": url})
}

func (s *UserService) RecordStats(stats *model.UserStats) error {
	return s.StatsRepo.Create(stats)
}

func (s *UserService) ListStats(userID uint) ([]model.UserStats, error) {
	return s.StatsRepo.FindByUserID(userID)
}
