package app

import (
	"errors"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bootstrapAccounts creates the initial admin (and optionally a demo user) on
// first boot. It is opt-in and reads credentials from configuration or
// environment; existing accounts are never touched.
func bootstrapAccounts(cfg *config.BootstrapConfig, users *repository.UserRepository) error {
	if !cfg.Enabled {
		return nil
	}

	adminUsername := cfg.AdminUsername
	if adminUsername == "" {
		adminUsername = "admin"
	}

	if err := createIfAbsent(users, &model.User{
		Username: adminUsername,
		Email:    cfg.AdminEmail,
		FullName: "Administrator",
		Role:     model.RoleAdmin,
	}, cfg.AdminPassword); err != nil {
		return err
	}

	if cfg.DemoUsername != "" && cfg.DemoPassword != "" {
		if err := createIfAbsent(users, &model.User{
			Username: cfg.DemoUsername,
			Email:    cfg.DemoEmail,
			FullName: "Demo User",
			Role:     model.RoleUser,
		}, cfg.DemoPassword); err != nil {
			return err
		}
	}

	return nil
}

func createIfAbsent(users *repository.UserRepository, user *model.User, password string) error {
	_, err := users.FindByUsername(user.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := users.Create(user); err != nil {
		return err
	}
	logger.Log.Info("bootstrapped account",
		zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return nil
}
