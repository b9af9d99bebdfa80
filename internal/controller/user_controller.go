package controller

import (
	"encoding/json"
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
	Storage     service.StorageProvider
}

func NewUserController(userService *service.UserService, storage service.StorageProvider) *UserController {
	return &UserController{UserService: userService, Storage: storage}
}

type UpdateProfileRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body UpdateProfileRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /users/{id} [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}

	user, err := c.UserService.UpdateProfile(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")), fields)
	if err != nil {
		respondUserError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags users
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body ChangePasswordRequest true "passwords"
// @Success 200 {object} util.Response
// @Router /users/{id}/change-password [post]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.UserService.ChangePassword(
		util.GetUserFromContext(ctx),
		util.MustParseUint(ctx.Param("id")),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		if errors.Is(err, util.ErrWrongPassword) {
			util.Error(ctx, 401, "Current password is incorrect")
			return
		}
		respondUserError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Password updated successfully"})
}

// settings column names keyed by the URL segment
var settingsColumns = map[string]string{
	"notifications": "notification_settings",
	"appearance":    "appearance_settings",
	"privacy":       "privacy_settings",
}

// UpdateSettings stores one of the free-form settings blobs
// (notifications, appearance, privacy) on the user record.
func (c *UserController) UpdateSettings(kind string) gin.HandlerFunc {
	column := settingsColumns[kind]
	return func(ctx *gin.Context) {
		var blob map[string]interface{}
		if err := ctx.ShouldBindJSON(&blob); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}

		raw, err := json.Marshal(blob)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}

		_, err = c.UserService.UpdateProfile(
			util.GetUserFromContext(ctx),
			util.MustParseUint(ctx.Param("id")),
			map[string]interface{}{column: string(raw)},
		)
		if err != nil {
			respondUserError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{
			"message":  kind + " settings updated successfully",
			"settings": blob,
		})
	}
}

// UploadAvatar godoc
// @Summary Upload a profile image
// @Tags users
// @Accept  mpfd
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	file, header, err := ctx.Request.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	defer file.Close()

	objectName := service.AvatarObjectName(claims.UserID, header.Filename)
	url, err := c.Storage.Upload(ctx.Request.Context(), objectName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.SetProfileImage(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"profileImage": url})
}

// DeleteAccount godoc
// @Summary Delete a user account
// @Tags users
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{id} [delete]
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	err := c.UserService.DeleteUser(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondUserError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Account deleted successfully"})
}

type RecordStatsRequest struct {
	DailyUsage          int `json:"dailyUsage"`
	MoodEntriesCount    int `json:"moodEntriesCount"`
	JournalEntriesCount int `json:"journalEntriesCount"`
}

func (c *UserController) RecordStats(ctx *gin.Context) {
	var req RecordStatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	stats := &model.UserStats{
		UserID:              claims.UserID,
		DailyUsage:          req.DailyUsage,
		MoodEntriesCount:    req.MoodEntriesCount,
		JournalEntriesCount: req.JournalEntriesCount,
	}
	if err := c.UserService.RecordStats(stats); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, stats)
}

func (c *UserController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	targetID := util.MustParseUint(ctx.Param("userId"))
	if claims.UserID != targetID && claims.Role != model.RoleAdmin {
		util.Forbidden(ctx)
		return
	}

	stats, err := c.UserService.ListStats(targetID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

func respondUserError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, "User not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
