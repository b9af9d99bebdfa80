package controller

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	MoodService *service.MoodService
}

func NewMoodController(moodService *service.MoodService) *MoodController {
	return &MoodController{MoodService: moodService}
}

type CreateMoodRequest struct {
	Mood string `json:"mood" binding:"required"`
	Note string `json:"note"`
}

// CreateEntry godoc
// @Summary Record a mood check-in
// @Tags moods
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateMoodRequest true "mood entry"
// @Success 201 {object} util.Response{data=model.MoodEntry}
// @Router /moods [post]
func (c *MoodController) CreateEntry(ctx *gin.Context) {
	var req CreateMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	entry := &model.MoodEntry{
		UserID: claims.UserID,
		Mood:   req.Mood,
		Note:   req.Note,
	}
	if err := c.MoodService.CreateEntry(entry); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// ListEntries godoc
// @Summary List the caller's mood entries
// @Tags moods
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.MoodEntry}
// @Router /moods [get]
func (c *MoodController) ListEntries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	entries, err := c.MoodService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// DeleteEntry godoc
// @Summary Delete a mood entry
// @Tags moods
// @Security ApiKeyAuth
// @Param   id path int true "entry id"
// @Success 200 {object} util.Response
// @Router /moods/{id} [delete]
func (c *MoodController) DeleteEntry(ctx *gin.Context) {
	err := c.MoodService.DeleteEntry(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondEntryError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Mood entry deleted successfully"})
}

func respondEntryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrEntryNotFound):
		util.NotFound(ctx, "Entry not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
