package controller

import (
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

type CreateJournalRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood"`
}

// CreateEntry godoc
// @Summary Write a journal entry
// @Tags journals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateJournalRequest true "journal entry"
// @Success 201 {object} util.Response{data=model.JournalEntry}
// @Router /journals [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	var req CreateJournalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	entry := &model.JournalEntry{
		UserID:  claims.UserID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	}
	if err := c.JournalService.CreateEntry(entry); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// ListEntries godoc
// @Summary List the caller's journal entries
// @Tags journals
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.JournalEntry}
// @Router /journals [get]
func (c *JournalController) ListEntries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	entries, err := c.JournalService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// GetEntry godoc
// @Summary Fetch one journal entry
// @Tags journals
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "entry id"
// @Success 200 {object} util.Response{data=model.JournalEntry}
// @Failure 404 {object} util.Response
// @Router /journals/{id} [get]
func (c *JournalController) GetEntry(ctx *gin.Context) {
	entry, err := c.JournalService.GetEntry(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondEntryError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if entry.UserID != claims.UserID && claims.Role != model.RoleAdmin {
		util.Forbidden(ctx)
		return
	}
	util.Success(ctx, entry)
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Tags journals
// @Security ApiKeyAuth
// @Param   id path int true "entry id"
// @Success 200 {object} util.Response
// @Router /journals/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	err := c.JournalService.DeleteEntry(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondEntryError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Journal entry deleted successfully"})
}
