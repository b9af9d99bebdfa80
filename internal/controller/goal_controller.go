package controller

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
}

// CreateGoal godoc
// @Summary Create a wellness goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateGoalRequest true "goal"
// @Success 201 {object} util.Response{data=model.Goal}
// @Router /goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	goal := &model.Goal{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	}
	if err := c.GoalService.CreateGoal(goal); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// ListGoals godoc
// @Summary List the caller's goals
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Router /goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	goals, err := c.GoalService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

type SetCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// SetCompleted godoc
// @Summary Mark a goal completed or reopen it
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "goal id"
// @Param   body body SetCompletedRequest true "completion flag"
// @Success 200 {object} util.Response{data=model.Goal}
// @Router /goals/{id}/complete [patch]
func (c *GoalController) SetCompleted(ctx *gin.Context) {
	var req SetCompletedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.SetCompleted(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")), *req.Completed)
	if err != nil {
		respondGoalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Security ApiKeyAuth
// @Param   id path int true "goal id"
// @Success 200 {object} util.Response
// @Router /goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	err := c.GoalService.DeleteGoal(util.GetUserFromContext(ctx), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondGoalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Goal deleted successfully"})
}

func respondGoalError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrGoalNotFound):
		util.NotFound(ctx, "Goal not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
