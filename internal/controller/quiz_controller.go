package controller

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizController struct {
	QuizService *service.QuizService
	Hub         *service.NotificationHub
}

func NewQuizController(quizService *service.QuizService, hub *service.NotificationHub) *QuizController {
	return &QuizController{QuizService: quizService, Hub: hub}
}

// ListQuizzes godoc
// @Summary List available quizzes
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// ListByType godoc
// @Summary List quizzes of one type
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   type path string true "quiz type"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quizzes/type/{type} [get]
func (c *QuizController) ListByType(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzesByType(ctx.Param("type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary Fetch one quiz with its questions
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

type SubmitQuizRequest struct {
	QuizID  uint           `json:"quizId" binding:"required"`
	Answers []model.Answer `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for scoring
// @Description Scores the submission, stores the result and pushes a
// @Description notification to the submitter's open websocket connections.
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitQuizRequest true "quiz id and answers"
// @Success 201 {object} util.Response{data=model.QuizResult}
// @Failure 400 {object} util.Response "malformed answers"
// @Failure 404 {object} util.Response "quiz not found"
// @Router /quiz-results [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := service.ValidateAnswers(req.Answers); err != nil {
		logger.Log.Warn("rejecting malformed quiz submission",
			zap.Uint("quiz_id", req.QuizID), zap.Error(err))
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.QuizService.SubmitQuiz(claims.UserID, req.QuizID, req.Answers)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}

	if c.Hub != nil {
		c.Hub.Notify(claims.UserID, "quiz_result", gin.H{
			"resultId":   result.ID,
			"quizId":     result.QuizID,
			"percentage": result.Score.Percentage,
			"level":      result.Score.Level,
		})
	}

	util.Created(ctx, result)
}

// GetResult godoc
// @Summary Fetch one quiz result
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "result id"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Failure 404 {object} util.Response
// @Router /quiz-results/{id} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	result, err := c.QuizService.GetResult(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondQuizError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if result.UserID != claims.UserID && claims.Role != model.RoleAdmin {
		util.Forbidden(ctx)
		return
	}
	util.Success(ctx, result)
}

// ListMyResults godoc
// @Summary List the caller's quiz results
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /quiz-results [get]
func (c *QuizController) ListMyResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	results, err := c.QuizService.ListResultsForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

func respondQuizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, "Quiz not found")
	case errors.Is(err, util.ErrResultNotFound):
		util.NotFound(ctx, "Result not found")
	default:
		util.LogInternalError(ctx, err)
	}
}
