package controller

import (
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController serves the admin dashboard: headline stats, analytics
// series, user management and quiz catalog maintenance.
type AdminController struct {
	AnalyticsService *service.AnalyticsService
	UserService      *service.UserService
	MoodService      *service.MoodService
	JournalService   *service.JournalService
	QuizService      *service.QuizService
	QuoteService     *service.QuoteService
}

func NewAdminController(
	analyticsService *service.AnalyticsService,
	userService *service.UserService,
	moodService *service.MoodService,
	journalService *service.JournalService,
	quizService *service.QuizService,
	quoteService *service.QuoteService,
) *AdminController {
	return &AdminController{
		AnalyticsService: analyticsService,
		UserService:      userService,
		MoodService:      moodService,
		JournalService:   journalService,
		QuizService:      quizService,
		QuoteService:     quoteService,
	}
}

// GetStats godoc
// @Summary Admin dashboard headline numbers
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.AdminStats}
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.AnalyticsService.GetAdminStats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetMoodAnalytics godoc
// @Summary Mood distribution and 7-day trend
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.MoodAnalytics}
// @Router /admin/analytics/moods [get]
func (c *AdminController) GetMoodAnalytics(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.GetMoodAnalytics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

// GetUserActivity godoc
// @Summary Daily active users over the last week
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserActivity}
// @Router /admin/analytics/activity [get]
func (c *AdminController) GetUserActivity(ctx *gin.Context) {
	activity, err := c.AnalyticsService.GetUserActivity()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetUserDisabled godoc
// @Summary Disable or re-enable an account
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body SetDisabledRequest true "disabled flag"
// @Success 200 {object} util.Response{data=model.User}
// @Router /admin/users/{id}/disabled [patch]
func (c *AdminController) SetUserDisabled(ctx *gin.Context) {
	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(
		util.GetUserFromContext(ctx),
		util.MustParseUint(ctx.Param("id")),
		map[string]interface{}{"disabled": *req.Disabled},
	)
	if err != nil {
		respondUserError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// ListUserMoods godoc
// @Summary List one user's mood entries
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.MoodEntry}
// @Router /admin/users/{id}/moods [get]
func (c *AdminController) ListUserMoods(ctx *gin.Context) {
	entries, err := c.MoodService.ListForUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// ListUserJournals godoc
// @Summary List one user's journal entries
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.JournalEntry}
// @Router /admin/users/{id}/journals [get]
func (c *AdminController) ListUserJournals(ctx *gin.Context) {
	entries, err := c.JournalService.ListForUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// ListUserQuizResults godoc
// @Summary List one user's quiz results
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /admin/users/{id}/quiz-results [get]
func (c *AdminController) ListUserQuizResults(ctx *gin.Context) {
	results, err := c.QuizService.ListResultsForUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// ListAllMoods godoc
// @Summary List all mood entries across users
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.MoodEntry}
// @Router /admin/moods [get]
func (c *AdminController) ListAllMoods(ctx *gin.Context) {
	entries, err := c.MoodService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// ListAllJournals godoc
// @Summary List all journal entries across users
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.JournalEntry}
// @Router /admin/journals [get]
func (c *AdminController) ListAllJournals(ctx *gin.Context) {
	entries, err := c.JournalService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateQuizRequest true "quiz definition"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response "invalid question schema"
// @Router /admin/quizzes [post]
func (c *AdminController) CreateQuiz(ctx *gin.Context) {
	var req service.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /admin/quizzes/{id} [delete]
func (c *AdminController) DeleteQuiz(ctx *gin.Context) {
	err := c.QuizService.DeleteQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Quiz deleted successfully"})
}

// ListQuizResults godoc
// @Summary List every result recorded for one quiz
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizResult}
// @Router /admin/quizzes/{id}/results [get]
func (c *AdminController) ListQuizResults(ctx *gin.Context) {
	results, err := c.QuizService.ListResultsForQuiz(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// UpdateQuizResult godoc
// @Summary Partially update a quiz result
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "result id"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /admin/quiz-results/{id} [patch]
func (c *AdminController) UpdateQuizResult(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.UpdateResult(util.MustParseUint(ctx.Param("id")), fields)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// DeleteQuizResult godoc
// @Summary Delete a quiz result
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path int true "result id"
// @Success 200 {object} util.Response
// @Router /admin/quiz-results/{id} [delete]
func (c *AdminController) DeleteQuizResult(ctx *gin.Context) {
	err := c.QuizService.DeleteResult(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Result deleted successfully"})
}

// ListQuotes godoc
// @Summary List all quotes
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quote}
// @Router /admin/quotes [get]
func (c *AdminController) ListQuotes(ctx *gin.Context) {
	quotes, err := c.QuoteService.ListQuotes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quotes)
}

type QuoteRequest struct {
	Text      string `json:"text" binding:"required"`
	Author    string `json:"author"`
	IsEnabled *bool  `json:"isEnabled"`
}

// CreateQuote godoc
// @Summary Add a quote to the rotation
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuoteRequest true "quote"
// @Success 201 {object} util.Response{data=model.Quote}
// @Router /admin/quotes [post]
func (c *AdminController) CreateQuote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quote, err := c.QuoteService.CreateQuote(req.Text, req.Author)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, quote)
}

// UpdateQuote godoc
// @Summary Edit or toggle a quote
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quote id"
// @Param   body body QuoteRequest true "quote"
// @Success 200 {object} util.Response{data=model.Quote}
// @Router /admin/quotes/{id} [put]
func (c *AdminController) UpdateQuote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	quote, err := c.QuoteService.UpdateQuote(util.MustParseUint(ctx.Param("id")), req.Text, req.Author, enabled)
	if err != nil {
		respondEntryError(ctx, err)
		return
	}
	util.Success(ctx, quote)
}

// DeleteQuote godoc
// @Summary Remove a quote
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path int true "quote id"
// @Success 200 {object} util.Response
// @Router /admin/quotes/{id} [delete]
func (c *AdminController) DeleteQuote(ctx *gin.Context) {
	err := c.QuoteService.DeleteQuote(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondEntryError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Quote deleted successfully"})
}
