package app

import (
	"mindmate_backend/docs"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/middleware"
	"mindmate_backend/internal/model"
	"mindmate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerUserRoutes(router, c, repos)
	a.registerAdminRoutes(router, c, repos)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/daily-quote", c.quote.GetDailyQuote)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PATCH("/users/:id", c.user.UpdateProfile)
		authGroup.DELETE("/users/:id", c.user.DeleteAccount)
		authGroup.POST("/users/:id/change-password", c.user.ChangePassword)
		authGroup.PUT("/users/:id/settings/notifications", c.user.UpdateSettings("notifications"))
		authGroup.PUT("/users/:id/settings/appearance", c.user.UpdateSettings("appearance"))
		authGroup.PUT("/users/:id/settings/privacy", c.user.UpdateSettings("privacy"))
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		authGroup.POST("/user-stats", c.user.RecordStats)
		authGroup.GET("/user-stats/:userId", c.user.GetStats)

		authGroup.POST("/moods", c.mood.CreateEntry)
		authGroup.GET("/moods", c.mood.ListEntries)
		authGroup.DELETE("/moods/:id", c.mood.DeleteEntry)

		authGroup.POST("/journals", c.journal.CreateEntry)
		authGroup.GET("/journals", c.journal.ListEntries)
		authGroup.GET("/journals/:id", c.journal.GetEntry)
		authGroup.DELETE("/journals/:id", c.journal.DeleteEntry)

		authGroup.POST("/goals", c.goal.CreateGoal)
		authGroup.GET("/goals", c.goal.ListGoals)
		authGroup.PATCH("/goals/:id/complete", c.goal.SetCompleted)
		authGroup.DELETE("/goals/:id", c.goal.DeleteGoal)

		authGroup.GET("/quizzes", c.quiz.ListQuizzes)
		authGroup.GET("/quizzes/type/:type", c.quiz.ListByType)
		authGroup.GET("/quizzes/:id", c.quiz.GetQuiz)
		authGroup.POST("/quiz-results", c.quiz.SubmitQuiz)
		authGroup.GET("/quiz-results", c.quiz.ListMyResults)
		authGroup.GET("/quiz-results/:id", c.quiz.GetResult)

		// Websocket clients authenticate via ?token= since browsers cannot
		// set headers on the upgrade request.
		authGroup.GET("/ws", c.notification.Connect)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(a.Config),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.RoleAdmin),
	)
	{
		admin.GET("/stats", c.admin.GetStats)
		admin.GET("/analytics/moods", c.admin.GetMoodAnalytics)
		admin.GET("/analytics/activity", c.admin.GetUserActivity)

		admin.GET("/users", c.admin.ListUsers)
		admin.PATCH("/users/:id/disabled", c.admin.SetUserDisabled)
		admin.GET("/users/:id/moods", c.admin.ListUserMoods)
		admin.GET("/users/:id/journals", c.admin.ListUserJournals)
		admin.GET("/users/:id/quiz-results", c.admin.ListUserQuizResults)

		admin.GET("/moods", c.admin.ListAllMoods)
		admin.GET("/journals", c.admin.ListAllJournals)

		admin.POST("/quizzes", c.admin.CreateQuiz)
		admin.DELETE("/quizzes/:id", c.admin.DeleteQuiz)
		admin.GET("/quizzes/:id/results", c.admin.ListQuizResults)
		admin.PATCH("/quiz-results/:id", c.admin.UpdateQuizResult)
		admin.DELETE("/quiz-results/:id", c.admin.DeleteQuizResult)

		admin.GET("/quotes", c.admin.ListQuotes)
		admin.POST("/quotes", c.admin.CreateQuote)
		admin.PUT("/quotes/:id", c.admin.UpdateQuote)
		admin.DELETE("/quotes/:id", c.admin.DeleteQuote)
	}
}
