package app

import (
	"context"
	"log"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/controller"
	"mindmate_backend/internal/repository"
	"mindmate_backend/internal/service"
	"mindmate_backend/pkg/database"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"
	"mindmate_backend/pkg/security"
	"mindmate_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	mood       *repository.MoodRepository
	journal    *repository.JournalRepository
	goal       *repository.GoalRepository
	stats      *repository.StatsRepository
	quiz       *repository.QuizRepository
	quizResult *repository.QuizResultRepository
	quote      *repository.QuoteRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	mood      *service.MoodService
	journal   *service.JournalService
	goal      *service.GoalService
	quiz      *service.QuizService
	quote     *service.QuoteService
	analytics *service.AnalyticsService
	storage   service.StorageProvider
	hub       *service.NotificationHub
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	mood         *controller.MoodController
	journal      *controller.JournalController
	goal         *controller.GoalController
	quiz         *controller.QuizController
	quote        *controller.QuoteController
	admin        *controller.AdminController
	health       *controller.HealthController
	notification *controller.NotificationController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		mood:       repository.NewMoodRepository(db),
		journal:    repository.NewJournalRepository(db),
		goal:       repository.NewGoalRepository(db),
		stats:      repository.NewStatsRepository(db),
		quiz:       repository.NewQuizRepository(db),
		quizResult: repository.NewQuizResultRepository(db),
		quote:      repository.NewQuoteRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage provider", zap.Error(err))
	}

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		user:      service.NewUserService(repos.user, repos.stats),
		mood:      service.NewMoodService(repos.mood),
		journal:   service.NewJournalService(repos.journal),
		goal:      service.NewGoalService(repos.goal),
		quiz:      service.NewQuizService(repos.quiz, repos.quizResult),
		quote:     service.NewQuoteService(repos.quote, rdb),
		analytics: service.NewAnalyticsService(repos.analytics, rdb),
		storage:   storage,
		hub:       service.NewNotificationHub(),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user, s.storage),
		mood:         controller.NewMoodController(s.mood),
		journal:      controller.NewJournalController(s.journal),
		goal:         controller.NewGoalController(s.goal),
		quiz:         controller.NewQuizController(s.quiz, s.hub),
		quote:        controller.NewQuoteController(s.quote),
		admin:        controller.NewAdminController(s.analytics, s.user, s.mood, s.journal, s.quiz, s.quote),
		health:       controller.NewHealthController(db, rdb),
		notification: controller.NewNotificationController(s.hub),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis only backs caches and day pinning; the app degrades without it.
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	if err := bootstrapAccounts(&cfg.Bootstrap, repos.user); err != nil {
		logger.Log.Fatal("Failed to bootstrap accounts", zap.Error(err))
	}

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
