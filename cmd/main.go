package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/paeslab/ensayo-api/config"
	"github.com/paeslab/ensayo-api/database"
	_ "github.com/paeslab/ensayo-api/docs" // Swagger docs - auto-generated
	userctrl "github.com/paeslab/ensayo-api/internal/controller/user"
	"github.com/paeslab/ensayo-api/internal/logger"
	"github.com/paeslab/ensayo-api/internal/middleware"
	"github.com/paeslab/ensayo-api/internal/model"
	"github.com/paeslab/ensayo-api/internal/repository"
	"github.com/paeslab/ensayo-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PAES Ensayos API
// @version 1.0
// @description Practice platform for the PAES university-admission exam: timed mock exams with reproducible composition, practice rounds and review.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewRand,              // Injectable RNG for question sampling
		),

		// Repositories layer
		fx.Provide(
			repository.NewAttemptRepository,
			repository.NewAttemptAnswerRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewTopicRepository,
		),

		// Services layer
		fx.Provide(
			service.NewExamSessionService,
			service.NewExamAttemptService,
			service.NewExamQueryService,
			service.NewPracticeService,
			service.NewTopicService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewExamController,
			userctrl.NewPracticeController,
			userctrl.NewCatalogController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewRand seeds the RNG used by exam sampling. It is provided here so tests
// can construct services with a deterministic source instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through zerolog instead of Gin's default logger
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *userctrl.ExamController,
	practiceCtrl *userctrl.PracticeController,
	catalogCtrl *userctrl.CatalogController,
) {
	api := router.Group("/api")

	// Timed exam engine (authenticated)
	exams := api.Group("/exams", middleware.RequireAuth(cfg.JWTSecret))
	{
		// Static routes before parameterized ones
		exams.GET("/active", examCtrl.GetActiveExams)
		exams.GET("/history", examCtrl.GetExamHistory)
		exams.POST("/start", examCtrl.StartExam)
		exams.POST("/:attemptId/retake", examCtrl.RetakeExam)
		exams.GET("/:attemptId/progress", examCtrl.GetExamProgress)
		exams.POST("/:attemptId/answer", examCtrl.AnswerExam)
		exams.POST("/:attemptId/finish", examCtrl.FinishExam)
		exams.GET("/:attemptId/result", examCtrl.GetExamResult)
		exams.GET("/:attemptId/detail", examCtrl.GetExamDetail)
	}

	// Practice rounds (authenticated)
	answers := api.Group("/answers", middleware.RequireAuth(cfg.JWTSecret))
	{
		answers.POST("", practiceCtrl.SubmitPractice)
		answers.GET("/history", practiceCtrl.GetPracticeHistory)
	}

	// Question catalog (public)
	topics := api.Group("/topics")
	{
		topics.GET("/all", catalogCtrl.GetAllTopics)
		topics.GET("/:id/questions", catalogCtrl.GetQuestionsByTopic)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PAES Ensayos API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Unit{},
		&model.Topic{},
		&model.Question{},
		&model.Option{},
		&model.Attempt{},
		&model.AttemptAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
