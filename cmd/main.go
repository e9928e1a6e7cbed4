package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/config"
	"github.com/skillforge-dev/skillforge/database"
	_ "github.com/skillforge-dev/skillforge/docs" // Swagger docs - auto-generated
	"github.com/skillforge-dev/skillforge/internal/controller"
	"github.com/skillforge-dev/skillforge/internal/logger"
	"github.com/skillforge-dev/skillforge/internal/middleware"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"github.com/skillforge-dev/skillforge/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SkillForge API
// @version 1.0
// @description Career-development API: profiles, portfolio projects, resume parsing, AI mock interviews and learning recommendations.
// @host localhost:5000
// @BasePath /api/v1
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
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewSessionRepository,
			repository.NewUserRepository,
			repository.NewProjectRepository,
			repository.NewLearningPathRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGeminiService,
			service.NewEmbeddingService,
			service.NewInterviewService,
			service.NewResumeService,
			service.NewLearningService,
			service.NewAuthService,
			service.NewProfileService,
			service.NewProjectService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewInterviewController,
			controller.NewAuthController,
			controller.NewProfileController,
			controller.NewProjectController,
			controller.NewResumeController,
			controller.NewLearningController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedLearningPaths),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

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
		AllowOrigins:     []string{"*"},
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

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
	authCtrl *controller.AuthController,
	profileCtrl *controller.ProfileController,
	projectCtrl *controller.ProjectController,
	resumeCtrl *controller.ResumeController,
	learningCtrl *controller.LearningController,
) {
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		authed := api.Group("")
		authed.Use(middleware.Auth(cfg))
		{
			authed.GET("/profile", profileCtrl.GetProfile)
			authed.PUT("/profile", profileCtrl.UpdateProfile)

			authed.POST("/projects", projectCtrl.CreateProject)
			authed.GET("/projects", projectCtrl.ListProjects)
			authed.PUT("/projects/:project_id", projectCtrl.UpdateProject)
			authed.DELETE("/projects/:project_id", projectCtrl.DeleteProject)

			authed.POST("/resume/upload", resumeCtrl.UploadResume)
			authed.POST("/resume/parse", resumeCtrl.ParseResume)

			authed.POST("/interview/start", interviewCtrl.StartInterview)
			authed.POST("/interview/answer", interviewCtrl.SubmitAnswer)
			authed.POST("/interview/end", interviewCtrl.EndInterview)
			authed.GET("/interview/sessions", interviewCtrl.ListSessions)
			authed.GET("/interview/sessions/:session_id", interviewCtrl.GetSession)

			authed.GET("/learning/recommendations", learningCtrl.GetRecommendations)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SkillForge API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Project{},
		&model.LearningPath{},
		&model.InterviewSession{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedLearningPaths(learningSvc service.LearningService) error {
	return learningSvc.Seed()
}
