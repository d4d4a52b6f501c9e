package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pixellake/mcgate/config"
	"github.com/pixellake/mcgate/database"
	_ "github.com/pixellake/mcgate/docs" // Swagger docs - auto-generated
	"github.com/pixellake/mcgate/internal/cache"
	adminctrl "github.com/pixellake/mcgate/internal/controller/admin"
	userctrl "github.com/pixellake/mcgate/internal/controller/user"
	"github.com/pixellake/mcgate/internal/logger"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/pixellake/mcgate/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MCGate Admin API
// @version 1.0
// @description Admin dashboard backend for Minecraft server whitelist and survey-based player registration.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewRedisClient,
			cache.NewWhitelistCache,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewSurveyRepository,
			repository.NewSubmissionRepository,
			repository.NewWhitelistRepository,
			repository.NewActivityRepository,
		),

		// Services
		fx.Provide(
			service.NewSurveyService,
			service.NewWhitelistService,
			func(repo repository.SubmissionRepository, wl service.WhitelistService, activities repository.ActivityRepository) service.SubmissionService {
				return service.NewSubmissionService(repo, wl, activities)
			},
			service.NewDashboardService,
			service.NewActivityService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewSurveyController,
			adminctrl.NewSubmissionController,
			adminctrl.NewWhitelistController,
			adminctrl.NewDashboardController,
			adminctrl.NewActivityController,
			userctrl.NewFormController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(WarmWhitelistCache),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Name"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	surveyCtrl *adminctrl.SurveyController,
	submissionCtrl *adminctrl.SubmissionController,
	whitelistCtrl *adminctrl.WhitelistController,
	dashboardCtrl *adminctrl.DashboardController,
	activityCtrl *adminctrl.ActivityController,
	formCtrl *userctrl.FormController,
) {
	adminGroup := router.Group("/api/v1/admin")
	{
		surveys := adminGroup.Group("/surveys")
		surveys.POST("", surveyCtrl.CreateSurvey)
		surveys.GET("", surveyCtrl.ListSurveys)
		surveys.GET("/:id", surveyCtrl.GetSurvey)
		surveys.PUT("/:id", surveyCtrl.UpdateSurvey)
		surveys.DELETE("/:id", surveyCtrl.DeleteSurvey)

		submissions := adminGroup.Group("/submissions")
		submissions.GET("", submissionCtrl.ListSubmissions)
		submissions.GET("/stats", submissionCtrl.SubmissionStats)
		submissions.GET("/:id", submissionCtrl.GetSubmission)
		submissions.POST("/:id/review", submissionCtrl.ReviewSubmission)

		whitelist := adminGroup.Group("/whitelist")
		whitelist.GET("", whitelistCtrl.ListWhitelist)
		whitelist.POST("", whitelistCtrl.AddWhitelistEntry)
		whitelist.GET("/stats", whitelistCtrl.WhitelistStats)
		whitelist.POST("/batch", whitelistCtrl.BatchWhitelist)
		whitelist.DELETE("/:id", whitelistCtrl.RemoveWhitelistEntry)

		adminGroup.GET("/dashboard/stats", dashboardCtrl.DashboardStats)
		adminGroup.GET("/activities", activityCtrl.ListActivities)
	}

	userGroup := router.Group("/api/v1")
	{
		userGroup.GET("/forms/:code", formCtrl.GetForm)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MCGate API server starting on port %s", cfg.Server.Port)
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
		&model.Survey{},
		&model.Question{},
		&model.Submission{},
		&model.SubmissionAnswer{},
		&model.WhitelistEntry{},
		&model.Activity{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}

// WarmWhitelistCache loads the whitelist name set into Redis at startup.
// A Redis outage must not block the API from serving.
func WarmWhitelistCache(lc fx.Lifecycle, repo repository.WhitelistRepository, c cache.WhitelistCache, activities repository.ActivityRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := service.RefreshWhitelistCache(ctx, repo, c, activities); err != nil {
				log.Warn().Err(err).Msg("Whitelist cache warm-up failed, continuing without cache")
			}
			return nil
		},
	})
}
