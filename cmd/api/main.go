package main

import (
	"context"
	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/metrics"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content API for a personal portfolio site using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiter backend; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	experienceRepo := postgres.NewWorkExperienceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)
	trainingRepo := postgres.NewTrainingRepository(dbPool)
	socialRepo := postgres.NewSocialNetworkRepository(dbPool)
	toolRepo := postgres.NewToolRepository(dbPool)
	contactInfoRepo := postgres.NewContactInfoRepository(dbPool)
	contactMessageRepo := postgres.NewContactMessageRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - new message notifications disabled")
	}

	// 7. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	experienceUC := usecase.NewWorkExperienceUsecase(experienceRepo, profileRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, validate)
	educationUC := usecase.NewEducationUsecase(educationRepo, profileRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, profileRepo, validate)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo, profileRepo, validate)
	trainingUC := usecase.NewTrainingUsecase(trainingRepo, profileRepo, validate)
	socialUC := usecase.NewSocialNetworkUsecase(socialRepo, profileRepo, validate)
	toolUC := usecase.NewToolUsecase(toolRepo, profileRepo, validate)
	contactInfoUC := usecase.NewContactInfoUsecase(contactInfoRepo, profileRepo, validate)
	contactMessageUC := usecase.NewContactMessageUsecase(contactMessageRepo, emailService, validate)
	cvUC := usecase.NewCVUsecase(
		profileRepo, experienceRepo, skillRepo, educationRepo, projectRepo,
		certificationRepo, trainingRepo, socialRepo, toolRepo, contactInfoRepo,
	)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Metrics
	collector := metrics.NewCollector()

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:        profileUC,
		ExperienceUC:     experienceUC,
		SkillUC:          skillUC,
		EducationUC:      educationUC,
		ProjectUC:        projectUC,
		CertificationUC:  certificationUC,
		TrainingUC:       trainingUC,
		SocialNetworkUC:  socialUC,
		ToolUC:           toolUC,
		ContactInfoUC:    contactInfoUC,
		ContactMessageUC: contactMessageUC,
		CVUC:             cvUC,
		HealthUC:         healthUC,
		Metrics:          collector,
		Config:           cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
