package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/placement-api/api/swagger"
	"github.com/noah-isme/placement-api/internal/handler"
	"github.com/noah-isme/placement-api/internal/repository"
	"github.com/noah-isme/placement-api/internal/router"
	"github.com/noah-isme/placement-api/internal/service"
	"github.com/noah-isme/placement-api/pkg/cache"
	"github.com/noah-isme/placement-api/pkg/config"
	"github.com/noah-isme/placement-api/pkg/database"
	"github.com/noah-isme/placement-api/pkg/logger"
)

// @title Placement API
// @version 1.0.0
// @description Campus placement data store
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		logr.Info("schema ensured")
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	validate := validator.New()
	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled && cacheRepo.Enabled())

	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	authSvc := service.NewAuthService(users, cacheSvc, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	profileSvc := service.NewProfileService(students, repository.NewCollegeRepository(db), repository.NewRecruiterRepository(db), cacheSvc, validate, logr)
	jobSvc := service.NewJobService(jobRepo, cacheSvc, validate, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, jobRepo, notificationRepo, db, cacheSvc, validate, logr)
	placementSvc := service.NewPlacementService(repository.NewPlacementRepository(db), students, jobRepo, db, cacheSvc, metrics, validate, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Repo:     repository.NewDashboardRepository(db),
		Profiles: profileSvc,
		Cache:    cacheSvc,
		Metrics:  metrics,
		Logger:   logr,
		Config:   service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})

	engine := router.New(router.Deps{
		Config:  cfg,
		Logger:  logr,
		Tokens:  authSvc,
		Metrics: metrics,
		Audit:   repository.NewAuditRepository(db),
	}, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Profile:      handler.NewProfileHandler(profileSvc),
		Job:          handler.NewJobHandler(jobSvc, profileSvc),
		Application:  handler.NewApplicationHandler(applicationSvc, profileSvc),
		Placement:    handler.NewPlacementHandler(placementSvc, service.NewExportService(placementSvc, profileSvc, logr), profileSvc),
		Skill:        handler.NewSkillHandler(service.NewSkillService(repository.NewSkillRepository(db), validate), profileSvc),
		Feedback:     handler.NewFeedbackHandler(service.NewFeedbackService(repository.NewFeedbackRepository(db), applicationRepo, validate, logr), profileSvc),
		Credential:   handler.NewCredentialHandler(service.NewCredentialService(repository.NewCredentialRepository(db), students, validate), profileSvc),
		Compliance:   handler.NewComplianceHandler(service.NewComplianceService(repository.NewComplianceRepository(db), validate), profileSvc),
		Notification: handler.NewNotificationHandler(service.NewNotificationService(notificationRepo, validate), profileSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Metrics:      handler.NewMetricsHandler(metrics, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
