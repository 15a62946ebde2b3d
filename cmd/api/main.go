package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hospital-staff-service/internal/api/http"
	"github.com/spec-kit/hospital-staff-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/config"
	"github.com/spec-kit/hospital-staff-service/internal/events"
	"github.com/spec-kit/hospital-staff-service/internal/mailer"
	"github.com/spec-kit/hospital-staff-service/internal/observability"
	"github.com/spec-kit/hospital-staff-service/internal/persistence"
	"github.com/spec-kit/hospital-staff-service/internal/repository"
	"github.com/spec-kit/hospital-staff-service/internal/service"
	"github.com/spec-kit/hospital-staff-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	hospitalRepo := repository.NewHospitalRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)

	sessionStore := auth.NewRedisSessionStore(redis.Client)
	sessionManager := auth.NewSessionManager(sessionStore, cfg.Auth.SessionTTL())

	authService := service.NewAuthService(service.AuthDependencies{
		HospitalRepo: hospitalRepo,
		StaffRepo:    staffRepo,
		Sessions:     sessionManager,
		BcryptCost:   cfg.Auth.BcryptCost,
	})

	dispatcher := events.NewInMemoryDispatcher()
	staffService := service.NewStaffService(service.StaffDependencies{
		StaffRepo:    staffRepo,
		HospitalRepo: hospitalRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
		BcryptCost:   cfg.Auth.BcryptCost,
	})

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	notificationService := service.NewNotificationService(dispatcher, smtpMailer, logger, metrics)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(sessionManager)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Hospitals:      handlers.NewHospitalHandler(authService),
		Sessions:       handlers.NewSessionHandler(authService),
		Staff:          handlers.NewStaffHandler(staffService, authService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
