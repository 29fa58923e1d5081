package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/talent-agency-service/api"
	"github.com/maxviazov/talent-agency-service/internal/auth"
	"github.com/maxviazov/talent-agency-service/internal/cli"
	"github.com/maxviazov/talent-agency-service/internal/config"
	"github.com/maxviazov/talent-agency-service/internal/handler"
	"github.com/maxviazov/talent-agency-service/internal/logger"
	"github.com/maxviazov/talent-agency-service/internal/metrics"
	"github.com/maxviazov/talent-agency-service/internal/middleware"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/maxviazov/talent-agency-service/internal/repository/postgres"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/internal/upload"
	"github.com/maxviazov/talent-agency-service/migrations"
)

func main() {
	// Load application config
	cfg, err := config.Load(cli.DefaultConfigPath())
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
	appLogger.Info().Msg("service stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		return err
	}
	defer repo.Close()
	pool := repo.Pool()

	if cfg.App.AutoMigrate {
		if _, err := postgres.NewMigrator(pool, migrations.FS, appLogger).Up(ctx); err != nil {
			return err
		}
	}

	revoker, closeRevoker := auth.NewRevoker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() { _ = closeRevoker() }()
	if cfg.Redis.Addr == "" {
		appLogger.Warn().Msg("redis not configured: token revocation is kept in memory and lost on restart")
	}

	tx := postgres.NewTxManager(pool)
	models := postgres.NewModelRepository(pool)
	archives := postgres.NewArchiveRepository(pool)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.SessionTTL)

	deps := handler.Dependencies{
		Pinger:       postgres.NewPinger(pool),
		Models:       service.NewModelService(models, archives, tx, appLogger),
		Archives:     service.NewArchiveService(archives, models, tx, appLogger),
		Applications: service.NewApplicationService(postgres.NewApplicationRepository(pool), tx, appLogger),
		Castings:     service.NewCastingService(postgres.NewCastingRepository(pool), tx, appLogger),
		Admins:       service.NewAdminService(postgres.NewAdminRepository(pool), tokens, revoker, appLogger),
		Uploads:      upload.New(cfg.Upload, appLogger),
		Cookie: handler.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.SecureCookie,
			TTL:    cfg.Auth.SessionTTL,
		},
		OpenAPI: api.OpenAPI,
	}

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(appLogger), metrics.Middleware())
	handler.Register(r, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("service started")
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

	appLogger.Info().Dur("timeout", cfg.App.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}
