package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/igiehon-foundation/tournament-portal/internal/api"
	"github.com/igiehon-foundation/tournament-portal/internal/core/service"
	"github.com/igiehon-foundation/tournament-portal/internal/infrastructure/config"
	mongodb "github.com/igiehon-foundation/tournament-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/igiehon-foundation/tournament-portal/internal/infrastructure/db/redis"
	"github.com/igiehon-foundation/tournament-portal/internal/infrastructure/queue"
	"github.com/igiehon-foundation/tournament-portal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Collaborators ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	identityRepo := mongodb.NewIdentityRepository(db)
	adminDirectory := mongodb.NewAdminDirectory(db)
	schoolRepo := mongodb.NewSchoolRepository(db)
	registrationRepo := mongodb.NewRegistrationRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	winnerRepo := mongodb.NewWinnerRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	if err := registrationRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("registration index creation failed")
	}
	if err := identityRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("identity index creation failed")
	}

	// --- Audit trail worker ---
	auditDispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	auditDispatcher.Start(ctx)

	// --- Services ---
	svc := api.Services{
		Auth: service.NewAuthService(
			identityRepo, adminDirectory, schoolRepo, sessionStore,
			cfg.JWTSecret, cfg.TokenTTL, log,
		),
		Registrations: service.NewRegistrationService(
			registrationRepo, eventRepo, schoolRepo, auditDispatcher, log,
		),
		Events:  service.NewEventService(eventRepo),
		Winners: service.NewWinnerService(winnerRepo, eventRepo, schoolRepo, log),
	}

	e := api.NewRouter(svc, db, rdb, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
