package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/service"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/infrastructure/config"
	mongodb "github.com/dangonz2277-glitch/Veterinaria-FInal/internal/infrastructure/db/mongo"
	redisdb "github.com/dangonz2277-glitch/Veterinaria-FInal/internal/infrastructure/db/redis"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/infrastructure/queue"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Veterinary Clinic API
// @version      1.0
// @description  Staff authentication and clinic management backend.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer redisClient.Close()

	limiter := redisdb.NewLoginLimiter(redisClient, cfg.Throttle.MaxFailures, cfg.Throttle.Window)

	auditService := service.NewAuditTrailService(mongodb.NewAuditRepository(db))
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Mongo:        db,
		Redis:        redisClient,
		Logger:       log,
		JWTSecret:    cfg.JWTSecret,
		BcryptCost:   cfg.BcryptCost,
		LoginLimiter: limiter,
		AuditSink:    dispatcher,
		AuditService: auditService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
