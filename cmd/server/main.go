package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/patitas/shelter-api/internal/api"
	"github.com/patitas/shelter-api/internal/core/ports"
	"github.com/patitas/shelter-api/internal/core/service"
	"github.com/patitas/shelter-api/internal/infrastructure/config"
	shelterdb "github.com/patitas/shelter-api/internal/infrastructure/db/mongo"
	shelterredis "github.com/patitas/shelter-api/internal/infrastructure/db/redis"
	"github.com/patitas/shelter-api/internal/infrastructure/hash"
	"github.com/patitas/shelter-api/internal/infrastructure/session"
	"github.com/patitas/shelter-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := shelterdb.Connect(ctx, shelterdb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := shelterdb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// --- Session store ---
	var rdb *redis.Client
	var sessions ports.SessionStore
	switch cfg.Session.Backend {
	case "token":
		if cfg.Session.Secret == "" {
			log.Fatal().Msg("SESSION_SECRET is required with the token session backend")
		}
		sessions = session.NewTokenStore(cfg.Session.Secret, cfg.Session.TTL)
	default:
		rdb, err = shelterredis.Connect(ctx, shelterredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = shelterredis.NewSessionStore(rdb, cfg.Session.TTL)
	}

	// --- Bootstrap admin ---
	hasher := hash.NewBcryptHasher(cfg.Session.BcryptCost)
	authService := service.NewAuthService(userRepo, shelterdb.NewAdminRepository(db), hasher, log)
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed administrator")
	}

	e := api.NewRouter(cfg, db, rdb, sessions, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("shelter api listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
