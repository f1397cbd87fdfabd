package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/metaflowia/user-api/internal/api"
	"github.com/metaflowia/user-api/internal/core/service"
	mongodb "github.com/metaflowia/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/metaflowia/user-api/internal/infrastructure/db/redis"
	"github.com/metaflowia/user-api/internal/pkg/config"
	"github.com/metaflowia/user-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret)
	authSvc := service.NewAuthService(repo, hasher, tokens, cfg.TokenTTL)
	regSvc := service.NewRegistrationService(repo, hasher, redisdb.NewGuestSequence(rdb))
	userSvc := service.NewUserService(repo, hasher)

	if err := userSvc.EnsureDefaultAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(api.Dependencies{
		DB:           db,
		Redis:        rdb,
		Auth:         authSvc,
		Registration: regSvc,
		Users:        userSvc,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("user api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := e.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
