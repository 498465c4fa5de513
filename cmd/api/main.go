package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/bloghub/blog-api/docs"
	"github.com/bloghub/blog-api/internal/api"
	"github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	"github.com/bloghub/blog-api/internal/infrastructure/db/redis"
	"github.com/bloghub/blog-api/internal/pkg/config"
	"github.com/bloghub/blog-api/pkg/logger"
)

// @title        Blog API
// @version      1.0
// @description  REST API for the blog platform: auth, posts, comments, categories.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	e, err := api.NewRouter(ctx, api.RouterConfig{
		DB:                db,
		Redis:             rdb,
		JWTSecret:         cfg.JWTSecret,
		TokenTTL:          cfg.JWTTTL,
		UploadDir:         cfg.UploadDir,
		CategoryAdminOnly: cfg.CategoryAdminOnly,
		LoginMaxAttempts:  cfg.LoginMaxAttempts,
		Logger:            log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
