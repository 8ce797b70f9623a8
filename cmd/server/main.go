package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/openreel/openreel-go/internal/config"
	"github.com/openreel/openreel-go/internal/db"
	"github.com/openreel/openreel-go/internal/handler"
	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/repository"
	"github.com/openreel/openreel-go/internal/router"
	"github.com/openreel/openreel-go/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "openreel-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Anonymous view dedup survives restarts only when Redis is up; the
	// in-memory fallback keeps the at-most-once rule within a process.
	var marker service.ViewMarker
	if rdb := cache.Client(); rdb != nil {
		marker = service.NewRedisViewMarker(rdb)
	} else {
		marker = service.NewMemoryViewMarker()
	}

	handler.InitMetrics(pool)

	// Repositories
	users := repository.NewUserRepo(pool)
	videos := repository.NewVideoRepo(pool)
	reactions := repository.NewReactionRepo(pool)
	history := repository.NewHistoryRepo(pool)
	channels := repository.NewChannelRepo(pool)
	playlists := repository.NewPlaylistRepo(pool)

	// Services
	authSvc := service.NewAuthService(users, cfg.JWTSecret)
	userSvc := service.NewUserService(users, videos, reactions)
	videoSvc := service.NewVideoService(videos, channels, reactions, cache)
	reactionSvc := service.NewReactionService(videos, reactions)
	viewSvc := service.NewViewService(videos, history, marker, cfg.IPSalt)
	historySvc := service.NewHistoryService(history)
	channelSvc := service.NewChannelService(channels, cache)
	playlistSvc := service.NewPlaylistService(playlists, videos)

	h := &router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, userSvc),
		Video:    handler.NewVideoHandler(videoSvc, viewSvc),
		Reaction: handler.NewReactionHandler(reactionSvc),
		User:     handler.NewUserHandler(userSvc, historySvc),
		Channel:  handler.NewChannelHandler(channelSvc),
		Playlist: handler.NewPlaylistHandler(playlistSvc),
		Stats:    handler.NewStatsHandler(userSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "OpenReel API",
		ServerHeader: "OpenReel",
	})

	router.Setup(app, h, cfg.CORSOrigins, cfg.JWTSecret)

	go func() {
		middleware.Logger.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Msg("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	middleware.Logger.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
