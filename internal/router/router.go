package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/openreel/openreel-go/internal/handler"
	"github.com/openreel/openreel-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Video    *handler.VideoHandler
	Reaction *handler.ReactionHandler
	User     *handler.UserHandler
	Channel  *handler.ChannelHandler
	Playlist *handler.PlaylistHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, jwtSecret string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	requireAuth := middleware.RequireAuth(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	authLimiter := middleware.NewAuthRateLimiter().Handler()
	videoLimiter := middleware.NewVideoRateLimiter().Handler()
	reactionLimiter := middleware.NewReactionRateLimiter().Handler()
	uploadLimiter := middleware.NewUploadRateLimiter().Handler()
	statsLimiter := middleware.NewStatsRateLimiter().Handler()

	// Health checks and metrics (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Auth routes
	api.Post("/auth/register", h.Auth.Register, authLimiter)
	api.Post("/auth/login", h.Auth.Login, authLimiter)
	api.Post("/auth/logout", h.Auth.Logout)
	api.Get("/auth/check/status", h.Auth.CheckStatus, optionalAuth)
	api.Get("/auth/me", h.Auth.Me, requireAuth)

	// Video routes. Fetching a single video is open to anonymous viewers;
	// their views are tracked per session, not per account.
	api.Get("/videos", h.Video.List, videoLimiter)
	api.Post("/videos", h.Video.Create, requireAuth, uploadLimiter)
	api.Get("/videos/user/videos", h.Video.GetUserVideos, requireAuth)
	api.Get("/videos/:id", h.Video.Get, optionalAuth, videoLimiter)
	api.Delete("/videos/:id", h.Video.Delete, requireAuth)
	api.Get("/videos/:id/recommended", h.Video.Recommended, videoLimiter)
	api.Put("/videos/:id/like", h.Reaction.Like, requireAuth, reactionLimiter)
	api.Put("/videos/:id/dislike", h.Reaction.Dislike, requireAuth, reactionLimiter)

	// User routes (history, liked videos, watch later)
	api.Get("/users/history", h.User.History, requireAuth)
	api.Delete("/users/history", h.User.ClearHistory, requireAuth)
	api.Get("/users/liked-videos", h.User.LikedVideos, requireAuth)
	api.Get("/users/watch-later", h.User.WatchLaterList, requireAuth)
	api.Post("/users/watch-later/:videoId", h.User.WatchLaterAdd, requireAuth)
	api.Delete("/users/watch-later/:videoId", h.User.WatchLaterRemove, requireAuth)

	// Channel routes
	api.Post("/channels", h.Channel.Create, requireAuth)
	api.Put("/channels", h.Channel.Update, requireAuth)
	api.Get("/channels/me", h.Channel.GetMine, requireAuth)
	api.Get("/channels/check/status", h.Channel.CheckStatus, requireAuth)
	api.Get("/channels/:userId", h.Channel.GetByUserID)

	// Playlist routes
	api.Post("/playlists", h.Playlist.Create, requireAuth)
	api.Get("/playlists", h.Playlist.ListMine, requireAuth)
	api.Get("/playlists/:id", h.Playlist.Get, optionalAuth)
	api.Delete("/playlists/:id", h.Playlist.Delete, requireAuth)
	api.Post("/playlists/:id/videos/:videoId", h.Playlist.AddVideo, requireAuth)
	api.Delete("/playlists/:id/videos/:videoId", h.Playlist.RemoveVideo, requireAuth)

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimiter)
}
