package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/service"
)

type UserHandler struct {
	users   *service.UserService
	history *service.HistoryService
}

func NewUserHandler(users *service.UserService, history *service.HistoryService) *UserHandler {
	return &UserHandler{users: users, history: history}
}

// History handles GET /api/users/history?page=N&limit=M
// Out-of-range page and limit values are clamped, not rejected.
func (h *UserHandler) History(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	page := fiber.Query[int](c, "page")
	limit := fiber.Query[int](c, "limit")

	result, err := h.history.Page(c.Context(), userID, page, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
	}
	return c.JSON(result)
}

// ClearHistory handles DELETE /api/users/history
func (h *UserHandler) ClearHistory(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	if err := h.history.Clear(c.Context(), userID); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear history")
	}
	return c.JSON(fiber.Map{"message": "Watch history cleared"})
}

// LikedVideos handles GET /api/users/liked-videos
func (h *UserHandler) LikedVideos(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	videos, err := h.users.LikedVideos(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list liked videos")
	}
	return c.JSON(videos)
}

// WatchLaterList handles GET /api/users/watch-later
func (h *UserHandler) WatchLaterList(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	videos, err := h.users.WatchLaterList(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list watch later")
	}
	return c.JSON(videos)
}

// WatchLaterAdd handles POST /api/users/watch-later/:videoId
func (h *UserHandler) WatchLaterAdd(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID := middleware.UserID(c)

	if err := h.users.WatchLaterAdd(c.Context(), userID, videoID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add to watch later")
	}
	return c.JSON(fiber.Map{"message": "Added to watch later"})
}

// WatchLaterRemove handles DELETE /api/users/watch-later/:videoId
func (h *UserHandler) WatchLaterRemove(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID := middleware.UserID(c)

	if err := h.users.WatchLaterRemove(c.Context(), userID, videoID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not in watch later")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove from watch later")
	}
	return c.JSON(fiber.Map{"message": "Removed from watch later"})
}
