package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/service"
)

type VideoHandler struct {
	videos *service.VideoService
	views  *service.ViewService
}

func NewVideoHandler(videos *service.VideoService, views *service.ViewService) *VideoHandler {
	return &VideoHandler{videos: videos, views: views}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	videos, cached, err := h.videos.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}
	if cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	return c.JSON(videos)
}

// Create handles POST /api/videos
func (h *VideoHandler) Create(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req model.CreateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title

	videoURL, errMsg := middleware.ValidateURL(req.VideoURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.VideoURL = videoURL

	video, err := h.videos.Create(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNeedsChannel) {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "CHANNEL_REQUIRED", "Create a channel before uploading videos")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create video")
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// Get handles GET /api/videos/:id — serves the video and applies view
// accounting for the caller. Identified viewers also get a watch-history
// entry appended.
func (h *VideoHandler) Get(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	video, err := h.videos.Get(c.Context(), videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load video")
	}

	counted, err := h.views.RecordView(c.Context(), videoID, middleware.UserID(c), c.IP())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record view")
	}
	if counted {
		// The increment committed after the row was read; reflect it so the
		// viewer sees their own view.
		video.Views++
		Metrics.ViewsCounted.Inc()
	}

	return c.JSON(video)
}

// GetUserVideos handles GET /api/videos/user/videos — the caller's uploads.
func (h *VideoHandler) GetUserVideos(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	videos, err := h.videos.ListByCreator(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNeedsChannel) {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "CHANNEL_REQUIRED", "Create a channel to manage videos")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}
	return c.JSON(videos)
}

// Recommended handles GET /api/videos/:id/recommended
func (h *VideoHandler) Recommended(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videos, err := h.videos.Recommended(c.Context(), videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load recommendations")
	}
	return c.JSON(videos)
}

// Delete handles DELETE /api/videos/:id
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID := middleware.UserID(c)

	err := h.videos.Delete(c.Context(), videoID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		if errors.Is(err, service.ErrNotOwner) {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Only the uploader can delete a video")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete video")
	}

	return c.JSON(fiber.Map{"success": true})
}
