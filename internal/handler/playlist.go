package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/service"
)

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /api/playlists
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req model.CreatePlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidatePlaylistName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	p, err := h.svc.Create(c.Context(), userID, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create playlist")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListMine handles GET /api/playlists
func (h *PlaylistHandler) ListMine(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	playlists, err := h.svc.ListMine(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list playlists")
	}
	return c.JSON(playlists)
}

// Get handles GET /api/playlists/:id
func (h *PlaylistHandler) Get(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	p, err := h.svc.Get(c.Context(), playlistID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Playlist not found")
		}
		if errors.Is(err, service.ErrPrivatePlaylist) {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Playlist is private")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load playlist")
	}
	return c.JSON(p)
}

// Delete handles DELETE /api/playlists/:id
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	err := h.svc.Delete(c.Context(), playlistID, middleware.UserID(c))
	if err != nil {
		return h.writeMutationError(c, err, "Failed to delete playlist")
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddVideo handles POST /api/playlists/:id/videos/:videoId
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	err := h.svc.AddVideo(c.Context(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return h.writeMutationError(c, err, "Failed to add video to playlist")
	}
	return c.JSON(fiber.Map{"message": "Video added to playlist"})
}

// RemoveVideo handles DELETE /api/playlists/:id/videos/:videoId
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	playlistID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	err := h.svc.RemoveVideo(c.Context(), playlistID, videoID, middleware.UserID(c))
	if err != nil {
		return h.writeMutationError(c, err, "Failed to remove video from playlist")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *PlaylistHandler) writeMutationError(c fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Not found")
	}
	if errors.Is(err, service.ErrNotOwner) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Only the owner can modify a playlist")
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}
