package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/repository"
	"github.com/openreel/openreel-go/internal/service"
)

type ReactionHandler struct {
	svc *service.ReactionService
}

func NewReactionHandler(svc *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// Like handles PUT /api/videos/:id/like
func (h *ReactionHandler) Like(c fiber.Ctx) error {
	return h.toggle(c, repository.ReactionLike)
}

// Dislike handles PUT /api/videos/:id/dislike
func (h *ReactionHandler) Dislike(c fiber.Ctx) error {
	return h.toggle(c, repository.ReactionDislike)
}

func (h *ReactionHandler) toggle(c fiber.Ctx, kind string) error {
	videoID, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID := middleware.UserID(c)

	resp, err := h.svc.Toggle(c.Context(), videoID, userID, kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update reaction")
	}

	Metrics.ReactionsTotal.WithLabelValues(kind).Inc()
	return c.JSON(resp)
}
