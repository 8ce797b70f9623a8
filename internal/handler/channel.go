package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Create handles POST /api/channels
func (h *ChannelHandler) Create(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req model.CreateChannelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateChannelName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	ch, err := h.svc.Create(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyHasChannel) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", "User already has a channel")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create channel")
	}

	return c.Status(fiber.StatusCreated).JSON(ch)
}

// GetMine handles GET /api/channels/me — the caller's own channel, resolved
// from the auth token rather than a path id.
func (h *ChannelHandler) GetMine(c fiber.Ctx) error {
	return h.respondChannel(c, middleware.UserID(c))
}

// GetByUserID handles GET /api/channels/:userId
func (h *ChannelHandler) GetByUserID(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	return h.respondChannel(c, userID)
}

func (h *ChannelHandler) respondChannel(c fiber.Ctx, userID string) error {
	ch, cached, err := h.svc.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load channel")
	}
	if cached != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}
	return c.JSON(ch)
}

// CheckStatus handles GET /api/channels/check/status — whether the caller
// owns a channel, without fetching it.
func (h *ChannelHandler) CheckStatus(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	has, err := h.svc.HasChannel(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check channel status")
	}
	return c.JSON(fiber.Map{"hasChannel": has})
}

// Update handles PUT /api/channels
func (h *ChannelHandler) Update(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req model.UpdateChannelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.Name != nil {
		name, errMsg := middleware.ValidateChannelName(*req.Name)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Name = &name
	}

	ch, err := h.svc.Update(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update channel")
	}
	return c.JSON(ch)
}
