package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/service"
)

type StatsHandler struct {
	users *service.UserService
}

func NewStatsHandler(users *service.UserService) *StatsHandler {
	return &StatsHandler{users: users}
}

// GetStats handles GET /api/stats — aggregate platform counters.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.users.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
	}
	return c.JSON(stats)
}
