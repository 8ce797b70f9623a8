package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/openreel/openreel-go/internal/middleware"
	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/service"
)

type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Username = username

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Email = email

	if errMsg := middleware.ValidatePassword(req.Password); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	user, err := h.auth.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredentialsTaken) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", "Username or email already in use")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
	}
	setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(model.LoginResponse{User: *user, Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Email = email

	if req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "email and password are required")
	}

	resp, err := h.auth.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
	}
	setTokenCookie(c, resp.Token)

	return c.JSON(resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// CheckStatus handles GET /api/auth/check/status — reports whether the
// caller holds a valid token. Runs behind OptionalAuth so it never 401s.
func (h *AuthHandler) CheckStatus(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	user, err := h.users.Lookup(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Valid token for a deleted account.
			return c.JSON(fiber.Map{"authenticated": false})
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check status")
	}
	return c.JSON(fiber.Map{"authenticated": true, "user": user})
}

// Me handles GET /api/auth/me — returns the authenticated account.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := h.users.Lookup(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
	}
	return c.JSON(user)
}

func setTokenCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(service.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
