package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey is the fiber.Locals key under which the authenticated user id is
// stored. Handlers read it through UserID(c) only.
const userIDKey = "userID"

// TokenCookie is the cookie name the login handler sets and both middlewares
// read. The Authorization: Bearer header works as an alternative transport.
const TokenCookie = "token"

// UserID returns the authenticated caller's user id, or "" for anonymous
// requests that passed through OptionalAuth.
func UserID(c fiber.Ctx) string {
	if v, ok := c.Locals(userIDKey).(string); ok {
		return v
	}
	return ""
}

// RequireAuth verifies the request's token and stores the user id in Locals.
// Requests without a valid token are rejected.
func RequireAuth(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, ok := verify(c, secret)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth verifies a token when one is present but never rejects the
// request. Anonymous callers proceed with no user id in Locals; view
// accounting falls back to session-scoped tracking for them.
func OptionalAuth(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if userID, ok := verify(c, secret); ok {
			c.Locals(userIDKey, userID)
		}
		return c.Next()
	}
}

// verify extracts the token from the cookie or the Authorization header and
// returns the subject claim.
func verify(c fiber.Ctx, secret string) (string, bool) {
	raw := c.Cookies(TokenCookie)
	if raw == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if raw == "" {
		return "", false
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
