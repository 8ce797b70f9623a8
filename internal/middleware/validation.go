package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Field length limits matching database schema constraints.
const (
	MaxUsernameLen    = 32  // users.username VARCHAR(32)
	MaxEmailLen       = 254 // users.email VARCHAR(254)
	MaxChannelNameLen = 64  // channels.name VARCHAR(64)
	MaxTitleLen       = 200 // videos.title VARCHAR(200)
	MaxPlaylistName   = 100 // playlists.name VARCHAR(100)
	MinPasswordLen    = 8
	MinChannelNameLen = 3
)

var (
	// usernameRe matches account handles: alphanumeric, dash, underscore.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// emailRe is a light syntactic check; real verification happens by mail.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// channelNameRe matches channel display names: alphanumeric and spaces.
	channelNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateID checks that an identifier is a well-formed UUID and returns its
// canonical lowercase form. This runs before any database round-trip so a
// malformed id is a clean 400, never a driver error — and every membership
// comparison downstream sees one canonical representation.
func ValidateID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "id is required"
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", "invalid id format"
	}
	return parsed.String(), ""
}

// ValidateUsername checks that a username is well-formed and within DB limits.
func ValidateUsername(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "username is required"
	}
	if len(name) > MaxUsernameLen {
		return "", "username must be at most 32 characters"
	}
	if !usernameRe.MatchString(name) {
		return "", "username contains invalid characters"
	}
	return name, ""
}

// ValidateEmail checks basic email syntax.
func ValidateEmail(email string) (string, string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email is too long"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not valid"
	}
	return email, ""
}

// ValidatePassword enforces the minimum length. No other shape rules.
func ValidatePassword(pw string) string {
	if len(pw) < MinPasswordLen {
		return "password must be at least 8 characters"
	}
	return ""
}

// ValidateChannelName checks display-name rules: 3+ characters, letters,
// digits and spaces only.
func ValidateChannelName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if len(name) < MinChannelNameLen {
		return "", "channel name must be at least 3 characters long"
	}
	if len(name) > MaxChannelNameLen {
		return "", "channel name must be at most 64 characters"
	}
	if !channelNameRe.MatchString(name) {
		return "", "channel name contains invalid characters"
	}
	return name, ""
}

// ValidateTitle checks a video title.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 200 characters"
	}
	return title, ""
}

// ValidatePlaylistName checks a playlist name.
func ValidatePlaylistName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "playlist name is required"
	}
	if len(name) > MaxPlaylistName {
		return "", "playlist name must be at most 100 characters"
	}
	return name, ""
}

// ValidateURL requires an http(s) URL for hosted media references.
func ValidateURL(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "url is required"
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "", "url must be http or https"
	}
	return raw, ""
}
