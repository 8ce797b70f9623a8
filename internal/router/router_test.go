package router

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/openreel/openreel-go/internal/handler"
	"github.com/openreel/openreel-go/internal/middleware"
)

var setupOnce sync.Once

// newTestApp builds the real route table with empty handler dependencies.
// Requests in these tests are stopped by validation or the auth gate, so no
// handler ever reaches its service.
func newTestApp() *fiber.App {
	setupOnce.Do(func() {
		middleware.InitLogger("error", "router-test")
		handler.InitMetrics(nil)
	})

	app := fiber.New()
	Setup(app, &Handlers{
		Auth:     handler.NewAuthHandler(nil, nil),
		Video:    handler.NewVideoHandler(nil, nil),
		Reaction: handler.NewReactionHandler(nil),
		User:     handler.NewUserHandler(nil, nil),
		Channel:  handler.NewChannelHandler(nil),
		Playlist: handler.NewPlaylistHandler(nil),
		Stats:    handler.NewStatsHandler(nil),
		Health:   handler.NewHealthHandler(nil, nil),
	}, "*", "test-secret")
	return app
}

func TestOwnChannelRouteIsServed(t *testing.T) {
	app := newTestApp()

	// "me" must resolve to its own authenticated route, not fall through to
	// /channels/:userId where it would fail UUID validation with a 400.
	req := httptest.NewRequest("GET", "/api/channels/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("GET /api/channels/me without token = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestChannelStatusRouteIsServed(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/channels/check/status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("GET /api/channels/check/status without token = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestChannelLookupRejectsMalformedID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/channels/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("GET /api/channels/not-a-uuid = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
