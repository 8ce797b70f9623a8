package handler

import "testing"

func TestSanitizeEndpoint(t *testing.T) {
	const id = "6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b"

	tests := []struct {
		in   string
		want string
	}{
		{"/api/videos", "/api/videos"},
		{"/api/videos/" + id, "/api/videos/:id"},
		{"/api/videos/" + id + "/like", "/api/videos/:id/like"},
		{"/api/videos/" + id + "/dislike", "/api/videos/:id/dislike"},
		{"/api/videos/" + id + "/recommended", "/api/videos/:id/recommended"},
		{"/api/videos/user/videos", "/api/videos/user/videos"},
		{"/api/channels/me", "/api/channels/me"},
		{"/api/channels/check/status", "/api/channels/check/status"},
		{"/api/channels/" + id, "/api/channels/:userId"},
		{"/api/playlists/" + id, "/api/playlists/:id"},
		{"/api/playlists/" + id + "/videos/" + id, "/api/playlists/:id/videos/:videoId"},
		{"/api/users/watch-later/" + id, "/api/users/watch-later/:videoId"},
		{"/api/users/history", "/api/users/history"},
		{"/api/stats", "/api/stats"},
		{"/health/ready", "/health/ready"},
	}

	for _, tt := range tests {
		if got := sanitizeEndpoint(tt.in); got != tt.want {
			t.Errorf("sanitizeEndpoint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
