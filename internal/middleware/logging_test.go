package middleware

import "testing"

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/videos/6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", "/api/videos/:videoId"},
		{"/api/videos/6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b/like", "/api/videos/:videoId/like"},
		{"/api/channels/6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", "/api/channels/:userId"},
		{"/api/playlists/6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b/videos/abc", "/api/playlists/:playlistId/videos/:videoId"},
		{"/api/users/watch-later/6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", "/api/users/watch-later/:videoId"},
		{"/api/users/history", "/api/users/history"},
		{"/health/live", "/health/live"},
	}
	for _, tt := range tests {
		if got := sanitizePath(tt.in); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
