package middleware

import "testing"

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid uuid", "6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", "6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", false},
		{"uppercase normalized", "6F1B24C0-9C3E-4A7D-8F2A-1B5E6D7C8A9B", "6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", false},
		{"trims whitespace", "  6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b  ", "6f1b24c0-9c3e-4a7d-8f2a-1b5e6d7c8a9b", false},
		{"empty", "", "", true},
		{"not a uuid", "dQw4w9WgXcQ", "", true},
		{"sql injection", "a'; DROP--", "", true},
		{"truncated", "6f1b24c0-9c3e-4a7d", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice_01", "alice_01", false},
		{"valid with dash", "video-fan", "video-fan", false},
		{"trims whitespace", "  bob  ", "bob", false},
		{"empty", "", "", true},
		{"spaces inside", "bad name", "", true},
		{"too long", "abcdefghijklmnopqrstuvwxyz0123456789", "", true},
		{"unicode", "café", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "alice@example.com", "alice@example.com", false},
		{"lowercased", "Alice@Example.COM", "alice@example.com", false},
		{"empty", "", "", true},
		{"no at sign", "alice.example.com", "", true},
		{"no domain dot", "alice@example", "", true},
		{"spaces", "ali ce@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateEmail(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateChannelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Cooking With Sam", "Cooking With Sam", false},
		{"minimum length", "abc", "abc", false},
		{"too short", "ab", "", true},
		{"empty", "", "", true},
		{"punctuation", "Sam's Channel!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("short"); msg == "" {
		t.Error("expected error for short password")
	}
	if msg := ValidatePassword("long enough secret"); msg != "" {
		t.Errorf("unexpected error: %s", msg)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"https", "https://cdn.example.com/v.mp4", "https://cdn.example.com/v.mp4", false},
		{"http", "http://cdn.example.com/v.mp4", "http://cdn.example.com/v.mp4", false},
		{"empty", "", "", true},
		{"no scheme", "cdn.example.com/v.mp4", "", true},
		{"ftp", "ftp://cdn.example.com/v.mp4", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateURL(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
