package model

import "time"

// Playlist represents a playlist row in the database.
type Playlist struct {
	ID          string    `json:"id"`
	CreatedBy   string    `json:"createdBy"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	VideoCount  int       `json:"videoCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistResponse is a playlist with its member videos resolved.
type PlaylistResponse struct {
	Playlist
	Videos []VideoResponse `json:"videos"`
}

// CreatePlaylistRequest is the API request body for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}
