package model

import "time"

// Video represents a video row in the database.
type Video struct {
	ID           string    `json:"id"`
	CreatedBy    string    `json:"createdBy"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoResponse is the API response for video lookups: the video joined with
// its creator and the current reaction sets.
type VideoResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Views        int64     `json:"views"`
	CreatedBy    Creator   `json:"createdBy"`
	Likes        []string  `json:"likes"`
	Dislikes     []string  `json:"dislikes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateVideoRequest registers an already-hosted video. Upload transport to
// the media host happens out-of-band; the API only records the resulting URLs.
type CreateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ReactionResponse is returned by the like/dislike endpoints so clients can
// render the new sets without a second fetch.
type ReactionResponse struct {
	Message  string   `json:"message"`
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}
