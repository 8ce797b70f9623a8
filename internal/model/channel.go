package model

import "time"

// Channel represents a channel row in the database. Each user owns at most one.
type Channel struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	Subscribers int       `json:"subscribers"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateChannelRequest is the API request body for creating a channel.
type CreateChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateChannelRequest carries partial channel updates. Nil fields are left
// unchanged.
type UpdateChannelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Banner      *string `json:"banner"`
}
