package model

import "time"

// User represents an account row in the database.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ProfilePic   string    `json:"profilePic"`
	HasChannel   bool      `json:"hasChannel"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Creator is the public projection of a user embedded in video responses.
type Creator struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic"`
}

// RegisterRequest is the API request body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the API request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated user and the issued token. The
// token is also set as an httpOnly cookie; the body copy exists for clients
// that prefer the Authorization header.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
