package service

import "errors"

// Semantic failures surfaced to handlers for status mapping. Plain "row not
// found" cases travel as pgx.ErrNoRows straight from the repository layer.
var (
	ErrCredentialsTaken   = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNeedsChannel       = errors.New("user has no channel")
	ErrAlreadyHasChannel  = errors.New("user already has a channel")
	ErrNotOwner           = errors.New("resource owned by another user")
	ErrPrivatePlaylist    = errors.New("playlist is private")
)
