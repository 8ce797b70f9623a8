package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

type PlaylistService struct {
	playlists *repository.PlaylistRepo
	videos    *repository.VideoRepo
}

func NewPlaylistService(playlists *repository.PlaylistRepo, videos *repository.VideoRepo) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

// Create makes a new playlist owned by the user.
func (s *PlaylistService) Create(ctx context.Context, userID string, req model.CreatePlaylistRequest) (*model.Playlist, error) {
	p := &model.Playlist{
		ID:          uuid.NewString(),
		CreatedBy:   userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListMine returns the user's own playlists.
func (s *PlaylistService) ListMine(ctx context.Context, userID string) ([]model.Playlist, error) {
	return s.playlists.ListByOwner(ctx, userID)
}

// Get returns a playlist with its videos. Private playlists are only visible
// to their owner.
func (s *PlaylistService) Get(ctx context.Context, playlistID, userID string) (*model.PlaylistResponse, error) {
	p, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !p.IsPublic && p.CreatedBy != userID {
		return nil, ErrPrivatePlaylist
	}
	return p, nil
}

// Delete removes the user's own playlist.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID string) error {
	p, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.CreatedBy != userID {
		return ErrNotOwner
	}
	return s.playlists.Delete(ctx, playlistID)
}

// AddVideo appends an existing video to the user's own playlist.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, userID string) error {
	p, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.CreatedBy != userID {
		return ErrNotOwner
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return err
	}
	return s.playlists.AddVideo(ctx, playlistID, videoID)
}

// RemoveVideo drops a video from the user's own playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, userID string) error {
	p, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if p.CreatedBy != userID {
		return ErrNotOwner
	}
	return s.playlists.RemoveVideo(ctx, playlistID, videoID)
}
