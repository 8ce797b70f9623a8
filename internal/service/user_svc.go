package service

import (
	"context"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

type UserService struct {
	users     *repository.UserRepo
	videos    *repository.VideoRepo
	reactions *repository.ReactionRepo
}

func NewUserService(users *repository.UserRepo, videos *repository.VideoRepo, reactions *repository.ReactionRepo) *UserService {
	return &UserService{users: users, videos: videos, reactions: reactions}
}

// Lookup returns the user by id.
func (s *UserService) Lookup(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// LikedVideos returns the videos the user has liked, most recent first.
func (s *UserService) LikedVideos(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	return s.reactions.ListLikedBy(ctx, userID)
}

// WatchLaterAdd puts an existing video on the user's watch-later list.
func (s *UserService) WatchLaterAdd(ctx context.Context, userID, videoID string) error {
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return err
	}
	return s.users.WatchLaterAdd(ctx, userID, videoID)
}

// WatchLaterRemove takes a video off the list.
func (s *UserService) WatchLaterRemove(ctx context.Context, userID, videoID string) error {
	return s.users.WatchLaterRemove(ctx, userID, videoID)
}

// WatchLaterList returns the user's watch-later videos.
func (s *UserService) WatchLaterList(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	return s.users.WatchLaterList(ctx, userID)
}

// GetStats returns aggregate platform statistics.
func (s *UserService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.users.GetStats(ctx)
}
