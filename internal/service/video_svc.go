package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

const recommendedLimit = 8

type VideoService struct {
	videos    *repository.VideoRepo
	channels  *repository.ChannelRepo
	reactions *repository.ReactionRepo
	cache     *CacheService
}

func NewVideoService(videos *repository.VideoRepo, channels *repository.ChannelRepo, reactions *repository.ReactionRepo, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, channels: channels, reactions: reactions, cache: cache}
}

// List returns every video, newest first. Cache-aside: the raw JSON is
// cached so the hot home-page path skips both the query and re-marshalling.
func (s *VideoService) List(ctx context.Context) ([]model.VideoResponse, []byte, error) {
	if s.cache != nil {
		if data, err := s.cache.GetVideoList(ctx); err == nil && data != nil {
			return nil, data, nil
		}
	}

	videos, err := s.videos.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetVideoList(ctx, videos); err != nil {
			log.Printf("cache: set video list error: %v", err)
		}
	}
	return videos, nil, nil
}

// Create registers a video for a user. The user must own a channel.
func (s *VideoService) Create(ctx context.Context, userID string, req model.CreateVideoRequest) (*model.Video, error) {
	hasChannel, err := s.channels.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasChannel {
		return nil, ErrNeedsChannel
	}

	v := &model.Video{
		ID:           uuid.NewString(),
		CreatedBy:    userID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
	}
	if err := s.videos.Create(ctx, v); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateVideoList(ctx); err != nil {
			log.Printf("cache: invalidate video list error: %v", err)
		}
	}
	return v, nil
}

// Get returns a single video with its reaction sets resolved.
func (s *VideoService) Get(ctx context.Context, videoID string) (*model.VideoResponse, error) {
	v, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	v.Likes, v.Dislikes, err = s.reactions.Sets(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListByCreator returns the videos the user has uploaded. The caller must own
// a channel, mirroring the upload precondition.
func (s *VideoService) ListByCreator(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	hasChannel, err := s.channels.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasChannel {
		return nil, ErrNeedsChannel
	}
	return s.videos.ListByCreator(ctx, userID)
}

// Recommended returns videos related to the given one: same creator first,
// then by popularity.
func (s *VideoService) Recommended(ctx context.Context, videoID string) ([]model.VideoResponse, error) {
	current, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return s.videos.ListRecommended(ctx, videoID, current.CreatedBy.ID, recommendedLimit)
}

// Delete removes a video after an ownership check. The reaction, view and
// watch-later rows go with it via cascading deletes; history entries are
// pruned lazily when that user's history is next served.
func (s *VideoService) Delete(ctx context.Context, videoID, userID string) error {
	v, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return err
	}
	if v.CreatedBy.ID != userID {
		return ErrNotOwner
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateVideoList(ctx); err != nil {
			log.Printf("cache: invalidate video list error: %v", err)
		}
	}
	return nil
}
