package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

type ChannelService struct {
	channels *repository.ChannelRepo
	cache    *CacheService
}

func NewChannelService(channels *repository.ChannelRepo, cache *CacheService) *ChannelService {
	return &ChannelService{channels: channels, cache: cache}
}

// Create makes the user's channel. One channel per user.
func (s *ChannelService) Create(ctx context.Context, userID string, req model.CreateChannelRequest) (*model.Channel, error) {
	exists, err := s.channels.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyHasChannel
	}

	ch := &model.Channel{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.channels.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// GetByUserID looks up a user's channel, cache-aside.
func (s *ChannelService) GetByUserID(ctx context.Context, userID string) (*model.Channel, []byte, error) {
	if s.cache != nil {
		if data, err := s.cache.GetChannel(ctx, userID); err == nil && data != nil {
			return nil, data, nil
		}
	}

	ch, err := s.channels.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetChannel(ctx, userID, ch); err != nil {
			log.Printf("cache: set channel error: %v", err)
		}
	}
	return ch, nil, nil
}

// Update applies partial changes to the user's own channel.
func (s *ChannelService) Update(ctx context.Context, userID string, req model.UpdateChannelRequest) (*model.Channel, error) {
	ch, err := s.channels.Update(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateChannel(ctx, userID); err != nil {
			log.Printf("cache: invalidate channel error: %v", err)
		}
	}
	return ch, nil
}

// HasChannel reports whether the user owns a channel.
func (s *ChannelService) HasChannel(ctx context.Context, userID string) (bool, error) {
	return s.channels.ExistsForUser(ctx, userID)
}
