package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	VideoListCacheTTL = 1 * time.Minute
	ChannelCacheTTL   = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for the hot read paths: the
// home-page video listing and channel lookups. View counters and reaction
// sets are never cached; those reads must reflect the write that just
// happened.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks and the view
// marker). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetVideoList retrieves the cached home-page listing. Returns nil if not
// cached or cache is disabled.
func (c *CacheService) GetVideoList(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, videoListKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetVideoList stores the home-page listing.
func (c *CacheService) SetVideoList(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoListKey(), b, VideoListCacheTTL).Err()
}

// InvalidateVideoList drops the listing (called after uploads and deletes).
func (c *CacheService) InvalidateVideoList(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, videoListKey()).Err()
}

// GetChannel retrieves a cached channel response. Returns nil if not cached.
func (c *CacheService) GetChannel(ctx context.Context, userID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetChannel stores a channel response in cache.
func (c *CacheService) SetChannel(ctx context.Context, userID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(userID), b, ChannelCacheTTL).Err()
}

// InvalidateChannel removes a channel from cache (called after updates).
func (c *CacheService) InvalidateChannel(ctx context.Context, userID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, channelKey(userID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func videoListKey() string {
	return "videos:all"
}

func channelKey(userID string) string {
	return fmt.Sprintf("channel:user:%s", userID)
}
