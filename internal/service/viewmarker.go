package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnonViewTTL bounds how long an anonymous viewer's "seen" marker lives. A
// client that comes back after expiry is counted again; that precision
// trade-off is accepted rather than persisting anonymous identities.
const AnonViewTTL = 24 * time.Hour

// ViewMarker tracks which (video, anonymous viewer) pairs have already been
// counted. Mark reports whether this was the first time the key was seen.
type ViewMarker interface {
	Mark(ctx context.Context, key string) (first bool, err error)
}

// RedisViewMarker stores markers as SET NX keys with a TTL, so the
// first-view check and the marking are a single atomic operation shared by
// all server instances.
type RedisViewMarker struct {
	rdb *redis.Client
}

func NewRedisViewMarker(rdb *redis.Client) *RedisViewMarker {
	return &RedisViewMarker{rdb: rdb}
}

func (m *RedisViewMarker) Mark(ctx context.Context, key string) (bool, error) {
	return m.rdb.SetNX(ctx, key, 1, AnonViewTTL).Result()
}

// MemoryViewMarker is the in-process fallback when Redis is unconfigured,
// and the implementation unit tests run against. Markers only live as long
// as the process.
type MemoryViewMarker struct {
	mu      sync.Mutex
	seen    map[string]time.Time
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewMemoryViewMarker() *MemoryViewMarker {
	return &MemoryViewMarker{
		seen:    make(map[string]time.Time),
		ttl:     AnonViewTTL,
		nowFunc: time.Now,
	}
}

func (m *MemoryViewMarker) Mark(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.nowFunc()
	if expiry, ok := m.seen[key]; ok && now.Before(expiry) {
		return false, nil
	}
	m.seen[key] = now.Add(m.ttl)

	// Opportunistic sweep; the map only grows with distinct anonymous
	// (video, viewer) pairs so a full scan here stays cheap.
	if len(m.seen) > 10000 {
		for k, exp := range m.seen {
			if now.After(exp) {
				delete(m.seen, k)
			}
		}
	}
	return true, nil
}
