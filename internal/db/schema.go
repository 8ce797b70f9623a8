package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. Production deployments run the
// same statements through their migration tooling; this keeps local and test
// environments bootstrapped without one.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      VARCHAR(32)  NOT NULL UNIQUE,
		email         VARCHAR(254) NOT NULL UNIQUE,
		password_hash TEXT         NOT NULL,
		profile_pic   TEXT         NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS channels (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name        VARCHAR(64) NOT NULL,
		description TEXT        NOT NULL DEFAULT '',
		banner      TEXT        NOT NULL DEFAULT '',
		subscribers INT         NOT NULL DEFAULT 0,
		is_verified BOOLEAN     NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS videos (
		id            UUID PRIMARY KEY,
		created_by    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title         VARCHAR(200) NOT NULL,
		description   TEXT         NOT NULL DEFAULT '',
		video_url     TEXT         NOT NULL,
		thumbnail_url TEXT         NOT NULL DEFAULT '',
		views         BIGINT       NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_videos_created_by ON videos (created_by)`,

	// One row per (video, user); the kind column carries the tri-state, so a
	// user can never be in both sets at once.
	`CREATE TABLE IF NOT EXISTS video_reactions (
		video_id   UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind       VARCHAR(7) NOT NULL CHECK (kind IN ('like', 'dislike')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (video_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_video_reactions_user ON video_reactions (user_id, kind)`,

	// The durable viewedBy set. Rows are inserted once and never removed.
	`CREATE TABLE IF NOT EXISTS video_views (
		video_id  UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		user_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		viewed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (video_id, user_id)
	)`,

	// Append-only watch log; repeat watches create new rows. No FK on
	// video_id: entries referencing deleted videos are pruned lazily when the
	// history page is served.
	`CREATE TABLE IF NOT EXISTS watch_history (
		id         BIGSERIAL PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		video_id   UUID NOT NULL,
		watched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_watch_history_user ON watch_history (user_id, watched_at DESC)`,

	`CREATE TABLE IF NOT EXISTS watch_later (
		user_id  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		video_id UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, video_id)
	)`,

	`CREATE TABLE IF NOT EXISTS playlists (
		id          UUID PRIMARY KEY,
		created_by  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        VARCHAR(100) NOT NULL,
		description TEXT         NOT NULL DEFAULT '',
		is_public   BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_playlists_created_by ON playlists (created_by)`,

	`CREATE TABLE IF NOT EXISTS playlist_videos (
		playlist_id UUID NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		video_id    UUID NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
		position    INT  NOT NULL DEFAULT 0,
		added_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (playlist_id, video_id)
	)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
