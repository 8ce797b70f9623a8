package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.profile_pic,
	EXISTS (SELECT 1 FROM channels c WHERE c.user_id = u.id),
	u.created_at, u.updated_at`

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePic,
		&u.HasChannel, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, profile_pic)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.ProfilePic,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

// FindByID returns a single user by id.
func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, userID))
}

// FindByEmail returns a single user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// UsernameOrEmailTaken reports whether either credential is already in use.
func (r *UserRepo) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email).Scan(&taken)
	return taken, err
}

// WatchLaterAdd puts a video on the user's watch-later list. Adding a video
// that is already there is a no-op, matching set semantics.
func (r *UserRepo) WatchLaterAdd(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_later (user_id, video_id) VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO NOTHING`,
		userID, videoID)
	return err
}

// WatchLaterRemove takes a video off the list. Returns pgx.ErrNoRows when the
// video was not on it.
func (r *UserRepo) WatchLaterRemove(ctx context.Context, userID, videoID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM watch_later WHERE user_id = $1 AND video_id = $2`,
		userID, videoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// WatchLaterList returns the user's watch-later videos, most recently added
// first.
func (r *UserRepo) WatchLaterList(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM watch_later wl
		JOIN videos v ON v.id = wl.video_id
		JOIN users u ON u.id = v.created_by
		WHERE wl.user_id = $1
		ORDER BY wl.added_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectVideoRows(rows)
}

// GetStats returns aggregate statistics from all tables.
func (r *UserRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM videos)                                    AS total_videos,
			(SELECT COUNT(*) FROM users)                                     AS total_users,
			(SELECT COUNT(*) FROM channels)                                  AS total_channels,
			(SELECT COUNT(*) FROM playlists)                                 AS total_playlists,
			(SELECT COALESCE(SUM(views), 0) FROM videos)                     AS total_views,
			(SELECT COUNT(*) FROM video_reactions WHERE kind = 'like')       AS total_likes,
			(SELECT COUNT(*) FROM video_reactions WHERE kind = 'dislike')    AS total_dislikes`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalVideos, &stats.TotalUsers, &stats.TotalChannels,
		&stats.TotalPlaylists, &stats.TotalViews, &stats.TotalLikes, &stats.TotalDislikes,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
