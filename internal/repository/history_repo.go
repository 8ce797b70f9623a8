package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

type HistoryRepo struct {
	pool *pgxpool.Pool
}

func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// Append records a watch event. Called on every qualifying fetch, so repeat
// watches of the same video produce separate entries.
func (r *HistoryRepo) Append(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2)`,
		userID, videoID)
	return err
}

// PruneDangling deletes the user's history entries whose video no longer
// exists. Run opportunistically before serving a page so deleted videos
// silently disappear from history instead of failing the request.
func (r *HistoryRepo) PruneDangling(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM watch_history wh
		WHERE wh.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM videos v WHERE v.id = wh.video_id)`,
		userID)
	return err
}

// Count returns the number of live history entries for a user.
func (r *HistoryRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		WHERE wh.user_id = $1`,
		userID).Scan(&n)
	return n, err
}

// Page returns one page of the user's history, most recent watch first.
func (r *HistoryRepo) Page(ctx context.Context, userID string, offset, limit int) ([]model.HistoryVideo, error) {
	query := `
		SELECT ` + videoColumns + `, wh.watched_at
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users u ON u.id = v.created_by
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC, wh.id DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.HistoryVideo, 0, limit)
	for rows.Next() {
		var h model.HistoryVideo
		err := rows.Scan(
			&h.ID, &h.Title, &h.Description, &h.VideoURL, &h.ThumbnailURL, &h.Views,
			&h.CreatedAt, &h.UpdatedAt,
			&h.CreatedBy.ID, &h.CreatedBy.Username, &h.CreatedBy.ProfilePic,
			&h.ViewedAt,
		)
		if err != nil {
			return nil, err
		}
		h.Likes = []string{}
		h.Dislikes = []string{}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

// Clear wipes the user's entire history log.
func (r *HistoryRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM watch_history WHERE user_id = $1`, userID)
	return err
}
