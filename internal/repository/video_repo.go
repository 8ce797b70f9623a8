package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

// videoColumns is the shared projection for video-with-creator queries. Every
// repo that returns videos selects these columns in this order so scanning
// stays in one place.
const videoColumns = `
	v.id, v.title, v.description, v.video_url, v.thumbnail_url, v.views,
	v.created_at, v.updated_at, u.id, u.username, u.profile_pic`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideoRow(row rowScanner) (model.VideoResponse, error) {
	var r model.VideoResponse
	err := row.Scan(
		&r.ID, &r.Title, &r.Description, &r.VideoURL, &r.ThumbnailURL, &r.Views,
		&r.CreatedAt, &r.UpdatedAt,
		&r.CreatedBy.ID, &r.CreatedBy.Username, &r.CreatedBy.ProfilePic,
	)
	if err != nil {
		return model.VideoResponse{}, err
	}
	r.Likes = []string{}
	r.Dislikes = []string{}
	return r, nil
}

func collectVideoRows(rows pgx.Rows) ([]model.VideoResponse, error) {
	defer rows.Close()
	videos := make([]model.VideoResponse, 0)
	for rows.Next() {
		v, err := scanVideoRow(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// Create inserts a new video row.
func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	query := `
		INSERT INTO videos (id, created_by, title, description, video_url, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING views, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		v.ID, v.CreatedBy, v.Title, v.Description, v.VideoURL, v.ThumbnailURL,
	).Scan(&v.Views, &v.CreatedAt, &v.UpdatedAt)
}

// FindByID returns a single video joined with its creator.
func (r *VideoRepo) FindByID(ctx context.Context, videoID string) (*model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		JOIN users u ON u.id = v.created_by
		WHERE v.id = $1`

	v, err := scanVideoRow(r.pool.QueryRow(ctx, query, videoID))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all videos, newest first.
func (r *VideoRepo) List(ctx context.Context) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		JOIN users u ON u.id = v.created_by
		ORDER BY v.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectVideoRows(rows)
}

// ListByCreator returns the videos uploaded by one user, newest first.
func (r *VideoRepo) ListByCreator(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		JOIN users u ON u.id = v.created_by
		WHERE v.created_by = $1
		ORDER BY v.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectVideoRows(rows)
}

// ListRecommended returns up to limit videos related to the given one: same
// creator first, then the most-viewed videos from other creators.
func (r *VideoRepo) ListRecommended(ctx context.Context, videoID, createdBy string, limit int) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos v
		JOIN users u ON u.id = v.created_by
		WHERE v.id <> $1
		ORDER BY (v.created_by = $2) DESC, v.views DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, videoID, createdBy, limit)
	if err != nil {
		return nil, err
	}
	return collectVideoRows(rows)
}

// Delete removes a video row. Returns pgx.ErrNoRows if nothing was deleted.
func (r *VideoRepo) Delete(ctx context.Context, videoID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, videoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountIdentifiedView records a view by a known user with at-most-once
// counting: the marker insert and the counter increment happen in one
// statement, and the increment only applies when the insert landed. Two
// racing first-view requests resolve to a single increment because only one
// insert can win the primary key.
func (r *VideoRepo) CountIdentifiedView(ctx context.Context, videoID, userID string) (bool, error) {
	query := `
		WITH marked AS (
			INSERT INTO video_views (video_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (video_id, user_id) DO NOTHING
			RETURNING 1
		)
		UPDATE videos SET views = views + 1
		WHERE id = $1 AND EXISTS (SELECT 1 FROM marked)`

	tag, err := r.pool.Exec(ctx, query, videoID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementViews bumps the counter unconditionally. Used for anonymous
// viewers after their session marker said this is a first view.
func (r *VideoRepo) IncrementViews(ctx context.Context, videoID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, videoID)
	return err
}
