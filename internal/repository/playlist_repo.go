package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

// Create inserts a playlist row.
func (r *PlaylistRepo) Create(ctx context.Context, p *model.Playlist) error {
	query := `
		INSERT INTO playlists (id, created_by, name, description, is_public)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		p.ID, p.CreatedBy, p.Name, p.Description, p.IsPublic,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// ListByOwner returns the user's playlists with member counts, most recently
// updated first.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, userID string) ([]model.Playlist, error) {
	query := `
		SELECT p.id, p.created_by, p.name, p.description, p.is_public,
		       (SELECT COUNT(*) FROM playlist_videos pv WHERE pv.playlist_id = p.id),
		       p.created_at, p.updated_at
		FROM playlists p
		WHERE p.created_by = $1
		ORDER BY p.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]model.Playlist, 0)
	for rows.Next() {
		var p model.Playlist
		err := rows.Scan(
			&p.ID, &p.CreatedBy, &p.Name, &p.Description, &p.IsPublic,
			&p.VideoCount, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

// FindByID returns a playlist and its member videos in playlist order.
func (r *PlaylistRepo) FindByID(ctx context.Context, playlistID string) (*model.PlaylistResponse, error) {
	query := `
		SELECT p.id, p.created_by, p.name, p.description, p.is_public,
		       (SELECT COUNT(*) FROM playlist_videos pv WHERE pv.playlist_id = p.id),
		       p.created_at, p.updated_at
		FROM playlists p
		WHERE p.id = $1`

	var resp model.PlaylistResponse
	err := r.pool.QueryRow(ctx, query, playlistID).Scan(
		&resp.ID, &resp.CreatedBy, &resp.Name, &resp.Description, &resp.IsPublic,
		&resp.VideoCount, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	videosQuery := `
		SELECT ` + videoColumns + `
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users u ON u.id = v.created_by
		WHERE pv.playlist_id = $1
		ORDER BY pv.position, pv.added_at`

	rows, err := r.pool.Query(ctx, videosQuery, playlistID)
	if err != nil {
		return nil, err
	}
	resp.Videos, err = collectVideoRows(rows)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a playlist. Returns pgx.ErrNoRows if it did not exist.
func (r *PlaylistRepo) Delete(ctx context.Context, playlistID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, playlistID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddVideo appends a video to the playlist. Re-adding is a no-op.
func (r *PlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		VALUES ($1, $2,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_videos WHERE playlist_id = $1))
		ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID)
	return err
}

// RemoveVideo drops a video from the playlist. Returns pgx.ErrNoRows when the
// video was not in it.
func (r *PlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	_, err = r.pool.Exec(ctx, `UPDATE playlists SET updated_at = NOW() WHERE id = $1`, playlistID)
	return err
}
