package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

// Reaction kinds as stored in video_reactions.kind.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type ReactionRepo struct {
	pool *pgxpool.Pool
}

func NewReactionRepo(pool *pgxpool.Pool) *ReactionRepo {
	return &ReactionRepo{pool: pool}
}

// Apply toggles the caller's reaction of the given kind and returns the prior
// state ("" when the user had no reaction). The existing row is locked for
// the duration of the transaction, so two racing requests from the same user
// serialize instead of interleaving read-then-write.
func (r *ReactionRepo) Apply(ctx context.Context, videoID, userID, kind string) (prior string, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		SELECT kind FROM video_reactions
		WHERE video_id = $1 AND user_id = $2
		FOR UPDATE`,
		videoID, userID).Scan(&prior)
	if err != nil && err != pgx.ErrNoRows {
		return "", err
	}

	switch {
	case prior == kind:
		// Toggle off.
		_, err = tx.Exec(ctx, `
			DELETE FROM video_reactions WHERE video_id = $1 AND user_id = $2`,
			videoID, userID)
	default:
		// Covers both the no-reaction and the opposite-reaction case. The
		// upsert also absorbs a row inserted between our SELECT and here,
		// since FOR UPDATE cannot lock a row that does not exist yet.
		_, err = tx.Exec(ctx, `
			INSERT INTO video_reactions (video_id, user_id, kind)
			VALUES ($1, $2, $3)
			ON CONFLICT (video_id, user_id) DO UPDATE
			SET kind = EXCLUDED.kind, created_at = NOW()`,
			videoID, userID, kind)
	}
	if err != nil {
		return "", err
	}

	return prior, tx.Commit(ctx)
}

// Sets returns the current like and dislike user-id sets for a video.
func (r *ReactionRepo) Sets(ctx context.Context, videoID string) (likes, dislikes []string, err error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, kind FROM video_reactions
		WHERE video_id = $1
		ORDER BY created_at`,
		videoID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	likes = []string{}
	dislikes = []string{}
	for rows.Next() {
		var userID, kind string
		if err := rows.Scan(&userID, &kind); err != nil {
			return nil, nil, err
		}
		if kind == ReactionLike {
			likes = append(likes, userID)
		} else {
			dislikes = append(dislikes, userID)
		}
	}
	return likes, dislikes, rows.Err()
}

// ListLikedBy returns the videos whose like set contains the given user,
// most recently reacted first.
func (r *ReactionRepo) ListLikedBy(ctx context.Context, userID string) ([]model.VideoResponse, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM video_reactions vr
		JOIN videos v ON v.id = vr.video_id
		JOIN users u ON u.id = v.created_by
		WHERE vr.user_id = $1 AND vr.kind = 'like'
		ORDER BY vr.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectVideoRows(rows)
}
