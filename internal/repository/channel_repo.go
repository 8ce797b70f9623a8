package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/openreel-go/internal/model"
)

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

const channelColumns = `
	id, user_id, name, description, banner, subscribers, is_verified,
	created_at, updated_at`

func scanChannel(row rowScanner) (*model.Channel, error) {
	var ch model.Channel
	err := row.Scan(
		&ch.ID, &ch.UserID, &ch.Name, &ch.Description, &ch.Banner,
		&ch.Subscribers, &ch.IsVerified, &ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Create inserts a channel row. The unique constraint on user_id enforces the
// one-channel-per-user rule.
func (r *ChannelRepo) Create(ctx context.Context, ch *model.Channel) error {
	query := `
		INSERT INTO channels (id, user_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING banner, subscribers, is_verified, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ch.ID, ch.UserID, ch.Name, ch.Description,
	).Scan(&ch.Banner, &ch.Subscribers, &ch.IsVerified, &ch.CreatedAt, &ch.UpdatedAt)
}

// FindByUserID returns the channel owned by the given user.
func (r *ChannelRepo) FindByUserID(ctx context.Context, userID string) (*model.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE user_id = $1`
	return scanChannel(r.pool.QueryRow(ctx, query, userID))
}

// ExistsForUser reports whether the user owns a channel.
func (r *ChannelRepo) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM channels WHERE user_id = $1)`,
		userID).Scan(&exists)
	return exists, err
}

// Update applies partial changes to the user's channel and returns the
// updated row. COALESCE keeps fields the request left nil.
func (r *ChannelRepo) Update(ctx context.Context, userID string, req model.UpdateChannelRequest) (*model.Channel, error) {
	query := `
		UPDATE channels
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    banner      = COALESCE($4, banner),
		    updated_at  = NOW()
		WHERE user_id = $1
		RETURNING ` + channelColumns

	return scanChannel(r.pool.QueryRow(ctx, query, userID, req.Name, req.Description, req.Banner))
}
