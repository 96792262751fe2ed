package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"confessd/feed/domain"
	"confessd/shared/db"
)

var _ domain.ProfileRepository = (*SQLiteProfileRepository)(nil)

// SQLiteProfileRepository keeps a local copy of identity-provider
// profiles so post projections can join author fields without a
// network call. The provider stays the source of truth; rows here are
// refreshed whenever an authenticated caller posts.
type SQLiteProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *SQLiteProfileRepository {
	return &SQLiteProfileRepository{
		db: db,
	}
}

const upsertProfileQuery = `
	INSERT INTO profiles (id, username, avatar_url)
	VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		username = excluded.username,
		avatar_url = excluded.avatar_url
`

func (r *SQLiteProfileRepository) UpsertProfile(ctx context.Context, a *domain.Author) error {
	if a == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	if a.ID == "" {
		return fmt.Errorf("profile ID cannot be empty")
	}

	var avatarURL any
	if a.AvatarURL != "" {
		avatarURL = a.AvatarURL
	}

	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, upsertProfileQuery, a.ID, a.Username, avatarURL)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
