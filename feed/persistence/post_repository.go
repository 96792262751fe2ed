package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"confessd/feed/domain"
	"confessd/shared/db"

	"github.com/google/uuid"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository using SQL database (SQLite)
type SQLitePostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLitePostRepository from a standard sql.DB
func NewPostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

const insertPostQuery = `
	INSERT INTO posts (id, user_id, body, is_anonymous, created_at)
	VALUES (?, ?, ?, ?, ?)
`

// InsertPost persists a new post. The identifier and creation timestamp
// are assigned here, on the store side, and written back onto p.
func (r *SQLitePostRepository) InsertPost(ctx context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if p.Body == "" {
		return fmt.Errorf("post body cannot be empty")
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	var authorID any
	if p.AuthorID != nil {
		authorID = *p.AuthorID
	}

	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertPostQuery,
		p.ID,
		authorID,
		p.Body,
		p.IsAnonymous,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

const getProjectionQuery = `
	SELECT p.id, p.user_id, p.body, p.is_anonymous, p.created_at,
	       pr.username, pr.avatar_url
	FROM posts p
	LEFT JOIN profiles pr ON pr.id = p.user_id
	WHERE p.id = ?
`

const getReactionsQuery = `
	SELECT user_id, reaction, created_at
	FROM reactions
	WHERE post_id = ?
	ORDER BY created_at ASC
`

// GetProjectionRow retrieves a post joined with its author profile and
// the raw list of reactions left on it.
func (r *SQLitePostRepository) GetProjectionRow(ctx context.Context, id string) (*domain.ProjectionRow, error) {
	if id == "" {
		return nil, fmt.Errorf("post ID cannot be empty")
	}

	executor := db.GetExecutor(ctx, r.db)

	var row projectionRow
	err := executor.QueryRowContext(ctx, getProjectionQuery, id).Scan(
		&row.ID,
		&row.UserID,
		&row.Body,
		&row.IsAnonymous,
		&row.CreatedAt,
		&row.Username,
		&row.AvatarURL,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post not found: %s", id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	reactions, err := r.getReactions(ctx, id)
	if err != nil {
		return nil, err
	}

	projection := row.toDomain()
	projection.Reactions = reactions
	return projection, nil
}

const listProjectionsQuery = `
	SELECT p.id, p.user_id, p.body, p.is_anonymous, p.created_at,
	       pr.username, pr.avatar_url
	FROM posts p
	LEFT JOIN profiles pr ON pr.id = p.user_id
	ORDER BY p.created_at DESC
	LIMIT ? OFFSET ?
`

// ListProjectionRows retrieves joined post rows newest first.
func (r *SQLitePostRepository) ListProjectionRows(ctx context.Context, limit, offset int) ([]*domain.ProjectionRow, error) {
	if limit <= 0 {
		limit = 20 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	executor := db.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, listProjectionsQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	projections := make([]*domain.ProjectionRow, 0)
	for rows.Next() {
		var row projectionRow
		err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.Body,
			&row.IsAnonymous,
			&row.CreatedAt,
			&row.Username,
			&row.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		projections = append(projections, row.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	for _, p := range projections {
		reactions, err := r.getReactions(ctx, p.Post.ID)
		if err != nil {
			return nil, err
		}
		p.Reactions = reactions
	}

	return projections, nil
}

func (r *SQLitePostRepository) getReactions(ctx context.Context, postID string) ([]domain.Reaction, error) {
	executor := db.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, getReactionsQuery, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions: %w", err)
	}
	defer rows.Close()

	reactions := make([]domain.Reaction, 0)
	for rows.Next() {
		var reaction domain.Reaction
		if err := rows.Scan(&reaction.UserID, &reaction.Kind, &reaction.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reaction row: %w", err)
		}
		reactions = append(reactions, reaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reaction rows: %w", err)
	}

	return reactions, nil
}

// projectionRow is a private struct used to scan joined database rows.
// Nullable columns use sql.Null types and convert to pointers in toDomain.
type projectionRow struct {
	ID          string         `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Body        string         `db:"body"`
	IsAnonymous bool           `db:"is_anonymous"`
	CreatedAt   time.Time      `db:"created_at"`
	Username    sql.NullString `db:"username"`
	AvatarURL   sql.NullString `db:"avatar_url"`
}

func (pr *projectionRow) toDomain() *domain.ProjectionRow {
	row := &domain.ProjectionRow{
		Post: domain.Post{
			ID:          pr.ID,
			Body:        pr.Body,
			IsAnonymous: pr.IsAnonymous,
			CreatedAt:   pr.CreatedAt,
		},
	}

	if pr.UserID.Valid {
		row.Post.AuthorID = &pr.UserID.String
	}
	if pr.Username.Valid {
		row.Username = &pr.Username.String
	}
	if pr.AvatarURL.Valid {
		row.AvatarURL = &pr.AvatarURL.String
	}

	return row
}
