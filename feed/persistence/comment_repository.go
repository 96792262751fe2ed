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

var _ domain.CommentRepository = (*SQLiteCommentRepository)(nil)

// SQLiteCommentRepository implements domain.CommentRepository using SQLite
type SQLiteCommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{
		db: db,
	}
}

const insertCommentQuery = `
	INSERT INTO comments (id, post_id, user_id, body, is_reply_bot, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

// InsertComment persists a comment, assigning its identifier and
// creation timestamp.
func (r *SQLiteCommentRepository) InsertComment(ctx context.Context, c *domain.Comment) error {
	if c == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if c.PostID == "" {
		return fmt.Errorf("comment post ID cannot be empty")
	}

	if c.Body == "" {
		return fmt.Errorf("comment body cannot be empty")
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	var authorID any
	if c.AuthorID != nil {
		authorID = *c.AuthorID
	}

	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertCommentQuery,
		c.ID,
		c.PostID,
		authorID,
		c.Body,
		c.IsReplyBot,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

const listCommentsQuery = `
	SELECT id, post_id, user_id, body, is_reply_bot, created_at
	FROM comments
	WHERE post_id = ?
	ORDER BY created_at ASC
`

// ListComments retrieves a post's comments oldest first.
func (r *SQLiteCommentRepository) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("post ID cannot be empty")
	}

	executor := db.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, listCommentsQuery, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var row commentRow
		err := rows.Scan(
			&row.ID,
			&row.PostID,
			&row.UserID,
			&row.Body,
			&row.IsReplyBot,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, row.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

type commentRow struct {
	ID         string         `db:"id"`
	PostID     string         `db:"post_id"`
	UserID     sql.NullString `db:"user_id"`
	Body       string         `db:"body"`
	IsReplyBot bool           `db:"is_reply_bot"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (cr *commentRow) toDomain() *domain.Comment {
	comment := &domain.Comment{
		ID:         cr.ID,
		PostID:     cr.PostID,
		Body:       cr.Body,
		IsReplyBot: cr.IsReplyBot,
		CreatedAt:  cr.CreatedAt,
	}

	if cr.UserID.Valid {
		comment.AuthorID = &cr.UserID.String
	}

	return comment
}
