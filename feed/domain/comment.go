package domain

import (
	"context"
	"time"
)

// Comment is a reply attached to a post. IsReplyBot marks comments
// written by the automated reply bot rather than a user.
type Comment struct {
	ID         string
	PostID     string
	AuthorID   *string
	Body       string
	IsReplyBot bool
	CreatedAt  time.Time
}

type CommentRepository interface {
	InsertComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, postID string) ([]*Comment, error)
}
