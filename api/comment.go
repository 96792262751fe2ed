package api

import (
	"time"

	"confessd/feed/domain"
)

// CommentProto is the comment-creation request. The reply bot sets
// IsReplyBot when it publishes a generated reply.
type CommentProto struct {
	PostID     string `json:"postId"`
	Comment    string `json:"comment"`
	IsReplyBot bool   `json:"isReplyBot"`
}

type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	UserID     *string   `json:"user_id"`
	Body       string    `json:"body"`
	IsReplyBot bool      `json:"is_reply_bot"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCommentResponse struct {
	Comment Comment `json:"comment"`
}

type ReplyBotRequest struct {
	PostID  string `json:"postId"`
	Comment string `json:"comment"`
}

type ReplyBotResponse struct {
	Reply string `json:"reply"`
}

func NewComment(c *domain.Comment) Comment {
	return Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		UserID:     c.AuthorID,
		Body:       c.Body,
		IsReplyBot: c.IsReplyBot,
		CreatedAt:  c.CreatedAt,
	}
}
