package application

import (
	"context"
	"fmt"
	"strings"

	"confessd/feed/domain"
	"confessd/feed/moderation"
)

// CommentService persists and lists comments. Bot comments arrive
// already generated and skip moderation; user comments are masked the
// same way post bodies are.
type CommentService struct {
	filter   *moderation.Filter
	identity domain.IdentityProvider
	comments domain.CommentRepository
}

func NewCommentService(filter *moderation.Filter, identity domain.IdentityProvider, comments domain.CommentRepository) *CommentService {
	return &CommentService{
		filter:   filter,
		identity: identity,
		comments: comments,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, postID, content string, isReplyBot bool, accessToken string) (*domain.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post ID cannot be empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", domain.ErrInvalidInput)
	}

	body := strings.TrimSpace(content)

	comment := &domain.Comment{
		PostID:     postID,
		IsReplyBot: isReplyBot,
	}

	if isReplyBot {
		comment.Body = body
	} else {
		comment.Body = strings.TrimSpace(s.filter.Mask(body))

		ident, err := s.identity.Resolve(ctx, accessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
		}
		if ident != nil {
			comment.AuthorID = &ident.ID
		}
	}

	if err := s.comments.InsertComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post ID cannot be empty", domain.ErrInvalidInput)
	}

	comments, err := s.comments.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return comments, nil
}
