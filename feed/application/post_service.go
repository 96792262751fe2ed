package application

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"confessd/feed/domain"
	"confessd/feed/moderation"
	"confessd/shared/db"
)

// PostService runs the post-creation pipeline: validate, moderate,
// resolve identity, persist, read back, project, then hand the new post
// to the reply dispatcher. Steps up to the projection are strictly
// sequential; the dispatch is detached and cannot affect the result.
type PostService struct {
	conn       *sql.DB
	filter     *moderation.Filter
	identity   domain.IdentityProvider
	posts      domain.PostRepository
	profiles   domain.ProfileRepository
	dispatcher *Dispatcher
}

func NewPostService(
	conn *sql.DB,
	filter *moderation.Filter,
	identity domain.IdentityProvider,
	posts domain.PostRepository,
	profiles domain.ProfileRepository,
	dispatcher *Dispatcher,
) *PostService {
	return &PostService{
		conn:       conn,
		filter:     filter,
		identity:   identity,
		posts:      posts,
		profiles:   profiles,
		dispatcher: dispatcher,
	}
}

// CreatePost creates a post from raw content and returns its projection.
//
// Anonymous posting requires an authenticated caller; an anonymous
// request without one fails before anything is persisted. Once the
// projection is built, the reply bot is triggered without being awaited.
func (s *PostService) CreatePost(ctx context.Context, content string, isAnonymous bool, accessToken string) (*domain.PostProjection, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", domain.ErrInvalidInput)
	}

	masked := s.filter.Mask(content)

	ident, err := s.identity.Resolve(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}

	if isAnonymous && ident == nil {
		return nil, fmt.Errorf("%w: anonymous posting requires a signed-in caller", domain.ErrForbidden)
	}

	post := &domain.Post{
		Body:        strings.TrimSpace(masked),
		IsAnonymous: isAnonymous,
	}
	if ident != nil {
		post.AuthorID = &ident.ID
	}

	// Refresh the local profile copy and insert the post atomically so
	// the read-back join can always resolve the author.
	err = db.RunInTransaction(ctx, s.conn, func(txCtx context.Context) error {
		if ident != nil {
			if err := s.profiles.UpsertProfile(txCtx, &domain.Author{
				ID:        ident.ID,
				Username:  ident.Username,
				AvatarURL: ident.AvatarURL,
			}); err != nil {
				return err
			}
		}
		return s.posts.InsertPost(txCtx, post)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	// The post is durable from here on. A failed read-back leaves it
	// orphaned but intact; that is surfaced distinctly so callers can
	// tell "not created" from "created but unconfirmed".
	row, err := s.posts.GetProjectionRow(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProjectionInconsistency, err)
	}

	projection := NewPostProjection(row)

	s.dispatcher.Trigger(projection.ID, projection.Body)

	return projection, nil
}

// Feed returns recent post projections, newest first, with real
// reaction tallies.
func (s *PostService) Feed(ctx context.Context, limit, offset int) ([]*domain.PostProjection, error) {
	rows, err := s.posts.ListProjectionRows(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	projections := make([]*domain.PostProjection, 0, len(rows))
	for _, row := range rows {
		projections = append(projections, FeedProjection(row))
	}
	return projections, nil
}
