package domain

import (
	"context"
	"time"
)

// ReactionKinds is the fixed set of reactions a post can receive.
var ReactionKinds = []string{"F", "Clown", "Skull", "Relatable"}

// Post represents a user-submitted feed entry.
// The body is stored post-moderation; AuthorID is nil for anonymous posts
// and for posts made without signing in.
type Post struct {
	ID          string
	AuthorID    *string
	Body        string
	IsAnonymous bool
	CreatedAt   time.Time
}

// Author is the public view of a post's author, projected from an
// identity record. Never built for anonymous posts.
type Author struct {
	ID        string
	Username  string
	AvatarURL string
}

// Reaction is a single reaction left on a post.
type Reaction struct {
	UserID    string
	Kind      string
	CreatedAt time.Time
}

// PostProjection is the denormalized read model returned to API callers:
// the post plus its resolved author (nil when anonymous) and reaction
// aggregates. It is derived on every fetch and never persisted.
type PostProjection struct {
	ID             string
	AuthorID       *string
	Body           string
	IsAnonymous    bool
	CreatedAt      time.Time
	Author         *Author
	ReactionCounts map[string]int
	Reactions      []Reaction
}

// ProjectionRow is the raw joined storage row a projection is built from.
// Profile fields are unresolved pointers so a missing join leg maps to
// nil instead of failing.
type ProjectionRow struct {
	Post      Post
	Username  *string
	AvatarURL *string
	Reactions []Reaction
}

type PostRepository interface {
	InsertPost(ctx context.Context, p *Post) error
	GetProjectionRow(ctx context.Context, id string) (*ProjectionRow, error)
	ListProjectionRows(ctx context.Context, limit, offset int) ([]*ProjectionRow, error)
}

type ProfileRepository interface {
	UpsertProfile(ctx context.Context, a *Author) error
}
