package application

import (
	"confessd/feed/domain"
)

// NewPostProjection builds the public view of a freshly created post.
// The reaction aggregate is forced to the zero vector and the reaction
// list to empty: a post fetched immediately after creation cannot have
// reactions yet, so the join's contents are deliberately not trusted.
func NewPostProjection(row *domain.ProjectionRow) *domain.PostProjection {
	p := baseProjection(row)
	p.ReactionCounts = zeroReactionCounts()
	p.Reactions = []domain.Reaction{}
	return p
}

// FeedProjection builds the view of an existing post with its actual
// reaction tallies.
func FeedProjection(row *domain.ProjectionRow) *domain.PostProjection {
	p := baseProjection(row)
	p.ReactionCounts = tallyReactions(row.Reactions)
	p.Reactions = row.Reactions
	if p.Reactions == nil {
		p.Reactions = []domain.Reaction{}
	}
	return p
}

func baseProjection(row *domain.ProjectionRow) *domain.PostProjection {
	return &domain.PostProjection{
		ID:          row.Post.ID,
		AuthorID:    row.Post.AuthorID,
		Body:        row.Post.Body,
		IsAnonymous: row.Post.IsAnonymous,
		CreatedAt:   row.Post.CreatedAt,
		Author:      authorView(row),
	}
}

// authorView resolves the author leg of the join. Anonymous posts never
// expose an author; missing profile fields degrade to empty strings
// rather than failing the projection.
func authorView(row *domain.ProjectionRow) *domain.Author {
	if row.Post.IsAnonymous || row.Post.AuthorID == nil {
		return nil
	}

	author := &domain.Author{
		ID: *row.Post.AuthorID,
	}
	if row.Username != nil {
		author.Username = *row.Username
	}
	if row.AvatarURL != nil {
		author.AvatarURL = *row.AvatarURL
	}
	return author
}

func zeroReactionCounts() map[string]int {
	counts := make(map[string]int, len(domain.ReactionKinds))
	for _, kind := range domain.ReactionKinds {
		counts[kind] = 0
	}
	return counts
}

func tallyReactions(reactions []domain.Reaction) map[string]int {
	counts := zeroReactionCounts()
	for _, r := range reactions {
		counts[r.Kind]++
	}
	return counts
}
