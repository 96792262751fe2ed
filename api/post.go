package api

import (
	"time"

	"confessd/feed/domain"
)

type CreatePostRequest struct {
	Content     string `json:"content"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type Reaction struct {
	UserID    string    `json:"user_id"`
	Reaction  string    `json:"reaction"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID             string         `json:"id"`
	UserID         *string        `json:"user_id"`
	Body           string         `json:"body"`
	IsAnonymous    bool           `json:"is_anonymous"`
	CreatedAt      time.Time      `json:"created_at"`
	Author         *Author        `json:"author"`
	ReactionCounts map[string]int `json:"reaction_counts"`
	Reactions      []Reaction     `json:"reaction"`
}

type CreatePostResponse struct {
	Post Post `json:"post"`
}

type FeedResponse struct {
	Posts []Post `json:"posts"`
}

// NewPost maps a domain projection onto the wire shape.
func NewPost(p *domain.PostProjection) Post {
	post := Post{
		ID:             p.ID,
		UserID:         p.AuthorID,
		Body:           p.Body,
		IsAnonymous:    p.IsAnonymous,
		CreatedAt:      p.CreatedAt,
		ReactionCounts: p.ReactionCounts,
		Reactions:      make([]Reaction, 0, len(p.Reactions)),
	}

	if p.Author != nil {
		post.Author = &Author{
			ID:        p.Author.ID,
			Username:  p.Author.Username,
			AvatarURL: p.Author.AvatarURL,
		}
	}

	for _, r := range p.Reactions {
		post.Reactions = append(post.Reactions, Reaction{
			UserID:    r.UserID,
			Reaction:  r.Kind,
			CreatedAt: r.CreatedAt,
		})
	}

	return post
}
