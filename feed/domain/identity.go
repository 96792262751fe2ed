package domain

import "context"

// Identity is the authenticated caller resolved from request credentials.
type Identity struct {
	ID        string
	Username  string
	AvatarURL string
}

// IdentityProvider resolves an access token to an identity.
// An empty or unrecognized token resolves to (nil, nil): anonymous is a
// normal caller state, not an error. A non-nil error means the provider
// itself could not be reached.
type IdentityProvider interface {
	Resolve(ctx context.Context, accessToken string) (*Identity, error)
}
