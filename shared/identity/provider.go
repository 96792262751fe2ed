// Package identity resolves caller identities against a GoTrue-style
// identity provider over HTTP.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"confessd/feed/domain"
)

var _ domain.IdentityProvider = (*HTTPProvider)(nil)

// HTTPProvider asks the identity provider who a bearer token belongs
// to. The provider owns sessions and sign-in; this client only reads.
type HTTPProvider struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// userResponse mirrors the provider's GET /auth/v1/user payload.
type userResponse struct {
	ID           string `json:"id"`
	UserMetadata struct {
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

// Resolve looks up the identity behind accessToken. An empty token and
// a token the provider rejects both resolve to (nil, nil): anonymous.
// Errors are reserved for the provider being unreachable or broken.
func (p *HTTPProvider) Resolve(ctx context.Context, accessToken string) (*domain.Identity, error) {
	if accessToken == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if p.APIKey != "" {
		req.Header.Set("apikey", p.APIKey)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decode.
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Stale or bogus token. The caller is simply anonymous.
		return nil, nil
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	if user.ID == "" {
		return nil, nil
	}

	return &domain.Identity{
		ID:        user.ID,
		Username:  user.UserMetadata.Username,
		AvatarURL: user.UserMetadata.AvatarURL,
	}, nil
}
