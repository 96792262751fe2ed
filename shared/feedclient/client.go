// Package feedclient is an HTTP client for the feed service's own API.
// The reply pipeline is stitched together with loopback calls against
// the configured base URL, so each stage runs behind its public
// endpoint and can be replaced or stubbed independently.
package feedclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"confessd/feed/domain"
)

var (
	_ domain.ReplyTrigger     = (*Client)(nil)
	_ domain.CommentPublisher = (*Client)(nil)
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// TriggerReply invokes the reply-bot endpoint for a post. The post's
// moderated body is reused as the generation stimulus.
func (c *Client) TriggerReply(ctx context.Context, postID, body string) error {
	payload := map[string]any{
		"postId":  postID,
		"comment": body,
	}
	return c.post(ctx, "/post/replybot", payload)
}

// PublishBotComment persists a generated reply through the
// comment-creation endpoint, flagged as bot-authored.
func (c *Client) PublishBotComment(ctx context.Context, postID, body string) error {
	payload := map[string]any{
		"postId":     postID,
		"comment":    body,
		"isReplyBot": true,
	}
	return c.post(ctx, "/post/comment/create", payload)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	return nil
}
