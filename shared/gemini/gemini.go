// Package gemini wraps the Gemini API as the feed's reply generator.
package gemini

import (
	"context"
	"fmt"
	"time"

	"confessd/feed/domain"

	"google.golang.org/genai"
)

const (
	// DefaultModel matches the model the reply bot has always used.
	DefaultModel = "gemini-1.5-flash"

	defaultTimeout = 30 * time.Second
)

var _ domain.ReplyGenerator = (*Client)(nil)

// Client generates reply text with a fixed system instruction supplied
// once at construction. One model, one persona, no per-call knobs.
type Client struct {
	client            *genai.Client
	model             string
	systemInstruction string
	timeout           time.Duration
}

func NewClient(ctx context.Context, apiKey, model, systemInstruction string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client:            client,
		model:             model,
		systemInstruction: systemInstruction,
		timeout:           defaultTimeout,
	}, nil
}

// Generate sends the stimulus text to the model and returns its
// completion verbatim. Backend errors, timeouts, and empty candidates
// all surface as domain.ErrGeneration.
func (c *Client) Generate(ctx context.Context, stimulus string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var config *genai.GenerateContentConfig
	if c.systemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(c.systemInstruction, genai.RoleUser),
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(stimulus), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	text := completionText(result)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrGeneration)
	}

	return text, nil
}

// completionText joins every text part of the first candidate, so a
// completion the backend splits across parts comes back whole.
func completionText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	return result.Text()
}
