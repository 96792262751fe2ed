package gemini

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "", "")
	if err == nil {
		t.Fatal("NewClient() succeeded without API key")
	}
}

func TestNewClient_DefaultModel(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key", "", "reply kindly")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if c.model != DefaultModel {
		t.Errorf("model = %q, want %q", c.model, DefaultModel)
	}
	if c.systemInstruction != "reply kindly" {
		t.Errorf("systemInstruction = %q", c.systemInstruction)
	}
}

func TestCompletionText(t *testing.T) {
	tests := []struct {
		name     string
		result   *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "Nil response",
			result:   nil,
			expected: "",
		},
		{
			name:     "No candidates",
			result:   &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "Multiple text parts joined",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "Nice try. "},
						{Text: "Better luck next time."},
					}},
				}},
			},
			expected: "Nice try. Better luck next time.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completionText(tt.result); got != tt.expected {
				t.Errorf("completionText() = %q, want %q", got, tt.expected)
			}
		})
	}
}
