package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates concierge-style text for guests and hosts.
type Client interface {
	PropertyAdvice(ctx context.Context, propertyTitle, userNeeds string) (string, error)
	SmartDescription(ctx context.Context, details string) (string, error)
	Close() error
}

// GeminiClient implements Client using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a new Gemini advice client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("advice: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("advice: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

// PropertyAdvice explains why a listing fits the guest's stated needs.
func (c *GeminiClient) PropertyAdvice(ctx context.Context, propertyTitle, userNeeds string) (string, error) {
	prompt := fmt.Sprintf(`User is interested in %q. They said: %q.
As a virtual travel concierge, explain why this property is a good fit for them or what they should know.
Keep it brief and encouraging (under 100 words).`, propertyTitle, userNeeds)
	return c.generate(ctx, prompt)
}

// SmartDescription turns raw listing details into marketing copy.
func (c *GeminiClient) SmartDescription(ctx context.Context, details string) (string, error) {
	prompt := fmt.Sprintf(`Based on these details: %q, write a catchy, vibrant property description for a vacation rental website. Include a few highlights.`, details)
	return c.generate(ctx, prompt)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("advice: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("advice: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("advice: gemini returned empty content")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
