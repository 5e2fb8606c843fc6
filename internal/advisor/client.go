package advisor

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no advisory API key was supplied.
var ErrNotConfigured = errors.New("advisory model is not configured")

const (
	// Generation parameters for the advisory model. Kept moderate so advice
	// varies between requests without drifting off the requested JSON shape.
	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 1000

	systemInstruction = "You are a professional financial advisor providing personalized advice based on spending patterns."
)

// Client generates financial advice text from a rendered prompt. Callers are
// responsible for parsing and validating whatever comes back.
type Client interface {
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
	Available() bool
}

// geminiClient calls the Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates an advisory client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create advisory client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *geminiClient) Available() bool {
	return true
}

func (c *geminiClient) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](defaultTemperature),
		MaxOutputTokens: defaultMaxOutputTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemInstruction},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from advisory model")
	}

	return text, nil
}

// unavailableClient is used when no API key is configured. Every call fails,
// which pushes the insight service onto its local fallback path.
type unavailableClient struct{}

// NewUnavailableClient returns a client that always reports the advisory
// service as unreachable.
func NewUnavailableClient() Client {
	return unavailableClient{}
}

func (unavailableClient) Available() bool {
	return false
}

func (unavailableClient) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}
