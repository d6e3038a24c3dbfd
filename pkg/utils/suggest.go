package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// SuggestionClientInterface produces a free-text surroundings guide for a
// lodging. Implementations are best-effort; callers own timeout and cache
// discipline.
type SuggestionClientInterface interface {
	SurroundingsGuide(ctx context.Context, hotelName, address, city string) (string, error)
}

func surroundingsPrompt(hotelName, address, city string) string {
	return fmt.Sprintf(
		"As a travel assistant specialised in Europe, describe the surroundings of the hotel %q located at %q, %s. "+
			"List public transport, supermarkets, pharmacies, shopping and coffee shops with opening hours and walking distance. Be concise.",
		hotelName, address, city)
}

// GeminiSuggestionClient implements SuggestionClientInterface using Google's
// Gemini models.
type GeminiSuggestionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggestionClient(apiKey, model string) (*GeminiSuggestionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggestionClient{client: client, model: model}, nil
}

func (c *GeminiSuggestionClient) SurroundingsGuide(ctx context.Context, hotelName, address, city string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(1024)

	resp, err := m.GenerateContent(ctx, genai.Text(surroundingsPrompt(hotelName, address, city)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiSuggestionClient) Close() error {
	return c.client.Close()
}

// OpenAISuggestionClient implements SuggestionClientInterface via chat
// completions.
type OpenAISuggestionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAISuggestionClient(apiKey, model string) *OpenAISuggestionClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISuggestionClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAISuggestionClient) SurroundingsGuide(ctx context.Context, hotelName, address, city string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: surroundingsPrompt(hotelName, address, city)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewSuggestionClient creates a provider-specific client based on config.
func NewSuggestionClient(provider, apiKey, model string) (SuggestionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISuggestionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiSuggestionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported suggestion provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
