package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

var (
	// ErrEmptyReply is returned when the model answers with no text
	ErrEmptyReply = errors.New("llm: empty reply")
	// ErrMalformedReply is returned when the reply does not match the requested schema
	ErrMalformedReply = errors.New("llm: malformed reply")
	// ErrMissingAPIKey is returned by NewGeminiResponder without credentials
	ErrMissingAPIKey = errors.New("llm: missing API key")
)

// Responder produces structured JSON text for a prompt. Implementations
// must honour ctx cancellation.
type Responder interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// generator is the slice of *genai.Models used here
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiResponder talks to the Gemini API in JSON response mode
type GeminiResponder struct {
	models  generator
	model   string
	timeout time.Duration
}

// NewGeminiResponder creates a responder backed by the Gemini developer API
func NewGeminiResponder(ctx context.Context, cfg Config) (*GeminiResponder, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiResponder(client.Models, cfg), nil
}

func newGeminiResponder(models generator, cfg Config) *GeminiResponder {
	return &GeminiResponder{
		models:  models,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (g *GeminiResponder) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// Unavailable is a Responder that always fails. It stands in when no API
// key is configured so the rest of the service still starts.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context, string, *genai.Schema) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	return "", ErrMissingAPIKey
}
