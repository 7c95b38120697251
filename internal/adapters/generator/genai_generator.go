package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"mission-route-service/internal/platform/obs"
)

const defaultGenAIModel = "gemini-2.5-flash"

// GenAIGenerator implements TextGenerator with the Gemini API.
type GenAIGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// NewGenAIGenerator bounds every call by timeout; zero means 30 seconds.
func NewGenAIGenerator(ctx context.Context, apiKey, model string, timeout time.Duration, log *zap.Logger) (*GenAIGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("genai generator: API key is required")
	}
	if model == "" {
		model = defaultGenAIModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai generator: create client: %w", err)
	}

	return &GenAIGenerator{client: client, model: model, timeout: timeout, log: log}, nil
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, g.log, "generator.genai.Generate")(&err)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("genai generator: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("genai generator: empty response")
	}
	return text, nil
}
