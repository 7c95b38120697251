package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"mission-route-service/internal/platform/obs"
)

// Largest reply body read from the endpoint.
const maxReplyBody = 1 << 20

// HTTPGenerator implements TextGenerator against a JSON endpoint that accepts
// {"prompt": "..."} and answers {"generatedText": "..."}. Endpoints that
// answer with plain text are accepted too: the raw body is returned.
//
// The generator is safe for concurrent use.
type HTTPGenerator struct {
	session  *http.Client
	endpoint string
	apiKey   string
	log      *zap.Logger
}

func NewHTTPGenerator(endpoint, apiKey string, timeout time.Duration, log *zap.Logger) (*HTTPGenerator, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("http generator: endpoint is empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &HTTPGenerator{
		session:  &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
		log:      log,
	}, nil
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	GeneratedText *string `json:"generatedText"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, g.log, "generator.http.Generate")(&err)

	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("http generator: marshal request: %w", err)
	}

	req, err := g.newRequest(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("http generator: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return "", fmt.Errorf("http generator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBody))
	if err != nil {
		return "", fmt.Errorf("http generator: read body: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err == nil && out.GeneratedText != nil {
		return *out.GeneratedText, nil
	}

	return string(body), nil
}
