package ports

import "context"

// Contract for a free-text generation endpoint used as a best-effort route optimizer.
type TextGenerator interface {
	// Return the generated reply for a single prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
