package llm

import (
	"context"
)

// LLM defines the interface for language model providers
type LLM interface {

	// GenerateReply generates a single reply for the given prompt
	GenerateReply(ctx context.Context, prompt string) (string, error)

	// IsModelAvailable checks if the configured model is available
	IsModelAvailable(ctx context.Context) error
}
