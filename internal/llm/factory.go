package llm

import (
	"fmt"

	"github.com/cardev/portfolio/config"
	"github.com/cardev/portfolio/internal/llm/anthropic"
	"github.com/cardev/portfolio/internal/llm/ollama"
)

type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// NewClient creates a chat provider client based on the configuration
func NewClient(cfg *config.Config) (LLM, error) {
	switch Provider(cfg.Chat.Provider) {
	case ProviderAnthropic:
		return anthropic.NewClient(&cfg.Chat.Anthropic)
	case ProviderOllama:
		return ollama.NewClient(&cfg.Chat.Ollama)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", cfg.Chat.Provider)
	}
}
