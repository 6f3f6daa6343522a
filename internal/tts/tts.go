package tts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardev/portfolio/config"
)

// Engine generates MPEG audio for a piece of reply text.
type Engine interface {
	GenerateAudio(ctx context.Context, text string) ([]byte, error)
	Name() string
}

// UpstreamError carries a synthesis provider's failure so the endpoint can
// mirror the upstream status code and error body.
type UpstreamError struct {
	Status  int
	Details json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream tts error: status %d", e.Status)
}

// NewEngine creates a synthesis engine based on the configuration
func NewEngine(cfg *config.Config) (Engine, error) {
	switch cfg.Tts.Engine {
	case "elevenlabs":
		return NewElevenLabsEngine(&cfg.Tts.ElevenLabs)
	case "google":
		return NewGoogleEngine(&cfg.Tts.Google)
	case "dummy", "":
		return NewDummyEngine(), nil
	default:
		return nil, fmt.Errorf("unsupported tts engine: %s", cfg.Tts.Engine)
	}
}
