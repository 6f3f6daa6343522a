package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cardev/portfolio/config"
	"github.com/cardev/portfolio/internal/logger"
)

const elevenLabsModel = "eleven_multilingual_v2"

// ElevenLabsEngine synthesizes speech with a cloned voice. The voice ID and
// the synthesis parameters are fixed per deployment.
type ElevenLabsEngine struct {
	apiKey     string
	voiceID    string
	baseURL    string
	logger     *logger.Log
	httpClient *http.Client
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

func NewElevenLabsEngine(cfg *config.ElevenLabsConfig) (*ElevenLabsEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs API key is required")
	}
	if cfg.VoiceID == "" {
		return nil, fmt.Errorf("elevenlabs voice ID is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io/v1"
	}

	return &ElevenLabsEngine{
		apiKey:     cfg.APIKey,
		voiceID:    cfg.VoiceID,
		baseURL:    baseURL,
		logger:     logger.New(),
		httpClient: &http.Client{},
	}, nil
}

func (e *ElevenLabsEngine) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	req := elevenLabsRequest{
		Text:    text,
		ModelID: elevenLabsModel,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			Style:           0.0,
			UseSpeakerBoost: true,
		},
	}

	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.baseURL, e.voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		e.logger.WithError(err).Error("Failed to make ElevenLabs request")
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		e.logger.Error(fmt.Sprintf("ElevenLabs API returned status %d: %s", resp.StatusCode, string(body)))
		details := json.RawMessage(body)
		if !json.Valid(body) {
			details, _ = json.Marshal(string(body))
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Details: details}
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("empty audio content received from ElevenLabs")
	}

	e.logger.Debug(fmt.Sprintf("Generated %d bytes of MP3 audio", len(body)))
	return body, nil
}

func (e *ElevenLabsEngine) Name() string {
	return "ElevenLabs Text-to-Speech"
}
