package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TTSClient fetches cloned-voice audio from the speech proxy. It satisfies
// session.AudioFetcher.
type TTSClient struct {
	baseURL    string
	httpClient *http.Client
}

type ttsRequest struct {
	Text string `json:"text"`
}

type ttsResponse struct {
	Audio       string `json:"audio"`
	ContentType string `json:"contentType"`
	Error       string `json:"error,omitempty"`
}

type TTSOption func(*TTSClient)

func WithTTSTimeout(timeout time.Duration) TTSOption {
	return func(c *TTSClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewTTSClient(baseURL string, opts ...TTSOption) *TTSClient {
	c := &TTSClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns decoded MP3 bytes for the given reply text.
func (c *TTSClient) Fetch(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(ttsRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/tts", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tts response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts endpoint returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed ttsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tts response: %w", err)
	}

	if parsed.Audio == "" {
		return nil, fmt.Errorf("tts response contained no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.Audio)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tts audio: %w", err)
	}
	return audio, nil
}
