// Package client talks to the site's own proxy endpoints. The session layer
// depends on the small interfaces in internal/session; these clients are the
// HTTP implementations a real widget runs against.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// ChatClient asks the chat proxy for a reply. It satisfies
// session.Responder.
type ChatClient struct {
	baseURL    string
	httpClient *http.Client
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error string `json:"error,omitempty"`
}

type ChatOption func(*ChatClient)

func WithChatTimeout(timeout time.Duration) ChatOption {
	return func(c *ChatClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewChatClient(baseURL string, opts ...ChatOption) *ChatClient {
	c := &ChatClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reply sends the fully rendered prompt as a single user message and
// extracts the answer from the provider-shaped response.
func (c *ChatClient) Reply(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/chat", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat endpoint returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}

	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("chat response contained no content")
	}
	return parsed.Content[0].Text, nil
}
