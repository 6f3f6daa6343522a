package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardev/portfolio/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.AnthropicConfig{
		APIKey:    "test-key",
		Model:     "claude-3-5-sonnet-20241022",
		BaseURL:   server.URL,
		MaxTokens: 1000,
		Timeout:   5,
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func TestGenerateReplyExtractsFirstContentBlock(t *testing.T) {
	var gotReq messagesRequest
	var gotVersion, gotKey string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"role":"assistant","content":[{"type":"text","text":"hello there"}],"usage":{"output_tokens":4}}`))
	})

	reply, err := client.GenerateReply(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("generate reply: %v", err)
	}
	if reply != "hello there" {
		t.Errorf("expected %q, got %q", "hello there", reply)
	}

	if gotVersion != apiVersion || gotKey != "test-key" {
		t.Errorf("unexpected headers: version=%s key=%s", gotVersion, gotKey)
	}
	if gotReq.Model != "claude-3-5-sonnet-20241022" || gotReq.MaxTokens != 1000 {
		t.Errorf("unexpected request: %+v", gotReq)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "the prompt" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestGenerateReplyErrorOnAPIFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	})

	if _, err := client.GenerateReply(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGenerateReplyErrorOnEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"role":"assistant","content":[]}`))
	})

	if _, err := client.GenerateReply(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(&config.AnthropicConfig{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
