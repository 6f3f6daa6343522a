package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChatClientExtractsReply(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"role":"assistant","content":[{"type":"text","text":"the reply"}]}`))
	}))
	defer server.Close()

	c := NewChatClient(server.URL)
	reply, err := c.Reply(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "the reply" {
		t.Errorf("expected %q, got %q", "the reply", reply)
	}

	if len(gotBody.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "the prompt" {
		t.Errorf("unexpected message: %+v", gotBody.Messages[0])
	}
}

func TestChatClientErrorOnNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"Error generating reply"}`))
	}))
	defer server.Close()

	c := NewChatClient(server.URL)
	if _, err := c.Reply(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestChatClientErrorOnEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"role":"assistant","content":[]}`))
	}))
	defer server.Close()

	c := NewChatClient(server.URL)
	if _, err := c.Reply(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestChatClientTimeoutOption(t *testing.T) {
	c := NewChatClient("http://localhost", WithChatTimeout(5*time.Second))
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", c.httpClient.Timeout)
	}

	c = NewChatClient("http://localhost", WithChatTimeout(0))
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("expected default timeout kept, got %v", c.httpClient.Timeout)
	}
}
