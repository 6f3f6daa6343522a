package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) GenerateReply(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeLLM) IsModelAvailable(_ context.Context) error { return nil }

func postChat(handler *ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.Chat(rr, req)
	return rr
}

func TestChatReturnsProviderShapedReply(t *testing.T) {
	llm := &fakeLLM{reply: "I work mostly on backend services"}
	handler := NewChatHandler(llm, nil, nil, time.Second)

	rr := postChat(handler, `{"messages":[{"role":"user","content":"what do you do?"}]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Content) != 1 || resp.Content[0].Text != "I work mostly on backend services" {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Content[0].Type != "text" {
		t.Errorf("expected text block, got %q", resp.Content[0].Type)
	}
	if llm.lastPrompt != "what do you do?" {
		t.Errorf("provider got wrong prompt: %q", llm.lastPrompt)
	}
}

func TestChatRejectsEmptyMessages(t *testing.T) {
	handler := NewChatHandler(&fakeLLM{reply: "x"}, nil, nil, time.Second)

	for _, body := range []string{`{}`, `{"messages":[]}`, `{"messages":[{"role":"user","content":"  "}]}`, `garbage`} {
		rr := postChat(handler, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestChatProviderFailureIsBadGateway(t *testing.T) {
	handler := NewChatHandler(&fakeLLM{err: errors.New("model offline")}, nil, nil, time.Second)

	rr := postChat(handler, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp["error"] != "Error generating reply" {
		t.Errorf("unexpected error message %q", resp["error"])
	}
}
