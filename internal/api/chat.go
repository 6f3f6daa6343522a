package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/cardev/portfolio/internal/auth"
	"github.com/cardev/portfolio/internal/llm"
	"github.com/cardev/portfolio/internal/logger"
	"github.com/cardev/portfolio/internal/store"
	"github.com/cardev/portfolio/internal/ws"
)

type ChatHandler struct {
	llm     llm.LLM
	store   *store.Store // optional conversation log
	hub     *ws.Hub      // optional event push
	timeout time.Duration
	logger  *logger.Log
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is provider-shaped: the widget reads the reply at
// content[0].text.
type ChatResponse struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewChatHandler(client llm.LLM, logStore *store.Store, hub *ws.Hub, timeout time.Duration) *ChatHandler {
	return &ChatHandler{
		llm:     client,
		store:   logStore,
		hub:     hub,
		timeout: timeout,
		logger:  logger.New(),
	}
}

// POST /api/chat - Forward a chat request to the language-model provider
func (ch *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if len(req.Messages) == 0 || strings.TrimSpace(req.Messages[0].Content) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Messages are required"})
		return
	}

	// The widget sends the persona, transcript and new question already
	// folded into a single user message; forward it as the prompt.
	prompt := req.Messages[0].Content

	ctx, cancel := context.WithTimeout(r.Context(), ch.timeout)
	defer cancel()

	reply, err := ch.llm.GenerateReply(ctx, prompt)
	if err != nil {
		ch.logger.WithError(err).Error("chat provider call failed")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Error generating reply"})
		return
	}

	if ch.store != nil {
		visitorID := auth.VisitorID(w, r)
		if err := ch.store.LogExchange(visitorID, prompt, reply); err != nil {
			ch.logger.WithError(err).Warn("failed to log conversation exchange")
		}
	}

	if ch.hub != nil {
		ch.hub.Broadcast("reply", map[string]string{"text": reply})
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Role:    "assistant",
		Content: []ContentBlock{{Type: "text", Text: reply}},
	})
}

func RegisterChatRoutes(r *mux.Router, handler *ChatHandler) {
	r.HandleFunc("/chat", handler.Chat).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
