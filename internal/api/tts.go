package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/cardev/portfolio/internal/logger"
	"github.com/cardev/portfolio/internal/tts"
)

type TTSHandler struct {
	engine  tts.Engine
	timeout time.Duration
	logger  *logger.Log
}

type TTSRequest struct {
	Text string `json:"text"`
}

// TTSResponse carries the generated speech as base64 so the widget can
// build a data URL without a second fetch.
type TTSResponse struct {
	Audio       string `json:"audio"`
	ContentType string `json:"contentType"`
}

func NewTTSHandler(engine tts.Engine, timeout time.Duration) *TTSHandler {
	return &TTSHandler{
		engine:  engine,
		timeout: timeout,
		logger:  logger.New(),
	}
}

// POST /api/tts - Generate cloned-voice audio for a reply
func (th *TTSHandler) Speak(w http.ResponseWriter, r *http.Request) {
	// The method check lives in the handler so the 405 carries the same
	// JSON error shape as every other failure.
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), th.timeout)
	defer cancel()

	audio, err := th.engine.GenerateAudio(ctx, req.Text)
	if err != nil {
		var upstream *tts.UpstreamError
		if errors.As(err, &upstream) {
			th.logger.WithError(err).Error("speech provider rejected request")
			writeJSON(w, upstream.Status, map[string]interface{}{
				"error":   "Error generating audio",
				"details": upstream.Details,
			})
			return
		}

		th.logger.WithError(err).Error("speech generation failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, TTSResponse{
		Audio:       base64.StdEncoding.EncodeToString(audio),
		ContentType: "audio/mpeg",
	})
}

func RegisterTTSRoutes(r *mux.Router, handler *TTSHandler) {
	r.HandleFunc("/tts", handler.Speak)
}
