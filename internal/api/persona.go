package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PersonaHandler exposes the persona template and transcript labels so the
// widget builds its prompts from the same configuration as the server.
type PersonaHandler struct {
	template       string
	userLabel      string
	assistantLabel string
}

type PersonaResponse struct {
	Template       string `json:"template"`
	UserLabel      string `json:"userLabel"`
	AssistantLabel string `json:"assistantLabel"`
}

func NewPersonaHandler(template, userLabel, assistantLabel string) *PersonaHandler {
	return &PersonaHandler{
		template:       template,
		userLabel:      userLabel,
		assistantLabel: assistantLabel,
	}
}

// GET /api/persona - Serve the persona template and labels
func (ph *PersonaHandler) Persona(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PersonaResponse{
		Template:       ph.template,
		UserLabel:      ph.userLabel,
		AssistantLabel: ph.assistantLabel,
	})
}

func RegisterPersonaRoutes(r *mux.Router, handler *PersonaHandler) {
	r.HandleFunc("/persona", handler.Persona).Methods("GET")
}
