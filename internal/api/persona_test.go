package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardev/portfolio/internal/session"
)

func TestPersonaEndpointServesConfiguredValues(t *testing.T) {
	handler := NewPersonaHandler("Be me.\n{{.History}}\n{{.Question}}", "Guest", "Carlos")

	req := httptest.NewRequest("GET", "/api/persona", nil)
	rr := httptest.NewRecorder()
	handler.Persona(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp PersonaResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Template != "Be me.\n{{.History}}\n{{.Question}}" {
		t.Errorf("unexpected template: %q", resp.Template)
	}
	if resp.UserLabel != "Guest" || resp.AssistantLabel != "Carlos" {
		t.Errorf("unexpected labels: %q / %q", resp.UserLabel, resp.AssistantLabel)
	}
}

func TestPersonaEndpointServesDefaultTemplate(t *testing.T) {
	handler := NewPersonaHandler(session.DefaultPersona().Text(), "Visitor", "Me")

	req := httptest.NewRequest("GET", "/api/persona", nil)
	rr := httptest.NewRecorder()
	handler.Persona(rr, req)

	var resp PersonaResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Template, "{{.History}}") || !strings.Contains(resp.Template, "{{.Question}}") {
		t.Errorf("default template missing interpolation points: %q", resp.Template)
	}
}
