package session

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// defaultPersonaTemplate establishes the assistant's identity and response
// policy. It is prepended to every conversation request. Deployments replace
// it with their own template through config; the interpolation points are
// {{.History}} and {{.Question}}.
const defaultPersonaTemplate = `You are the owner of this portfolio, speaking in FIRST PERSON with a
visitor (recruiter, client, company).

YOUR GOAL: answer their questions AND ask strategic questions to understand
what they are looking for and how you can help them.

HOW TO ANSWER:
1. If it is their first question: answer AND ask what they are working on
2. If you already talked: build on the previous exchange
3. Natural, friendly, professional tone (3-4 lines at most)
4. Always say "I am", "I built" (never talk about yourself in third person)
5. If you detect real interest: invite them to reach out by email

PREVIOUS CONVERSATION:
{{.History}}

NEW QUESTION: {{.Question}}

Answer conversationally and strategically:`

// Persona renders the fixed instruction template around the running
// transcript and the new question.
type Persona struct {
	text string
	tmpl *template.Template
}

type personaData struct {
	History  string
	Question string
}

// ParsePersona builds a persona from template text. The template must use
// {{.History}} and {{.Question}} for its interpolation points.
func ParsePersona(text string) (*Persona, error) {
	tmpl, err := template.New("persona").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse persona template: %w", err)
	}
	return &Persona{text: text, tmpl: tmpl}, nil
}

// LoadPersona reads and parses a persona template from disk, for deployments
// that override the built-in one through config.
func LoadPersona(path string) (*Persona, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona template: %w", err)
	}
	return ParsePersona(string(text))
}

// DefaultPersona returns the built-in persona template.
func DefaultPersona() *Persona {
	p, err := ParsePersona(defaultPersonaTemplate)
	if err != nil {
		// The built-in template is a constant; a parse failure is a bug.
		panic(err)
	}
	return p
}

// Text returns the template source, e.g. for serving it to the widget.
func (p *Persona) Text() string {
	return p.text
}

// Prompt interpolates the rendered history and the new question into the
// persona template.
func (p *Persona) Prompt(history, question string) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, personaData{History: history, Question: question}); err != nil {
		return "", fmt.Errorf("failed to render persona template: %w", err)
	}
	return buf.String(), nil
}
