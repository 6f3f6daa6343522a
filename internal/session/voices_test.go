package session

import "testing"

var spanishVoices = []Voice{
	{Name: "Google US English", Language: "en-US"},
	{Name: "Monica", Language: "es-ES"},
	{Name: "Paulina", Language: "es-MX"},
	{Name: "Jorge", Language: "es-ES"},
}

func TestPickVoiceExactPreferred(t *testing.T) {
	v, ok := PickVoice(spanishVoices, []string{"jorge", "Monica"}, "es-ES")
	if !ok || v.Name != "Jorge" {
		t.Errorf("expected Jorge, got %+v %v", v, ok)
	}
}

func TestPickVoiceFuzzyPreferred(t *testing.T) {
	v, ok := PickVoice(spanishVoices, []string{"Monic"}, "es-ES")
	if !ok || v.Name != "Monica" {
		t.Errorf("expected fuzzy match on Monica, got %+v %v", v, ok)
	}
}

func TestPickVoiceFallsBackToLocale(t *testing.T) {
	v, ok := PickVoice(spanishVoices, nil, "es-ES")
	if !ok || v.Language[:2] != "es" {
		t.Errorf("expected a Spanish voice, got %+v %v", v, ok)
	}
}

func TestPickVoiceNoMatch(t *testing.T) {
	if v, ok := PickVoice(spanishVoices, nil, "fr-FR"); ok {
		t.Errorf("expected no match, got %+v", v)
	}
}

func TestPickVoiceEmptyList(t *testing.T) {
	if _, ok := PickVoice(nil, []string{"Monica"}, "es-ES"); ok {
		t.Error("expected no match for empty voice list")
	}
}
