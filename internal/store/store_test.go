package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogExchangeAndRecent(t *testing.T) {
	s := newTestStore(t)

	if err := s.LogExchange("visitor-1", "who are you?", "the site owner"); err != nil {
		t.Fatalf("log exchange: %v", err)
	}
	if err := s.LogExchange("visitor-2", "what do you build?", "backend services"); err != nil {
		t.Fatalf("log exchange: %v", err)
	}

	exchanges, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(exchanges) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(exchanges))
	}

	seen := map[string]string{}
	for _, ex := range exchanges {
		seen[ex.VisitorID] = ex.Question
	}
	if seen["visitor-1"] != "who are you?" || seen["visitor-2"] != "what do you build?" {
		t.Errorf("unexpected exchanges: %+v", exchanges)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.LogExchange("v", "q", "a"); err != nil {
			t.Fatalf("log exchange: %v", err)
		}
	}

	exchanges, err := s.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(exchanges) != 3 {
		t.Errorf("expected 3 exchanges, got %d", len(exchanges))
	}

	exchanges, err = s.Recent(0)
	if err != nil {
		t.Fatalf("recent with default limit: %v", err)
	}
	if len(exchanges) != 5 {
		t.Errorf("expected all 5 exchanges under default limit, got %d", len(exchanges))
	}
}
