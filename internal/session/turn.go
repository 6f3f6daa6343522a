package session

import (
	"fmt"
	"strings"
	"sync"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation. Turns are immutable once appended.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is the append-only, ordered list of turns for one session.
// Turns are never mutated or removed, only appended, and ordering is
// chronological. There is no truncation; growth is unbounded.
type Transcript struct {
	mu    sync.Mutex
	turns []Turn
}

// Append adds a turn and returns the new transcript length.
func (t *Transcript) Append(role Role, text string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.turns = append(t.turns, Turn{Role: role, Text: text})
	return len(t.turns)
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.turns)
}

// At returns the turn at the given position.
func (t *Transcript) At(i int) (Turn, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.turns) {
		return Turn{}, false
	}
	return t.turns[i], true
}

// Turns returns a copy of all turns in order.
func (t *Transcript) Turns() []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Render serializes the transcript into a flat, newline-joined dialogue
// with a label per role, suitable as prompt context.
func (t *Transcript) Render(userLabel, assistantLabel string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, len(t.turns))
	for _, turn := range t.turns {
		label := assistantLabel
		if turn.Role == RoleUser {
			label = userLabel
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, turn.Text))
	}
	return strings.Join(lines, "\n")
}
