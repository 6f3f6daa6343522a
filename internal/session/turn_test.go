package session

import "testing"

func TestTranscriptAppendOrder(t *testing.T) {
	var tr Transcript

	if got := tr.Append(RoleUser, "first"); got != 1 {
		t.Errorf("expected length 1, got %d", got)
	}
	if got := tr.Append(RoleAssistant, "second"); got != 2 {
		t.Errorf("expected length 2, got %d", got)
	}

	turns := tr.Turns()
	if turns[0].Text != "first" || turns[1].Text != "second" {
		t.Errorf("unexpected order: %+v", turns)
	}
}

func TestTranscriptAt(t *testing.T) {
	var tr Transcript
	tr.Append(RoleUser, "hello")

	if turn, ok := tr.At(0); !ok || turn.Text != "hello" {
		t.Errorf("expected hello at 0, got %+v %v", turn, ok)
	}
	if _, ok := tr.At(1); ok {
		t.Error("expected out-of-range miss")
	}
	if _, ok := tr.At(-1); ok {
		t.Error("expected negative-index miss")
	}
}

func TestTranscriptTurnsReturnsCopy(t *testing.T) {
	var tr Transcript
	tr.Append(RoleUser, "original")

	turns := tr.Turns()
	turns[0].Text = "mutated"

	if turn, _ := tr.At(0); turn.Text != "original" {
		t.Errorf("transcript was mutated through the copy: %+v", turn)
	}
}

func TestRenderLabelsRoles(t *testing.T) {
	var tr Transcript
	tr.Append(RoleUser, "who are you?")
	tr.Append(RoleAssistant, "the site owner")

	got := tr.Render("Visitor", "Me")
	want := "Visitor: who are you?\nMe: the site owner"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderEmptyTranscript(t *testing.T) {
	var tr Transcript
	if got := tr.Render("Visitor", "Me"); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}
