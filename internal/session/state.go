package session

import "fmt"

// State is the session's single explicit state. The listening, loading,
// generating-audio and speaking flags of the UI are derived from it instead
// of being tracked as independent booleans.
type State int

const (
	StateIdle State = iota
	StateListening
	StateAwaitingReply
	StateGeneratingAudio
	StateSpeaking
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateAwaitingReply:
		return "awaiting-reply"
	case StateGeneratingAudio:
		return "generating-audio"
	case StateSpeaking:
		return "speaking"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Strategy selects how a reply is turned into audible speech.
type Strategy string

const (
	// StrategyBrowser uses the injected local synthesis capability.
	StrategyBrowser Strategy = "browser"
	// StrategyPremium fetches cloned-voice audio from the TTS proxy and
	// plays the decoded payload.
	StrategyPremium Strategy = "premium"
)

// Playback identifies the at-most-one active spoken utterance.
type Playback struct {
	TurnIndex int
	Strategy  Strategy
}

var transitions = map[State][]State{
	StateIdle:            {StateListening, StateAwaitingReply, StateGeneratingAudio, StateSpeaking},
	StateListening:       {StateIdle},
	StateAwaitingReply:   {StateIdle},
	StateGeneratingAudio: {StateIdle, StateSpeaking},
	StateSpeaking:        {StateIdle},
}

func validTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionError reports a rejected state transition, e.g. trying to start
// listening while premium audio is being generated without cancelling first.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid session transition from %s to %s", e.From, e.To)
}
