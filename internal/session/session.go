package session

import (
	"context"
	"strings"
	"sync"

	"github.com/cardev/portfolio/internal/logger"
)

// DefaultFallbackReply is appended as an assistant turn whenever a send
// fails for any reason.
const DefaultFallbackReply = "I had a problem processing your question, please try again"

// VoiceProfile holds the fixed utterance parameters for local synthesis and
// the ordered voice-name preference list.
type VoiceProfile struct {
	Language        string
	Rate            float64
	Pitch           float64
	PreferredVoices []string
}

// Session owns one visitor's conversation: the append-only transcript, the
// pending input buffer, the explicit state machine, and the speech input and
// output adapters. All methods are safe for use from the single event-driven
// caller plus capability callbacks.
type Session struct {
	mu         sync.Mutex
	transcript Transcript
	pending    string
	state      State
	active     *Playback

	// playSeq invalidates in-flight playback callbacks after a cancel.
	playSeq uint64

	// listenCtx is the context the capture was started with, reused by the
	// auto-restart policy.
	listenCtx context.Context

	responder   Responder
	fetcher     AudioFetcher
	recognizer  Recognizer
	synthesizer Synthesizer
	player      Player

	persona        *Persona
	userLabel      string
	assistantLabel string
	fallbackReply  string
	voice          VoiceProfile
	singleShot     bool

	onTurn   func(index int, turn Turn)
	onState  func(state State)
	onNotice func(notice Notice)

	logger *logger.Log
}

type Option func(*Session)

func WithRecognizer(r Recognizer) Option {
	return func(s *Session) { s.recognizer = r }
}

func WithSynthesizer(synth Synthesizer) Option {
	return func(s *Session) { s.synthesizer = synth }
}

// WithPremiumVoice wires the remote cloned-voice strategy: a fetcher for the
// TTS proxy and a player for the decoded audio.
func WithPremiumVoice(f AudioFetcher, p Player) Option {
	return func(s *Session) {
		s.fetcher = f
		s.player = p
	}
}

func WithPersona(p *Persona) Option {
	return func(s *Session) { s.persona = p }
}

func WithLabels(userLabel, assistantLabel string) Option {
	return func(s *Session) {
		s.userLabel = userLabel
		s.assistantLabel = assistantLabel
	}
}

func WithFallbackReply(text string) Option {
	return func(s *Session) { s.fallbackReply = text }
}

// WithSingleShotListening disables the auto-restart policy: the engine's
// end-of-session signal always returns the session to idle.
func WithSingleShotListening() Option {
	return func(s *Session) { s.singleShot = true }
}

func WithVoiceProfile(profile VoiceProfile) Option {
	return func(s *Session) { s.voice = profile }
}

func WithTurnCallback(callback func(index int, turn Turn)) Option {
	return func(s *Session) { s.onTurn = callback }
}

func WithStateCallback(callback func(state State)) Option {
	return func(s *Session) { s.onState = callback }
}

func WithNoticeCallback(callback func(notice Notice)) Option {
	return func(s *Session) { s.onNotice = callback }
}

func WithLogger(log *logger.Log) Option {
	return func(s *Session) { s.logger = log }
}

// New creates an empty session. The transcript lives only for the lifetime
// of the session; there is no persistence.
func New(responder Responder, opts ...Option) *Session {
	s := &Session{
		responder:      responder,
		persona:        DefaultPersona(),
		userLabel:      "Visitor",
		assistantLabel: "Me",
		fallbackReply:  DefaultFallbackReply,
		voice: VoiceProfile{
			Language: "es-ES",
			Rate:     0.9,
			Pitch:    1.0,
		},
		onTurn:   func(int, Turn) {},
		onState:  func(State) {},
		onNotice: func(Notice) {},
		logger:   logger.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a conversation request is in flight.
func (s *Session) Loading() bool {
	return s.State() == StateAwaitingReply
}

func (s *Session) Listening() bool {
	return s.State() == StateListening
}

// Speaking is true while audio is playing or premium audio is being
// generated for an utterance.
func (s *Session) Speaking() bool {
	st := s.State()
	return st == StateSpeaking || st == StateGeneratingAudio
}

func (s *Session) GeneratingAudio() bool {
	return s.State() == StateGeneratingAudio
}

// ActivePlayback returns the currently playing utterance, if any.
func (s *Session) ActivePlayback() *Playback {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	p := *s.active
	return &p
}

func (s *Session) Turns() []Turn {
	return s.transcript.Turns()
}

func (s *Session) Len() int {
	return s.transcript.Len()
}

// Pending returns the not-yet-sent user text.
func (s *Session) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// SetPending replaces the pending input buffer (direct typing).
func (s *Session) SetPending(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = text
}

// appendPending concatenates a final recognition segment onto the buffer,
// space-joined and trimmed.
func (s *Session) appendPending(segment string) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return
	}
	if s.pending == "" {
		s.pending = segment
		return
	}
	s.pending = s.pending + " " + segment
}

// Send issues the conversation request for the pending input. It is a no-op
// when the trimmed input is empty or another send is already in flight. Any
// failure is absorbed into a fixed fallback assistant turn; the loading
// state is always reset.
func (s *Session) Send(ctx context.Context) {
	s.mu.Lock()
	text := strings.TrimSpace(s.pending)
	if text == "" || s.state == StateAwaitingReply {
		s.mu.Unlock()
		return
	}
	wasListening := s.state == StateListening
	hasPlayback := s.active != nil
	s.mu.Unlock()

	// The machine holds one state at a time, so capture and playback are
	// stopped before the send transition.
	if wasListening {
		s.StopListening()
	}
	if hasPlayback {
		s.cancelPlayback()
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	history := s.transcript.Render(s.userLabel, s.assistantLabel)
	index := s.transcript.Append(RoleUser, text)
	userTurn := Turn{Role: RoleUser, Text: text}
	s.pending = ""
	s.state = StateAwaitingReply
	s.mu.Unlock()

	s.onTurn(index-1, userTurn)
	s.onState(StateAwaitingReply)

	defer s.setIdleFrom(StateAwaitingReply)

	reply := s.fallbackReply
	prompt, err := s.persona.Prompt(history, text)
	if err == nil {
		var answer string
		answer, err = s.responder.Reply(ctx, prompt)
		if err == nil && strings.TrimSpace(answer) != "" {
			reply = answer
		}
	}
	if err != nil {
		s.logger.WithError(err).Error("conversation request failed")
	}

	replyIndex := s.transcript.Append(RoleAssistant, reply)
	s.onTurn(replyIndex-1, Turn{Role: RoleAssistant, Text: reply})
}

// setIdleFrom moves the session back to idle if it is still in the given
// state, returning whether it did.
func (s *Session) setIdleFrom(from State) bool {
	s.mu.Lock()
	if s.state != from {
		s.mu.Unlock()
		return false
	}
	s.state = StateIdle
	s.mu.Unlock()
	s.onState(StateIdle)
	return true
}

func (s *Session) notify(notice Notice) {
	s.onNotice(notice)
}
