package session

import (
	"context"
	"fmt"
)

// TogglePlayback starts, or stops, spoken playback of a turn. Invoking it
// for the pair that is already active stops that playback without issuing a
// new request; invoking it for any other pair cancels whatever is active
// first. At most one utterance plays at a time.
func (s *Session) TogglePlayback(ctx context.Context, turnIndex int, strategy Strategy) error {
	turn, ok := s.transcript.At(turnIndex)
	if !ok {
		return fmt.Errorf("no turn at index %d", turnIndex)
	}

	s.mu.Lock()
	if s.active != nil && *s.active == (Playback{TurnIndex: turnIndex, Strategy: strategy}) {
		s.mu.Unlock()
		s.cancelPlayback()
		return nil
	}
	if s.state == StateListening || s.state == StateAwaitingReply {
		err := &TransitionError{From: s.state, To: StateSpeaking}
		s.mu.Unlock()
		return err
	}
	hasActive := s.active != nil
	s.mu.Unlock()

	if hasActive {
		s.cancelPlayback()
	}

	switch strategy {
	case StrategyBrowser:
		return s.speakLocal(ctx, turnIndex, turn.Text)
	case StrategyPremium:
		return s.speakPremium(ctx, turnIndex, turn.Text)
	default:
		return fmt.Errorf("unknown playback strategy %q", strategy)
	}
}

// cancelPlayback stops whatever utterance is active and invalidates its
// pending callbacks.
func (s *Session) cancelPlayback() {
	s.mu.Lock()
	active := s.active
	if active == nil {
		s.mu.Unlock()
		return
	}
	s.active = nil
	s.playSeq++
	changed := s.state == StateSpeaking || s.state == StateGeneratingAudio
	if changed {
		s.state = StateIdle
	}
	s.mu.Unlock()

	switch active.Strategy {
	case StrategyBrowser:
		if s.synthesizer != nil {
			s.synthesizer.Cancel()
		}
	case StrategyPremium:
		if s.player != nil {
			s.player.Stop()
		}
	}
	if changed {
		s.onState(StateIdle)
	}
}

func (s *Session) speakLocal(ctx context.Context, turnIndex int, text string) error {
	if s.synthesizer == nil {
		s.notify(Notice{
			Category: NoticeNoSynthesis,
			Message:  "Speech synthesis is not available in this browser.",
		})
		return nil
	}

	s.mu.Lock()
	if s.state != StateIdle {
		err := &TransitionError{From: s.state, To: StateSpeaking}
		s.mu.Unlock()
		return err
	}
	s.playSeq++
	seq := s.playSeq
	s.active = &Playback{TurnIndex: turnIndex, Strategy: StrategyBrowser}
	s.mu.Unlock()

	opts := []SpeakOption{
		WithLanguage(s.voice.Language),
		WithRate(s.voice.Rate),
		WithPitch(s.voice.Pitch),
		WithSpeechStartedCallback(func() { s.playbackStarted(seq) }),
		WithSpeechEndedCallback(func() { s.playbackEnded(seq) }),
		WithSpeechErrorCallback(func(err error) { s.playbackFailed(seq, err) }),
	}
	if v, ok := PickVoice(s.synthesizer.Voices(), s.voice.PreferredVoices, s.voice.Language); ok {
		opts = append(opts, WithVoiceName(v.Name))
	}

	if err := s.synthesizer.Speak(ctx, text, opts...); err != nil {
		s.playbackFailed(seq, err)
		return err
	}
	return nil
}

func (s *Session) speakPremium(ctx context.Context, turnIndex int, text string) error {
	if s.fetcher == nil || s.player == nil {
		s.notify(Notice{
			Category: NoticeNoSynthesis,
			Message:  "Voice playback is not configured.",
		})
		return nil
	}

	s.mu.Lock()
	if s.state != StateIdle {
		err := &TransitionError{From: s.state, To: StateGeneratingAudio}
		s.mu.Unlock()
		return err
	}
	s.playSeq++
	seq := s.playSeq
	s.active = &Playback{TurnIndex: turnIndex, Strategy: StrategyPremium}
	s.state = StateGeneratingAudio
	s.mu.Unlock()
	s.onState(StateGeneratingAudio)

	audio, err := s.fetcher.Fetch(ctx, text)

	s.mu.Lock()
	if seq != s.playSeq {
		// Cancelled while generating.
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.active = nil
		s.state = StateIdle
		s.mu.Unlock()
		s.onState(StateIdle)
		// Absorbed: the UI only sees the flags reset.
		s.logger.WithError(err).Warn("premium audio generation failed")
		return err
	}
	s.mu.Unlock()

	if err := s.player.Play(ctx, audio,
		WithPlaybackStartedCallback(func() { s.playbackStarted(seq) }),
		WithPlaybackEndedCallback(func() { s.playbackEnded(seq) }),
		WithPlaybackErrorCallback(func(err error) { s.playbackFailed(seq, err) }),
	); err != nil {
		s.playbackFailed(seq, err)
		return err
	}
	return nil
}

func (s *Session) playbackStarted(seq uint64) {
	s.mu.Lock()
	if seq != s.playSeq || s.active == nil {
		s.mu.Unlock()
		return
	}
	s.state = StateSpeaking
	s.mu.Unlock()
	s.onState(StateSpeaking)
}

func (s *Session) playbackEnded(seq uint64) {
	s.mu.Lock()
	if seq != s.playSeq || s.active == nil {
		s.mu.Unlock()
		return
	}
	s.active = nil
	s.state = StateIdle
	s.mu.Unlock()
	s.onState(StateIdle)
}

func (s *Session) playbackFailed(seq uint64, err error) {
	s.logger.WithError(err).Warn("speech playback failed")
	s.playbackEnded(seq)
}
