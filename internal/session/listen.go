package session

import "context"

// ToggleListening starts or stops speech capture. Without a recognizer the
// session raises a capability-absence notice and stays in its current state.
func (s *Session) ToggleListening(ctx context.Context) error {
	if s.recognizer == nil {
		s.notify(Notice{
			Category: NoticeNoRecognition,
			Message:  "Speech recognition is not available here. Use a supported browser, or type your question instead.",
		})
		return nil
	}

	s.mu.Lock()
	switch s.state {
	case StateListening:
		s.mu.Unlock()
		s.StopListening()
		return nil
	case StateIdle:
		s.state = StateListening
		s.listenCtx = ctx
		s.mu.Unlock()
	default:
		err := &TransitionError{From: s.state, To: StateListening}
		s.mu.Unlock()
		return err
	}

	s.onState(StateListening)

	if err := s.startCapture(ctx); err != nil {
		s.setIdleFrom(StateListening)
		s.logger.WithError(err).Warn("failed to start speech capture")
		s.notify(Notice{
			Category: NoticeGeneric,
			Message:  "Could not start the microphone. Check browser permissions and try again.",
		})
		return err
	}
	return nil
}

// StopListening stops capture on explicit user toggle. State flips to idle
// before the engine is stopped, so the trailing end-of-session signal is
// ignored instead of triggering an auto-restart.
func (s *Session) StopListening() {
	if !s.setIdleFrom(StateListening) {
		return
	}
	s.recognizer.Stop()
}

func (s *Session) startCapture(ctx context.Context) error {
	// Interim results are deliberately not subscribed: only transcripts the
	// engine flags as final reach the pending buffer.
	return s.recognizer.Start(ctx,
		WithTranscriptCallback(s.handleFinalTranscript),
		WithEndCallback(s.handleCaptureEnd),
		WithErrorCallback(s.handleCaptureError),
	)
}

func (s *Session) handleFinalTranscript(transcript string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateListening {
		return
	}
	s.appendPending(transcript)
}

// handleCaptureEnd implements the end-of-session policy: auto-restart keeps
// recognition running while the user still wants to listen; single-shot
// unconditionally returns to idle.
func (s *Session) handleCaptureEnd() {
	s.mu.Lock()
	if s.state != StateListening {
		s.mu.Unlock()
		return
	}
	if s.singleShot {
		s.state = StateIdle
		s.mu.Unlock()
		s.onState(StateIdle)
		return
	}
	ctx := s.listenCtx
	s.mu.Unlock()

	if err := s.startCapture(ctx); err != nil {
		s.logger.WithError(err).Warn("failed to restart speech capture")
		s.setIdleFrom(StateListening)
	}
}

func (s *Session) handleCaptureError(err RecognitionError) {
	if err.Recoverable() && !s.singleShot {
		// The engine keeps (or restarts) the capture; nothing to do.
		return
	}

	s.setIdleFrom(StateListening)

	notice := Notice{Category: NoticeGeneric, Message: "Microphone error. Try again, or type your question."}
	switch err {
	case ErrRecognitionNotAllowed:
		notice = Notice{Category: NoticePermission, Message: "Microphone access was denied. Allow it in your browser settings."}
	case ErrRecognitionNetwork:
		notice = Notice{Category: NoticeNetwork, Message: "Connection problem while listening. Check your internet and try again."}
	case ErrRecognitionNoSpeech:
		notice = Notice{Category: NoticeGeneric, Message: "No speech was detected. Try again."}
	}
	s.notify(notice)
}
