package session

import "context"

// The browser-global speech engines and the two backend proxies are injected
// behind these interfaces so the session logic can run against fakes.

// Responder produces the assistant reply for a fully rendered prompt. The
// conversation proxy client implements it over POST /api/chat.
type Responder interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// AudioFetcher retrieves synthesized speech for a reply text. The TTS proxy
// client implements it over POST /api/tts, returning decoded audio bytes.
type AudioFetcher interface {
	Fetch(ctx context.Context, text string) ([]byte, error)
}

// Recognizer wraps a continuous speech-recognition capability. Callbacks are
// registered through recognition options when the capture is started.
type Recognizer interface {
	Start(ctx context.Context, opts ...RecognitionOption) error
	Stop()
}

// Synthesizer wraps a local speech-synthesis capability. Voices lists the
// voices the engine offers, so the session can pick one before speaking.
type Synthesizer interface {
	Speak(ctx context.Context, text string, opts ...SpeakOption) error
	Cancel()
	Voices() []Voice
}

// Player plays back a decoded audio payload.
type Player interface {
	Play(ctx context.Context, audio []byte, opts ...PlayOption) error
	Stop()
}

// RecognitionError categorizes engine errors the way the session surfaces
// them to the user.
type RecognitionError string

const (
	ErrRecognitionNotAllowed   RecognitionError = "not-allowed"
	ErrRecognitionNoSpeech     RecognitionError = "no-speech"
	ErrRecognitionAudioCapture RecognitionError = "audio-capture"
	ErrRecognitionNetwork      RecognitionError = "network"
	ErrRecognitionAborted      RecognitionError = "aborted"
)

func (e RecognitionError) Error() string {
	return "speech recognition error: " + string(e)
}

// Recoverable reports whether the error leaves the capture usable, so the
// auto-restart policy can keep listening through it.
func (e RecognitionError) Recoverable() bool {
	return e == ErrRecognitionNoSpeech || e == ErrRecognitionAudioCapture
}

// NoticeCategory classifies user-visible notices raised by the session.
type NoticeCategory string

const (
	NoticeNoRecognition NoticeCategory = "no-recognition"
	NoticeNoSynthesis   NoticeCategory = "no-synthesis"
	NoticePermission    NoticeCategory = "permission"
	NoticeNetwork       NoticeCategory = "network"
	NoticeGeneric       NoticeCategory = "generic"
)

// Notice is a user-visible message, e.g. a capability-absence warning asking
// the visitor to switch browsers or use text input.
type Notice struct {
	Category NoticeCategory
	Message  string
}
