package session

// RecognitionOptions carries the callbacks a recognizer invokes while a
// capture is running. Only transcripts flagged final by the engine reach
// TranscriptCallback; interim results go to InterimTranscriptCallback and
// are discarded by the session.
type RecognitionOptions struct {
	TranscriptCallback        func(transcript string)
	InterimTranscriptCallback func(transcript string)
	EndCallback               func()
	ErrorCallback             func(err RecognitionError)
}

type RecognitionOption func(*RecognitionOptions)

func NewRecognitionOptions(opts ...RecognitionOption) *RecognitionOptions {
	options := &RecognitionOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func WithTranscriptCallback(callback func(transcript string)) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.TranscriptCallback = callback
	}
}

func WithInterimTranscriptCallback(callback func(transcript string)) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.InterimTranscriptCallback = callback
	}
}

func WithEndCallback(callback func()) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.EndCallback = callback
	}
}

func WithErrorCallback(callback func(err RecognitionError)) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.ErrorCallback = callback
	}
}

// SpeakOptions carries the utterance parameters and lifecycle callbacks for
// local synthesis.
type SpeakOptions struct {
	Language  string
	Rate      float64
	Pitch     float64
	VoiceName string

	StartCallback func()
	EndCallback   func()
	ErrorCallback func(err error)
}

type SpeakOption func(*SpeakOptions)

func NewSpeakOptions(opts ...SpeakOption) *SpeakOptions {
	options := &SpeakOptions{Rate: 1.0, Pitch: 1.0}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func WithLanguage(language string) SpeakOption {
	return func(o *SpeakOptions) {
		o.Language = language
	}
}

func WithRate(rate float64) SpeakOption {
	return func(o *SpeakOptions) {
		o.Rate = rate
	}
}

func WithPitch(pitch float64) SpeakOption {
	return func(o *SpeakOptions) {
		o.Pitch = pitch
	}
}

func WithVoiceName(name string) SpeakOption {
	return func(o *SpeakOptions) {
		o.VoiceName = name
	}
}

func WithSpeechStartedCallback(callback func()) SpeakOption {
	return func(o *SpeakOptions) {
		o.StartCallback = callback
	}
}

func WithSpeechEndedCallback(callback func()) SpeakOption {
	return func(o *SpeakOptions) {
		o.EndCallback = callback
	}
}

func WithSpeechErrorCallback(callback func(err error)) SpeakOption {
	return func(o *SpeakOptions) {
		o.ErrorCallback = callback
	}
}

// PlayOptions carries lifecycle callbacks for decoded-audio playback.
type PlayOptions struct {
	StartCallback func()
	EndCallback   func()
	ErrorCallback func(err error)
}

type PlayOption func(*PlayOptions)

func NewPlayOptions(opts ...PlayOption) *PlayOptions {
	options := &PlayOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func WithPlaybackStartedCallback(callback func()) PlayOption {
	return func(o *PlayOptions) {
		o.StartCallback = callback
	}
}

func WithPlaybackEndedCallback(callback func()) PlayOption {
	return func(o *PlayOptions) {
		o.EndCallback = callback
	}
}

func WithPlaybackErrorCallback(callback func(err error)) PlayOption {
	return func(o *PlayOptions) {
		o.ErrorCallback = callback
	}
}
