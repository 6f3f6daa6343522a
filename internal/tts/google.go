package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/cardev/portfolio/config"
	"github.com/cardev/portfolio/internal/logger"
)

// GoogleEngine is the alternate synthesis engine for deployments without a
// cloned voice.
type GoogleEngine struct {
	client *texttospeech.Client
	voice  string
	logger *logger.Log
}

func NewGoogleEngine(cfg *config.GoogleTtsConfig) (*GoogleEngine, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google TTS client: %w", err)
	}

	voice := cfg.Voice
	if voice == "" {
		voice = "es-ES-Chirp-HD-F"
	}

	return &GoogleEngine{
		client: client,
		voice:  voice,
		logger: logger.New(),
	}, nil
}

// languageCode extracts the locale from a voice name (e.g.
// "es-ES-Chirp-HD-F" -> "es-ES").
func (g *GoogleEngine) languageCode() string {
	parts := strings.Split(g.voice, "-")
	if len(parts) >= 2 {
		return fmt.Sprintf("%s-%s", parts[0], parts[1])
	}
	return "es-ES"
}

func (g *GoogleEngine) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	req := &ttspb.SynthesizeSpeechRequest{
		Input: &ttspb.SynthesisInput{
			InputSource: &ttspb.SynthesisInput_Text{Text: text},
		},
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: g.languageCode(),
			Name:         g.voice,
		},
		AudioConfig: &ttspb.AudioConfig{
			AudioEncoding:   ttspb.AudioEncoding_MP3, // MP3 for web compatibility
			SampleRateHertz: 22050,
		},
	}

	g.logger.Debug(fmt.Sprintf("Generating Google TTS audio with voice %s", g.voice))

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	if len(resp.AudioContent) == 0 {
		return nil, fmt.Errorf("empty audio content received from Google TTS")
	}

	return resp.AudioContent, nil
}

func (g *GoogleEngine) Name() string {
	return "Google Cloud Text-to-Speech"
}

func (g *GoogleEngine) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
