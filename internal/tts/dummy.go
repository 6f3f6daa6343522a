package tts

import (
	"context"
	"fmt"
)

// DummyEngine stands in when no synthesis provider is configured.
type DummyEngine struct{}

func NewDummyEngine() *DummyEngine {
	return &DummyEngine{}
}

func (d *DummyEngine) GenerateAudio(_ context.Context, _ string) ([]byte, error) {
	return nil, fmt.Errorf("no tts engine configured")
}

func (d *DummyEngine) Name() string {
	return "dummy"
}
