// Package tts defines the text-to-speech service the controller talks to.
package tts

import (
	"context"

	"text-translator/models"
)

// Synthesizer is the interface for text-to-speech backends.
type Synthesizer interface {
	// Synthesize asks the backend for audio of req.Translation and
	// returns a reference to the produced file.
	Synthesize(ctx context.Context, req models.SpeakRequest) (models.SpeakResponse, error)
}

// Player plays an audio reference returned by a Synthesizer.
type Player interface {
	Play(ctx context.Context, ref string) error
}
