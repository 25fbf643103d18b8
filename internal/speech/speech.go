// Package speech is the text-to-speech boundary. The concrete backend lives
// behind Synthesizer; this package handles the length limits the backends
// impose.
package speech

import (
	"context"
	"fmt"

	"mlb-storyteller-service/internal/chunker"
)

// VoiceParams selects and tunes a synthesis voice. SpeakingRate and Pitch of
// zero mean the backend default.
type VoiceParams struct {
	VoiceID      string  `json:"voice_id"`
	LanguageCode string  `json:"language_code"`
	SpeakingRate float64 `json:"speaking_rate,omitempty"`
	Pitch        float64 `json:"pitch,omitempty"`
}

// Voice describes one voice a backend offers.
type Voice struct {
	Name          string   `json:"name"`
	Gender        string   `json:"gender"`
	LanguageCodes []string `json:"language_codes"`
}

// Synthesizer converts one bounded chunk of text into audio bytes. Inputs are
// guaranteed to be at most chunker.MaxSynthesisChars long.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, params VoiceParams) ([]byte, error)
	Voices(ctx context.Context, languageCode string) ([]Voice, error)
}

// GenerateLongAudio synthesizes text of any length by chunking it at sentence
// boundaries and concatenating the audio segments in chunk order.
func GenerateLongAudio(ctx context.Context, synth Synthesizer, text string, params VoiceParams) ([]byte, error) {
	chunks := chunker.Chunk(text, chunker.MaxSynthesisChars)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("synthesize: empty text")
	}

	var audio []byte
	for i, chunk := range chunks {
		segment, err := synth.Synthesize(ctx, chunk, params)
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d of %d: %w", i+1, len(chunks), err)
		}
		audio = append(audio, segment...)
	}
	return audio, nil
}
