// Package openai implements speech.Recognizer with the OpenAI audio
// transcription API (Whisper / gpt-4o-transcribe).
package openai

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/speech"
)

// Recognizer transcribes clips through the OpenAI API.
type Recognizer struct {
	client   *gogpt.Client
	model    string
	language string
}

// New creates a Recognizer. language is an optional ISO-639-1 hint.
func New(client *gogpt.Client, model, language string) *Recognizer {
	return &Recognizer{client: client, model: model, language: language}
}

// Name returns the backend identifier.
func (r *Recognizer) Name() string { return "openai" }

// Recognize uploads the WAV clip. A blank transcript is a no-match.
func (r *Recognizer) Recognize(ctx context.Context, clip audio.Clip) (*speech.Result, error) {
	resp, err := r.client.CreateTranscription(ctx, gogpt.AudioRequest{
		Model:    r.model,
		FilePath: "speech.wav",
		Reader:   bytes.NewReader(clip.Data),
		Language: r.language,
		Format:   gogpt.AudioResponseFormatJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	slog.Debug("transcription complete", "backend", "openai", "audio_bytes", len(clip.Data), "text_length", len(text))

	if text == "" {
		return &speech.Result{Status: speech.StatusNoMatch}, nil
	}
	return &speech.Result{Status: speech.StatusRecognized, Text: text}, nil
}
