// Package azure implements speech.Recognizer with the Azure Speech
// short-audio REST API.
package azure

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/cognitive"
	"github.com/aashnajoshi/TextSense/internal/speech"
)

const recognitionPath = "/speech/recognition/conversation/cognitiveservices/v1"

// Endpoint returns the regional speech-to-text host.
func Endpoint(region string) string {
	return "https://" + region + ".stt.speech.microsoft.com"
}

// Recognizer calls the short-audio recognition endpoint.
type Recognizer struct {
	client   *cognitive.Client
	language string
}

// New creates a Recognizer. language is the recognition locale, e.g. "en-US".
func New(client *cognitive.Client, language string) *Recognizer {
	if language == "" {
		language = "en-US"
	}
	return &Recognizer{client: client, language: language}
}

// Name returns the backend identifier.
func (r *Recognizer) Name() string { return "azure" }

// Recognize posts the WAV clip and maps RecognitionStatus.
func (r *Recognizer) Recognize(ctx context.Context, clip audio.Clip) (*speech.Result, error) {
	q := url.Values{}
	q.Set("language", r.language)
	q.Set("format", "simple")

	rate := clip.SampleRate
	if rate == 0 {
		rate = 16000
	}
	contentType := fmt.Sprintf("audio/wav; codecs=audio/pcm; samplerate=%d", rate)

	var resp response
	err := r.client.Do(ctx, http.MethodPost, recognitionPath, q, contentType, bytes.NewReader(clip.Data), &resp)
	if err != nil {
		return nil, fmt.Errorf("speech request: %w", err)
	}

	slog.Debug("speech recognition complete", "backend", "azure",
		"audio_bytes", len(clip.Data), "status", resp.RecognitionStatus)

	switch resp.RecognitionStatus {
	case "Success":
		return &speech.Result{Status: speech.StatusRecognized, Text: resp.DisplayText}, nil
	case "NoMatch", "InitialSilenceTimeout", "BabbleTimeout":
		return &speech.Result{Status: speech.StatusNoMatch}, nil
	default:
		return nil, fmt.Errorf("speech recognition failed: status %q", resp.RecognitionStatus)
	}
}

type response struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
	Offset            int64  `json:"Offset"`
	Duration          int64  `json:"Duration"`
}
