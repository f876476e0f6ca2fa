// Package speech defines the interface for remote speech recognition.
package speech

import (
	"context"
	"strings"

	"github.com/aashnajoshi/TextSense/internal/audio"
)

// Recognition statuses.
const (
	StatusRecognized = "recognized"
	StatusNoMatch    = "no_match"
)

// Result is one recognition attempt.
type Result struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

// Recognized reports whether the attempt produced a usable utterance.
func (r *Result) Recognized() bool {
	return r != nil && r.Status == StatusRecognized && strings.TrimSpace(r.Text) != ""
}

// Recognizer transcribes a single short utterance.
type Recognizer interface {
	// Name returns the backend identifier.
	Name() string

	// Recognize sends the clip to the speech endpoint. An utterance that
	// could not be matched is not an error; it is reported as StatusNoMatch.
	Recognize(ctx context.Context, clip audio.Clip) (*Result, error)
}
