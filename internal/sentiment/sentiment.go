// Package sentiment defines the interface for remote sentiment analysis.
//
// Classification is entirely remote: an Analyzer posts the subject text to a
// hosted endpoint and hands back the label and confidence scores exactly as
// returned. TextSense ships an Azure Text Analytics backend and an OpenAI
// chat backend.
package sentiment

import "context"

// Labels returned by the backends.
const (
	Positive = "positive"
	Neutral  = "neutral"
	Negative = "negative"
	Mixed    = "mixed"
)

// Scores are the per-class confidences. They are surfaced unmodified; no
// check is made that they sum to one.
type Scores struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Result is one sentiment classification.
type Result struct {
	Label  string `json:"sentiment"`
	Scores Scores `json:"confidence_scores"`

	// Language is the ISO-639-1 code the service detected, empty when the
	// backend does not report one.
	Language string `json:"language,omitempty"`
}

// Analyzer classifies the sentiment of a piece of text.
type Analyzer interface {
	// Name returns the backend identifier (e.g., "azure", "openai").
	Name() string

	// Analyze sends text to the sentiment endpoint.
	Analyze(ctx context.Context, text string) (*Result, error)
}
