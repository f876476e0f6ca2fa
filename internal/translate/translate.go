// Package translate defines the interface for remote machine translation.
package translate

import (
	"context"
	"strings"
)

// QuitSentinel is the reserved target-language input that skips translation.
const QuitSentinel = "q"

// IsQuit reports whether target is the quit sentinel. Surrounding whitespace
// and case are ignored.
func IsQuit(target string) bool {
	return strings.EqualFold(strings.TrimSpace(target), QuitSentinel)
}

// Result is the first translation returned by the endpoint plus the source
// language the service inferred.
type Result struct {
	DetectedLanguage string  `json:"detected_language"`
	Score            float64 `json:"score"`
	Text             string  `json:"text"`
	To               string  `json:"to"`
}

// Translator renders text in a target language.
type Translator interface {
	// Name returns the backend identifier.
	Name() string

	// Translate sends text to the endpoint. target is passed through as the
	// user typed it (trimmed); an invalid code fails remotely.
	Translate(ctx context.Context, text, target string) (*Result, error)
}
