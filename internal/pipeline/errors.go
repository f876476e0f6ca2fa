package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoContent marks an input that produced nothing to analyze. It aborts
// the current cycle without any remote enrichment call.
var ErrNoContent = errors.New("no content")

// ErrSkipped is returned by Translate when the user entered the quit
// sentinel instead of a target language.
var ErrSkipped = errors.New("translation skipped")

// User-facing reasons for a no-content outcome.
const (
	MsgEmptyText          = "Please enter some text to analyze."
	MsgNoFile             = "No file selected."
	MsgNoTextInImage      = "No text detected in the image."
	MsgNoSpeech           = "No speech recognized."
	MsgNothingToTranslate = "Nothing to translate yet. Analyze some text first."
)

// NoContentError carries the message a shell shows the user.
type NoContentError struct {
	Reason string
}

func (e *NoContentError) Error() string { return "no content: " + e.Reason }

// Unwrap lets errors.Is match ErrNoContent.
func (e *NoContentError) Unwrap() error { return ErrNoContent }

func noContent(reason string) error {
	return &NoContentError{Reason: reason}
}

// unsupportedType reports a file whose extension is not accepted.
func unsupportedType(ext string, allowed []string) error {
	return noContent(fmt.Sprintf("Unsupported file type %q. Please choose a %s file.",
		ext, strings.Join(allowed, ", ")))
}

// Reason returns the user-facing message of a no-content error, or "".
func Reason(err error) string {
	var nc *NoContentError
	if errors.As(err, &nc) {
		return nc.Reason
	}
	return ""
}
