// Package shell defines the interface for interactive front ends.
//
// Each shell (console, web, desktop) acquires input in its own medium,
// drives the pipeline, and renders results. The pipeline doesn't care how
// input arrives; it only works with the Acquirer and Renderer contracts.
package shell

import (
	"context"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/pipeline"
	"github.com/aashnajoshi/TextSense/internal/speech"
	"github.com/aashnajoshi/TextSense/internal/vision"
)

// Shell is the interface that every front end must implement.
type Shell interface {
	// Name returns the shell identifier (e.g., "console", "web", "desktop").
	Name() string

	// Run serves the user until they quit or the context is cancelled.
	Run(ctx context.Context) error

	// Close releases any resources held by the shell.
	Close() error
}

// Deps are the capabilities a shell needs to build acquirers.
type Deps struct {
	Pipeline   *pipeline.Pipeline
	Reader     vision.Reader
	Recognizer speech.Recognizer // nil when voice input is disabled
	Microphone audio.Source      // nil when the shell records in its own medium
}

// VoiceEnabled reports whether a voice choice should be offered.
func (d Deps) VoiceEnabled() bool {
	return d.Recognizer != nil
}
