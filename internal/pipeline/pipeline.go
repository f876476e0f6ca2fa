// Package pipeline implements the TextSense analysis cycle.
//
// A cycle acquires one subject (typed text, text read from an image, or a
// recognized utterance), sends it to the sentiment endpoint exactly once,
// and renders the result. The user may then translate the subject. Calls
// are strictly sequential: a later enrichment step is never issued before
// the earlier one has answered.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aashnajoshi/TextSense/internal/langid"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
	"github.com/aashnajoshi/TextSense/internal/translate"
)

// Analysis is the rendered outcome of a successful cycle.
type Analysis struct {
	Subject   Subject          `json:"subject"`
	Language  langid.Language  `json:"language"`
	Sentiment sentiment.Result `json:"sentiment"`
}

// Translation is the rendered outcome of a translation step.
type Translation struct {
	Target string           `json:"target"`
	Source langid.Language  `json:"source_language"`
	Result translate.Result `json:"result"`
}

// Renderer receives each stage of a cycle. Shells implement it to draw
// results in their own medium.
type Renderer interface {
	Acquired(acq Acquisition)
	Analysis(a Analysis)
	Translation(t Translation)
	Notice(msg string)
}

// Pipeline wires the sentiment and translation endpoints.
type Pipeline struct {
	analyzer   sentiment.Analyzer
	translator translate.Translator
}

// New creates a Pipeline.
func New(analyzer sentiment.Analyzer, translator translate.Translator) *Pipeline {
	return &Pipeline{analyzer: analyzer, translator: translator}
}

// Analyze runs one cycle: acquire, analyze sentiment, render, and store the
// subject in sess. A no-content outcome is rendered as a notice and
// returned; a remote fault is returned and leaves sess untouched.
func (p *Pipeline) Analyze(ctx context.Context, sess *Session, in Acquirer, out Renderer) (*Analysis, error) {
	start := time.Now()
	logger := slog.With("source", in.Source())
	logger.Debug("cycle started")

	acq, err := in.Acquire(ctx)
	if err != nil {
		if reason := Reason(err); reason != "" {
			logger.Info("no content", "reason", reason)
			out.Notice(reason)
			return nil, err
		}
		logger.Error("acquisition failed", "error", err)
		return nil, err
	}
	out.Acquired(*acq)

	res, err := p.analyzer.Analyze(ctx, acq.Text)
	if err != nil {
		logger.Error("sentiment failed", "backend", p.analyzer.Name(), "error", err)
		return nil, fmt.Errorf("analyzing sentiment: %w", err)
	}

	a := Analysis{
		Subject:   Subject{Text: acq.Text, Source: acq.Source},
		Language:  subjectLanguage(acq.Text, res.Language),
		Sentiment: *res,
	}
	out.Analysis(a)
	sess.set(a)

	logger.Info("cycle complete", "sentiment", res.Label, "language", a.Language.Code,
		"text_length", len(acq.Text), "duration", time.Since(start))
	return &a, nil
}

// subjectLanguage prefers the language reported by the sentiment endpoint
// and falls back to local detection.
func subjectLanguage(text, reported string) langid.Language {
	if reported != "" {
		return langid.Describe(reported)
	}
	return langid.Detect(text)
}

// Translate translates the current subject into target. The quit sentinel
// returns ErrSkipped without a remote call.
func (p *Pipeline) Translate(ctx context.Context, sess *Session, target string, out Renderer) (*Translation, error) {
	if translate.IsQuit(target) {
		return nil, ErrSkipped
	}
	target = strings.TrimSpace(target)

	subj, ok := sess.Subject()
	if !ok {
		out.Notice(MsgNothingToTranslate)
		return nil, noContent(MsgNothingToTranslate)
	}

	res, err := p.translator.Translate(ctx, subj.Text, target)
	if err != nil {
		slog.Error("translation failed", "backend", p.translator.Name(), "target", target, "error", err)
		return nil, fmt.Errorf("translating to %q: %w", target, err)
	}

	t := Translation{
		Target: target,
		Source: langid.Describe(res.DetectedLanguage),
		Result: *res,
	}
	out.Translation(t)
	slog.Info("translation complete", "target", target, "source_language", res.DetectedLanguage)
	return &t, nil
}

// IsFault reports whether err is a remote or local failure rather than a
// no-content or skipped outcome.
func IsFault(err error) bool {
	return err != nil && !errors.Is(err, ErrNoContent) && !errors.Is(err, ErrSkipped)
}
