// Package stub provides deterministic, offline capability backends. They
// answer from canned values and record every call, which makes them the
// test doubles for the pipeline and shells as well as the "stub" backend
// for demos without cloud credentials.
package stub

import (
	"context"
	"strings"
	"sync"

	"github.com/aashnajoshi/TextSense/internal/audio"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
	"github.com/aashnajoshi/TextSense/internal/speech"
	"github.com/aashnajoshi/TextSense/internal/translate"
	"github.com/aashnajoshi/TextSense/internal/vision"
)

// Analyzer returns Result (or Err) for every call.
type Analyzer struct {
	Result sentiment.Result
	Err    error

	mu    sync.Mutex
	calls []string
}

// NewAnalyzer returns an Analyzer answering (positive, 0.9, 0.08, 0.02).
func NewAnalyzer() *Analyzer {
	return &Analyzer{Result: sentiment.Result{
		Label:  sentiment.Positive,
		Scores: sentiment.Scores{Positive: 0.9, Neutral: 0.08, Negative: 0.02},
	}}
}

// Name returns "stub".
func (a *Analyzer) Name() string { return "stub" }

// Analyze records text and returns a copy of Result.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*sentiment.Result, error) {
	a.mu.Lock()
	a.calls = append(a.calls, text)
	a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	res := a.Result
	return &res, nil
}

// Calls returns the texts analyzed so far.
func (a *Analyzer) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

// Reader returns Lines as a single block.
type Reader struct {
	Lines []string
	Err   error

	mu    sync.Mutex
	calls int
}

// NewReader returns a Reader that recognizes the given lines.
func NewReader(lines ...string) *Reader {
	return &Reader{Lines: lines}
}

// Name returns "stub".
func (r *Reader) Name() string { return "stub" }

// Read counts the call and returns Lines as one block.
func (r *Reader) Read(ctx context.Context, image []byte, contentType string) (*vision.ReadResult, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	res := &vision.ReadResult{}
	if len(r.Lines) > 0 {
		block := vision.Block{}
		for _, l := range r.Lines {
			block.Lines = append(block.Lines, vision.Line{Text: l})
		}
		res.Blocks = append(res.Blocks, block)
	}
	return res, nil
}

// Calls returns the number of Read calls.
func (r *Reader) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// TranslateCall records one Translate invocation.
type TranslateCall struct {
	Text   string
	Target string
}

// Translator echoes the input tagged with the target, e.g. "[fr] hello".
type Translator struct {
	Detected string
	Err      error

	mu    sync.Mutex
	calls []TranslateCall
}

// NewTranslator returns a Translator reporting "en" as the source language.
func NewTranslator() *Translator {
	return &Translator{Detected: "en"}
}

// Name returns "stub".
func (t *Translator) Name() string { return "stub" }

// Translate records the call and prefixes text with the target.
func (t *Translator) Translate(ctx context.Context, text, target string) (*translate.Result, error) {
	target = strings.TrimSpace(target)
	t.mu.Lock()
	t.calls = append(t.calls, TranslateCall{Text: text, Target: target})
	t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}
	return &translate.Result{
		DetectedLanguage: t.Detected,
		Score:            1,
		Text:             "[" + target + "] " + text,
		To:               target,
	}, nil
}

// Calls returns the translations requested so far.
func (t *Translator) Calls() []TranslateCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TranslateCall(nil), t.calls...)
}

// Recognizer returns Text for every clip; an empty Text is a no-match.
type Recognizer struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls int
}

// NewRecognizer returns a Recognizer that hears text.
func NewRecognizer(text string) *Recognizer {
	return &Recognizer{Text: text}
}

// Name returns "stub".
func (r *Recognizer) Name() string { return "stub" }

// Recognize counts the call and returns Text, or a no-match when it is blank.
func (r *Recognizer) Recognize(ctx context.Context, clip audio.Clip) (*speech.Result, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if strings.TrimSpace(r.Text) == "" {
		return &speech.Result{Status: speech.StatusNoMatch}, nil
	}
	return &speech.Result{Status: speech.StatusRecognized, Text: r.Text}, nil
}

// Calls returns the number of Recognize calls.
func (r *Recognizer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

var (
	_ sentiment.Analyzer   = (*Analyzer)(nil)
	_ vision.Reader        = (*Reader)(nil)
	_ translate.Translator = (*Translator)(nil)
	_ speech.Recognizer    = (*Recognizer)(nil)
)
