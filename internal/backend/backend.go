// Package backend builds the remote capabilities selected in the
// configuration.
package backend

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/cognitive"
	"github.com/aashnajoshi/TextSense/internal/config"
	"github.com/aashnajoshi/TextSense/internal/llm"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
	azuresentiment "github.com/aashnajoshi/TextSense/internal/sentiment/azure"
	openaisentiment "github.com/aashnajoshi/TextSense/internal/sentiment/openai"
	"github.com/aashnajoshi/TextSense/internal/speech"
	azurespeech "github.com/aashnajoshi/TextSense/internal/speech/azure"
	openaispeech "github.com/aashnajoshi/TextSense/internal/speech/openai"
	"github.com/aashnajoshi/TextSense/internal/stub"
	"github.com/aashnajoshi/TextSense/internal/translate"
	azuretranslate "github.com/aashnajoshi/TextSense/internal/translate/azure"
	openaitranslate "github.com/aashnajoshi/TextSense/internal/translate/openai"
	"github.com/aashnajoshi/TextSense/internal/vision"
	azurevision "github.com/aashnajoshi/TextSense/internal/vision/azure"
	openaivision "github.com/aashnajoshi/TextSense/internal/vision/openai"
)

// Set holds one implementation per capability.
type Set struct {
	Analyzer   sentiment.Analyzer
	Reader     vision.Reader
	Translator translate.Translator
	Recognizer speech.Recognizer // nil when voice input is disabled
}

// Names maps each configured capability to its backend name.
func (s *Set) Names() map[string]string {
	names := map[string]string{
		"sentiment":  s.Analyzer.Name(),
		"vision":     s.Reader.Name(),
		"translator": s.Translator.Name(),
	}
	if s.Recognizer != nil {
		names["speech"] = s.Recognizer.Name()
	}
	return names
}

// Build validates cfg and constructs every capability. Nothing contacts a
// remote service until a capability is first used.
func Build(cfg *config.Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := newFactory(cfg)
	set := &Set{}
	var err error

	if set.Analyzer, err = f.analyzer(); err != nil {
		return nil, err
	}
	if set.Reader, err = f.reader(); err != nil {
		return nil, err
	}
	if set.Translator, err = f.translator(); err != nil {
		return nil, err
	}
	if cfg.Inputs.Voice {
		if set.Recognizer, err = f.recognizer(); err != nil {
			return nil, err
		}
	}

	slog.Info("backends ready", "sentiment", set.Analyzer.Name(), "vision", set.Reader.Name(),
		"translator", set.Translator.Name(), "voice", cfg.Inputs.Voice)
	return set, nil
}

// factory shares one OpenAI client across capabilities.
type factory struct {
	cfg    *config.Config
	openAI func() *gogpt.Client
}

func newFactory(cfg *config.Config) *factory {
	return &factory{
		cfg:    cfg,
		openAI: sync.OnceValue(func() *gogpt.Client { return llm.NewClient(cfg.OpenAI) }),
	}
}

func (f *factory) analyzer() (sentiment.Analyzer, error) {
	switch name := f.cfg.Backends.Sentiment; name {
	case config.BackendAzure:
		ta := f.cfg.Azure.TextAnalytics
		return azuresentiment.New(cognitive.New(ta.Endpoint, ta.Key), ""), nil
	case config.BackendOpenAI:
		return openaisentiment.New(f.openAI(), f.cfg.OpenAI.Model), nil
	case config.BackendStub:
		return stub.NewAnalyzer(), nil
	default:
		return nil, unknown("sentiment", name)
	}
}

func (f *factory) reader() (vision.Reader, error) {
	switch name := f.cfg.Backends.Vision; name {
	case config.BackendAzure:
		v := f.cfg.Azure.Vision
		return azurevision.New(cognitive.New(v.Endpoint, v.Key)), nil
	case config.BackendOpenAI:
		return openaivision.New(f.openAI(), f.cfg.OpenAI.Model), nil
	case config.BackendStub:
		return stub.NewReader("TextSense makes every day a little brighter."), nil
	default:
		return nil, unknown("vision", name)
	}
}

func (f *factory) translator() (translate.Translator, error) {
	switch name := f.cfg.Backends.Translator; name {
	case config.BackendAzure:
		tr := f.cfg.Azure.Translator
		return azuretranslate.New(cognitive.New(tr.Endpoint, tr.Key, cognitive.WithRegion(tr.Region))), nil
	case config.BackendOpenAI:
		return openaitranslate.New(f.openAI(), f.cfg.OpenAI.Model), nil
	case config.BackendStub:
		return stub.NewTranslator(), nil
	default:
		return nil, unknown("translator", name)
	}
}

func (f *factory) recognizer() (speech.Recognizer, error) {
	sp := f.cfg.Azure.Speech
	switch name := f.cfg.Backends.Speech; name {
	case config.BackendAzure:
		return azurespeech.New(cognitive.New(azurespeech.Endpoint(sp.Region), sp.Key), sp.Language), nil
	case config.BackendOpenAI:
		lang, _, _ := strings.Cut(sp.Language, "-")
		return openaispeech.New(f.openAI(), f.cfg.OpenAI.TranscriptionModel, lang), nil
	case config.BackendStub:
		return stub.NewRecognizer("Hello from the TextSense demo recording."), nil
	default:
		return nil, unknown("speech", name)
	}
}

func unknown(capability, name string) error {
	return fmt.Errorf("unknown %s backend %q", capability, name)
}
