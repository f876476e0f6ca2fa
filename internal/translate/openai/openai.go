// Package openai implements translate.Translator with an OpenAI chat model.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/llm"
	"github.com/aashnajoshi/TextSense/internal/translate"
)

const systemPrompt = `You are a translation engine. Translate the user's text into the language
identified by the code %q. Respond with a JSON object and nothing else:
{"detected_language": "<ISO-639-1 code of the source text>", "translation": "<translated text>"}
If %q is not a language code you recognize, respond with {"error": "invalid target language"}.`

// Translator translates through the Chat Completions API.
type Translator struct {
	client *gogpt.Client
	model  string
}

// New creates a Translator using the given client and chat model.
func New(client *gogpt.Client, model string) *Translator {
	return &Translator{client: client, model: model}
}

// Name returns the backend identifier.
func (t *Translator) Name() string { return "openai" }

// Translate asks the model for the translation and the detected source.
func (t *Translator) Translate(ctx context.Context, text, target string) (*translate.Result, error) {
	target = strings.TrimSpace(target)

	var out struct {
		DetectedLanguage string `json:"detected_language"`
		Translation      string `json:"translation"`
		Error            string `json:"error"`
	}
	err := llm.CompleteJSON(ctx, t.client, t.model, []gogpt.ChatCompletionMessage{
		{Role: gogpt.ChatMessageRoleSystem, Content: fmt.Sprintf(systemPrompt, target, target)},
		{Role: gogpt.ChatMessageRoleUser, Content: text},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("translate to %q: %s", target, out.Error)
	}

	slog.Debug("translation complete", "backend", "openai", "from", out.DetectedLanguage, "to", target)
	return &translate.Result{
		DetectedLanguage: strings.ToLower(out.DetectedLanguage),
		Text:             out.Translation,
		To:               target,
	}, nil
}
