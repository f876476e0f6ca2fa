// Package openai implements sentiment.Analyzer with an OpenAI chat model
// answering in JSON mode.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/llm"
	"github.com/aashnajoshi/TextSense/internal/sentiment"
)

const systemPrompt = `You are a sentiment classifier. Classify the sentiment of the user's text.
Respond with a JSON object and nothing else:
{"sentiment": "positive" | "neutral" | "negative" | "mixed", "positive": <0..1>, "neutral": <0..1>, "negative": <0..1>, "language": "<ISO-639-1 code of the text>"}
The three confidence values should sum to 1.`

// Analyzer classifies sentiment through the Chat Completions API.
type Analyzer struct {
	client *gogpt.Client
	model  string
}

// New creates an Analyzer using the given client and chat model.
func New(client *gogpt.Client, model string) *Analyzer {
	return &Analyzer{client: client, model: model}
}

// Name returns the backend identifier.
func (a *Analyzer) Name() string { return "openai" }

// Analyze asks the model for a label and three confidences.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*sentiment.Result, error) {
	var out struct {
		Sentiment string  `json:"sentiment"`
		Positive  float64 `json:"positive"`
		Neutral   float64 `json:"neutral"`
		Negative  float64 `json:"negative"`
		Language  string  `json:"language"`
	}
	err := llm.CompleteJSON(ctx, a.client, a.model, []gogpt.ChatCompletionMessage{
		{Role: gogpt.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: gogpt.ChatMessageRoleUser, Content: text},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(out.Sentiment))
	switch label {
	case sentiment.Positive, sentiment.Neutral, sentiment.Negative, sentiment.Mixed:
	default:
		return nil, fmt.Errorf("sentiment: unexpected label %q", out.Sentiment)
	}

	slog.Debug("sentiment complete", "backend", "openai", "label", label)
	return &sentiment.Result{
		Label:    label,
		Scores:   sentiment.Scores{Positive: out.Positive, Neutral: out.Neutral, Negative: out.Negative},
		Language: strings.ToLower(strings.TrimSpace(out.Language)),
	}, nil
}
