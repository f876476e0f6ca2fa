// Package llm holds the shared go-openai plumbing used by the openai
// backends: client construction and JSON-mode chat completions.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gogpt "github.com/sashabaranov/go-openai"

	"github.com/aashnajoshi/TextSense/internal/config"
)

// ErrNoChoices is returned when a completion carries no choices.
var ErrNoChoices = errors.New("no choices returned from chat API")

// NewClient builds a go-openai client. An empty BaseURL keeps the library
// default (api.openai.com).
func NewClient(cfg config.OpenAIConfig) *gogpt.Client {
	c := gogpt.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return gogpt.NewClientWithConfig(c)
}

// CompleteJSON runs a chat completion in JSON mode and decodes the first
// choice into out.
func CompleteJSON(ctx context.Context, client *gogpt.Client, model string, messages []gogpt.ChatCompletionMessage, out any) error {
	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, gogpt.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		ResponseFormat: &gogpt.ChatCompletionResponseFormat{
			Type: gogpt.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ErrNoChoices
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	slog.Debug("chat completion complete", "model", model,
		"tokens", resp.Usage.TotalTokens, "duration", time.Since(start))

	if err := json.Unmarshal([]byte(stripFences(content)), out); err != nil {
		return fmt.Errorf("decoding model output: %w", err)
	}
	return nil
}

// stripFences removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
